package lines

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidTemplate = errors.New("invalid template")
)

// Terminator is written after every rendered item.
const Terminator = "\n"

// Renderer writes an item's textual representation to w.
// Implementations write only the item itself, never the line terminator.
type Renderer interface {
	Render(w io.Writer) error
}

// RenderFunc renders a single item to w. It is the escape hatch for item
// types that do not implement [Renderer], or that need a different
// representation than the one they provide.
type RenderFunc[T any] func(w io.Writer, item T) error

// IsRenderer reports whether type T implements [Renderer]. Types that don't
// are still accepted by [Write]; they fall back to fmt.Stringer or %v.
func IsRenderer[T any]() bool {
	var zero T
	_, ok := any(zero).(Renderer)
	return ok
}

// Render is the default render operation used by [Write].
// Renderer items render themselves, fmt.Stringer items write String(), and
// everything else is written with fmt.Fprint.
func Render[T any](w io.Writer, item T) error {
	switch v := any(item).(type) {
	case Renderer:
		return v.Render(w)
	case fmt.Stringer:
		_, err := io.WriteString(w, v.String())
		return err
	default:
		_, err := fmt.Fprint(w, item)
		return err
	}
}

// Write renders items to w, one per line, using [Render].
func Write[T any](w io.Writer, items ...T) error {
	return WriteFunc(w, Render[T], items...)
}

// WriteFunc renders items to w in order, writing [Terminator] after each one.
// It stops at the first failure and returns that error unchanged. Anything
// already written to w stays there; use [MarshalFunc] when the caller needs
// all-or-nothing output.
func WriteFunc[T any](w io.Writer, render RenderFunc[T], items ...T) error {
	for _, item := range items {
		if err := render(w, item); err != nil {
			return err
		}
		if _, err := io.WriteString(w, Terminator); err != nil {
			return err
		}
	}
	return nil
}

// Marshal formats items and returns the bytes.
func Marshal[T any](items ...T) ([]byte, error) {
	return MarshalFunc(Render[T], items...)
}

// MarshalFunc formats items with render and returns the bytes.
// On failure it returns nil and the first render error; no partial output
// escapes.
func MarshalFunc[T any](render RenderFunc[T], items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteFunc(&buf, render, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// countWriter tracks how many bytes reached the underlying writer.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
