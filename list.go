package lines

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// List is an owned sequence that knows how to format itself.
//
// List is a named slice type, so indexing, len, range and slicing work on it
// directly:
//
//	albums := lines.List[Album]{a, b}
//	fmt.Print(albums)        // one album per line
//	fmt.Println(albums[0])   // plain slice access
type List[T any] []T

// Len returns the number of items.
func (l List[T]) Len() int { return len(l) }

// At returns the item at index i. It panics if i is out of range.
func (l List[T]) At(i int) T { return l[i] }

// Values iterates the items in order.
func (l List[T]) Values() iter.Seq[T] { return slices.Values(l) }

// View borrows the list without copying it.
func (l List[T]) View() View[T] { return Borrow([]T(l)) }

// Clone returns an independent copy of the list.
func (l List[T]) Clone() List[T] { return slices.Clone(l) }

// WriteTo writes the formatted list to w. It implements io.WriterTo.
func (l List[T]) WriteTo(w io.Writer) (int64, error) {
	return writeCounted(w, l)
}

// String returns the formatted list. If an item fails to render, the output
// up to that item is followed by %!v(ERROR=...).
func (l List[T]) String() string {
	return formatString(l)
}

func writeCounted[T any](w io.Writer, items []T) (int64, error) {
	cw := &countWriter{w: w}
	err := Write(cw, items...)
	return cw.n, err
}

func formatString[T any](items []T) string {
	var sb strings.Builder
	if err := Write(&sb, items...); err != nil {
		fmt.Fprintf(&sb, "%%!v(ERROR=%v)", err)
	}
	return sb.String()
}
