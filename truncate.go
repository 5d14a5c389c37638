package lines

import (
	"bytes"
	"io"

	"github.com/mattn/go-runewidth"
)

// Truncate limits each rendered item to width display columns. Items that
// are too wide are cut and end in "..." (or are cut bare when width is 3 or
// less). A width of zero or less returns render unchanged.
//
// The item is rendered into a scratch buffer first, so an item that fails
// writes nothing to w.
func Truncate[T any](render RenderFunc[T], width int) RenderFunc[T] {
	if width <= 0 {
		return render
	}
	return func(w io.Writer, item T) error {
		var buf bytes.Buffer
		if err := render(&buf, item); err != nil {
			return err
		}
		_, err := io.WriteString(w, truncateText(buf.String(), width))
		return err
	}
}

func truncateText(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
