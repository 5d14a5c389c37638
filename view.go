package lines

import (
	"io"
	"iter"
	"slices"
)

// View is a read-only view of a slice owned elsewhere. It shares the
// backing array with the owner and never modifies it. The owner must not
// mutate the slice while a View method is running.
type View[T any] struct {
	items []T
}

// Borrow returns a View over items.
func Borrow[T any](items []T) View[T] {
	return View[T]{items: items}
}

// Len returns the number of items.
func (v View[T]) Len() int { return len(v.items) }

// At returns the item at index i. It panics if i is out of range.
func (v View[T]) At(i int) T { return v.items[i] }

// Values iterates the items in order.
func (v View[T]) Values() iter.Seq[T] { return slices.Values(v.items) }

// WriteTo writes the formatted view to w. It implements io.WriterTo.
func (v View[T]) WriteTo(w io.Writer) (int64, error) {
	return writeCounted(w, v.items)
}

// String returns the formatted view, like [List.String].
func (v View[T]) String() string {
	return formatString(v.items)
}
