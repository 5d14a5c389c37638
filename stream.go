package lines

import (
	"io"
	"iter"
)

// WriteIter renders items from an iterator to w as they arrive, using
// [Render]. The iterator is stopped at the first failure.
func WriteIter[T any](w io.Writer, seq iter.Seq[T]) error {
	return WriteIterFunc(w, Render[T], seq)
}

// WriteIterFunc is [WriteIter] with an explicit render operation.
func WriteIterFunc[T any](w io.Writer, render RenderFunc[T], seq iter.Seq[T]) error {
	var streamErr error
	seq(func(item T) bool {
		// Iterators that ignore a false yield must not reach w again.
		if streamErr != nil {
			return false
		}
		if err := render(w, item); err != nil {
			streamErr = err
			return false
		}
		if _, err := io.WriteString(w, Terminator); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan renders items from a channel and writes them to w.
// It is a thin wrapper around [WriteIter]. After a failure it stops
// receiving; closing the channel remains the producer's job.
func WriteChan[T any](w io.Writer, ch <-chan T) error {
	return WriteIter(w, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
