// Package lines renders ordered sequences of values as text, one value per
// line.
//
// The central entry points are [Write] and [WriteFunc]. Each item is rendered
// to the writer in order and followed by a newline. The first failure stops
// the traversal and is returned unchanged:
//
//	err := lines.Write(os.Stdout, albums...)
//
// # Rendering Items
//
// [Write] picks a render operation per item:
//
//   - [Renderer] → the item's own Render method
//   - fmt.Stringer → String()
//   - anything else → fmt.Fprint
//
// Use [WriteFunc] with a [RenderFunc] to supply the representation from
// outside the item type. [Template] and [Truncate] build render functions:
//
//	render, err := lines.Template[Album]("{{.Title}} ({{.Artist}})")
//	err = lines.WriteFunc(os.Stdout, lines.Truncate(render, 40), albums...)
//
// # Wrapper Types
//
// A plain []T has no String method of its own. Wrap it to get one:
//
//   - [List] owns the items. It is a named slice type, so it indexes and
//     ranges like the slice it wraps.
//   - [View] borrows a slice owned elsewhere through [Borrow] and exposes
//     read-only access to it.
//
// Both implement fmt.Stringer and io.WriterTo and produce exactly the same
// bytes as [Write] over the same items:
//
//	fmt.Print(lines.List[Album](albums))
//	lines.Borrow(user.Albums).WriteTo(os.Stdout)
//
// # Streaming
//
// [WriteIter] and [WriteChan] run the same algorithm over iter.Seq and
// channel sources, writing each item as it arrives.
//
// # Errors
//
// Output is not atomic: lines written before a failure stay in the writer.
// Use [Marshal] or [MarshalFunc] to get all of the output or none of it.
//
// The package exports one sentinel error:
//
//   - [ErrInvalidTemplate] — invalid go-template syntax
//
// Render failures are never wrapped, so callers can compare them directly.
package lines
