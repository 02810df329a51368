// Package chartlayout provides the headless layout math behind chart
// annotations and virtualized data grids.
//
// # Overview
//
// The library has no rendering or UI dependencies. A host toolkit owns the
// visual tree and calls into chartlayout once per layout pass:
//
//   - [github.com/gogpu/chartlayout/offsets]: a cumulative offset index that
//     maps row/column indices to pixel offsets and back in O(log n).
//   - [github.com/gogpu/chartlayout/clip]: clipping of rectangles, lines and
//     grid lines against a viewport, preserving the phase of dashed strokes.
//   - [github.com/gogpu/chartlayout/annotation]: annotation models with
//     explicit dirty tracking that drive the clippers.
//   - [github.com/gogpu/chartlayout/virtual]: a checked row/column axis on
//     top of offsets for viewport virtualization.
//   - [github.com/gogpu/chartlayout/geom]: the shared Point, Rect and Line
//     types.
//
// # Coordinate System
//
// Uses standard layout coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// All types are meant to be used from a single layout goroutine. Nothing
// locks internally; callers serialize mutation and query within one layout
// cycle. [SetLogger] and [Logger] are the exception and are safe for
// concurrent use.
package chartlayout

// Version is the current version of the library.
const Version = "0.1.0"
