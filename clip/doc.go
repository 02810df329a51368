// Package clip clips annotation geometry against a viewport so that only the
// visible part is handed to the renderer.
//
// A dashed stroke restarts its pattern at the first point of the geometry
// it is drawn on. Naively moving an endpoint onto the viewport edge would
// shift every dash after it. The clippers here move clipped start edges back
// by the remainder of the clip distance modulo the dash period, so the
// rendered dashes land exactly where they would have on the unclipped shape.
//
// All functions are pure and total: degenerate inputs produce an empty
// result ([geom.EmptyRect] or the zero [geom.Line]) instead of an error.
//
// Remainders use [math.Mod], which truncates toward zero and keeps the sign
// of the dividend. Negative phase deltas depend on that.
package clip
