package clip

import (
	"math"

	"github.com/gogpu/chartlayout/geom"
)

// ClipRectangle clips rect to container grown by borderOverflow on every
// side (typically half the stroke thickness).
//
// Returns geom.EmptyRect if rect does not touch the grown container, and
// rect itself if it lies fully inside. Every edge moved by the clamp is
// corrected so its distance from the original edge is a whole number of
// dash periods: left and top edges move outward by the remainder, right and
// bottom edges likewise.
func ClipRectangle(rect, container geom.Rect, borderOverflow, dashLength float64) geom.Rect {
	c := container.Inflate(borderOverflow)
	if !rect.Intersects(c) {
		return geom.EmptyRect
	}

	left := geom.Coerce(rect.X, c.X, c.Right())
	top := geom.Coerce(rect.Y, c.Y, c.Bottom())
	right := geom.Coerce(rect.Right(), c.X, c.Right())
	bottom := geom.Coerce(rect.Bottom(), c.Y, c.Bottom())

	if left == rect.X && top == rect.Y && right == rect.Right() && bottom == rect.Bottom() {
		return rect
	}

	d := DashLength(dashLength)
	if left != rect.X {
		left -= math.Mod(left-rect.X, d)
	}
	if top != rect.Y {
		top -= math.Mod(top-rect.Y, d)
	}
	if right != rect.Right() {
		right += math.Mod(rect.Right()-right, d)
	}
	if bottom != rect.Bottom() {
		bottom += math.Mod(rect.Bottom()-bottom, d)
	}

	return geom.RectFromEdges(left, top, right, bottom)
}
