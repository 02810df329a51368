package clip

import (
	"math"

	"github.com/gogpu/chartlayout/geom"
)

// ClipGridLine clips an axis-aligned grid line to container grown by
// borderOverflow. Grid lines run across the whole container: the start is
// moved to the last dash boundary at or before the near edge, keeping the
// pattern phase of the original start point, and the end is placed on the
// far edge. The result always runs top to bottom or left to right.
//
// A vertical line whose X, or a horizontal line whose Y, lies outside the
// container yields the zero geom.Line. Lines that are neither vertical nor
// horizontal fall back to ClipLine. A zero-length line counts as vertical.
func ClipGridLine(line geom.Line, container geom.Rect, borderOverflow, dashLength float64) geom.Line {
	if !line.IsVertical() && !line.IsHorizontal() {
		return ClipLine(line, container, borderOverflow, dashLength)
	}

	c := container.Inflate(borderOverflow)
	if c.IsEmpty() {
		return geom.Line{}
	}
	d := DashLength(dashLength)

	if line.IsVertical() {
		if line.X1 < c.X || line.X1 > c.Right() {
			return geom.Line{}
		}
		line.Y1 = snapBefore(c.Y, line.Y1, d)
		line.Y2 = c.Bottom()
		return line
	}

	if line.Y1 < c.Y || line.Y1 > c.Bottom() {
		return geom.Line{}
	}
	line.X1 = snapBefore(c.X, line.X1, d)
	line.X2 = c.Right()
	return line
}

// snapBefore returns the largest value at or before edge that lies a whole
// number of dash periods away from start.
func snapBefore(edge, start, d float64) float64 {
	r := math.Mod(edge-start, d)
	if r < 0 {
		r += d
	}
	return edge - r
}
