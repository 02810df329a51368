// Package geom provides the shared layout geometry types: points,
// axis-aligned rectangles and directed line segments.
package geom

import "math"

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Rect is an axis-aligned rectangle in layout coordinates.
// Width and height are non-negative for every rect except EmptyRect.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// EmptyRect is the sentinel returned when a shape has nothing to draw.
// It intersects nothing, including itself.
var EmptyRect = Rect{
	X: math.Inf(1),
	Y: math.Inf(1),
	W: math.Inf(-1),
	H: math.Inf(-1),
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromEdges creates a Rect from its four edges.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge y-coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// IsEmpty reports whether r is the EmptyRect sentinel (or any rect with a
// negative dimension). A zero-area rect is not empty.
func (r Rect) IsEmpty() bool {
	return r.W < 0 || r.H < 0
}

// Inflate returns r grown by d on every side.
func (r Rect) Inflate(d float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects reports whether two rectangles overlap. Touching edges count.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !(other.X > r.Right() || other.Right() < r.X ||
		other.Y > r.Bottom() || other.Bottom() < r.Y)
}

// Line is a directed segment from (X1, Y1) to (X2, Y2).
// The zero value is the empty line.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// LineFrom creates a Line from two points.
func LineFrom(p1, p2 Point) Line {
	return Line{X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y}
}

// P1 returns the start point.
func (l Line) P1() Point { return Point{X: l.X1, Y: l.Y1} }

// P2 returns the end point.
func (l Line) P2() Point { return Point{X: l.X2, Y: l.Y2} }

// Length returns the segment length.
func (l Line) Length() float64 {
	return math.Hypot(l.X2-l.X1, l.Y2-l.Y1)
}

// IsZero reports whether l is the zero (empty) line.
func (l Line) IsZero() bool {
	return l == Line{}
}

// IsVertical reports whether both endpoints share an X coordinate.
func (l Line) IsVertical() bool { return l.X1 == l.X2 }

// IsHorizontal reports whether both endpoints share a Y coordinate.
func (l Line) IsHorizontal() bool { return l.Y1 == l.Y2 }

// Coerce clamps v into [lo, hi].
func Coerce(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
