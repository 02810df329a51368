package clip

import (
	"math"

	"github.com/gogpu/chartlayout/geom"
)

// Outcode bits for Cohen-Sutherland style region tests.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

func outcode(p geom.Point, c geom.Rect) int {
	code := outcodeInside

	if p.X < c.X {
		code |= outcodeLeft
	} else if p.X > c.Right() {
		code |= outcodeRight
	}

	if p.Y < c.Y {
		code |= outcodeTop
	} else if p.Y > c.Bottom() {
		code |= outcodeBottom
	}

	return code
}

// ClipLine clips line to container grown by borderOverflow.
//
// A line with both endpoints inside is returned unchanged. A line that does
// not cross the container yields the zero geom.Line.
//
// When the start point is outside, it is moved onto the container edge and
// then pulled back toward its original position by the clip distance modulo
// the dash period, so the dash pattern keeps its phase. An outside end point
// is snapped exactly onto the edge.
func ClipLine(line geom.Line, container geom.Rect, borderOverflow, dashLength float64) geom.Line {
	c := container.Inflate(borderOverflow)

	code1 := outcode(line.P1(), c)
	code2 := outcode(line.P2(), c)
	if code1|code2 == outcodeInside {
		return line
	}
	if code1&code2 != 0 {
		return geom.Line{}
	}

	lc := lineClipper{
		orig:   line,
		result: line,
		c:      c,
		dash:   DashLength(dashLength),
		angle:  slopeAngle(line),
	}

	lc.clipTop(intersectionX(line, c.Y))
	lc.clipBottom(intersectionX(line, c.Bottom()))
	lc.clipLeft(intersectionY(line, c.X))
	lc.clipRight(intersectionY(line, c.Right()))

	if !lc.clipped {
		return geom.Line{}
	}
	return lc.result
}

// intersectionX returns the X where the infinite line through l crosses the
// horizontal y. Horizontal lines yield ±Inf or NaN, which fail every span
// test.
func intersectionX(l geom.Line, y float64) float64 {
	return l.X1 + (y-l.Y1)*(l.X2-l.X1)/(l.Y2-l.Y1)
}

// intersectionY returns the Y where the infinite line through l crosses the
// vertical x.
func intersectionY(l geom.Line, x float64) float64 {
	return l.Y1 + (x-l.X1)*(l.Y2-l.Y1)/(l.X2-l.X1)
}

// slopeAngle returns the undirected slope angle of l in [0, π).
// Vertical lines give π/2 regardless of direction.
func slopeAngle(l geom.Line) float64 {
	angle := math.Atan((l.Y2 - l.Y1) / (l.X2 - l.X1))
	if angle < 0 {
		angle += math.Pi
	}
	return angle
}

type lineClipper struct {
	orig    geom.Line
	result  geom.Line
	c       geom.Rect
	dash    float64
	angle   float64
	clipped bool
}

func (lc *lineClipper) inSpanX(x float64) bool {
	return x >= lc.c.X && x <= lc.c.Right()
}

func (lc *lineClipper) inSpanY(y float64) bool {
	return y >= lc.c.Y && y <= lc.c.Bottom()
}

func (lc *lineClipper) clipTop(x float64) {
	if !lc.inSpanX(x) {
		return
	}
	top := lc.c.Y
	l := lc.orig
	switch {
	case l.Y1 < l.Y2:
		if l.Y1 < top && l.Y2 >= top {
			lc.moveStart(x, top)
		}
	case l.Y2 < l.Y1:
		if l.Y2 < top && l.Y1 >= top {
			lc.moveEnd(x, top)
		}
	}
}

func (lc *lineClipper) clipBottom(x float64) {
	if !lc.inSpanX(x) {
		return
	}
	bottom := lc.c.Bottom()
	l := lc.orig
	switch {
	case l.Y2 < l.Y1:
		if l.Y1 > bottom && l.Y2 <= bottom {
			lc.moveStart(x, bottom)
		}
	case l.Y1 < l.Y2:
		if l.Y2 > bottom && l.Y1 <= bottom {
			lc.moveEnd(x, bottom)
		}
	}
}

func (lc *lineClipper) clipLeft(y float64) {
	if !lc.inSpanY(y) {
		return
	}
	left := lc.c.X
	l := lc.orig
	switch {
	case l.X1 < l.X2:
		if l.X1 < left && l.X2 >= left {
			lc.moveStart(left, y)
		}
	case l.X2 < l.X1:
		if l.X2 < left && l.X1 >= left {
			lc.moveEnd(left, y)
		}
	}
}

func (lc *lineClipper) clipRight(y float64) {
	if !lc.inSpanY(y) {
		return
	}
	right := lc.c.Right()
	l := lc.orig
	switch {
	case l.X2 < l.X1:
		if l.X1 > right && l.X2 <= right {
			lc.moveStart(right, y)
		}
	case l.X1 < l.X2:
		if l.X2 > right && l.X1 <= right {
			lc.moveEnd(right, y)
		}
	}
}

// moveStart places the start point on the intersection (ix, iy), backed off
// toward the original start by the dash remainder.
func (lc *lineClipper) moveStart(ix, iy float64) {
	l := lc.orig
	rem := math.Mod(math.Hypot(ix-l.X1, iy-l.Y1), lc.dash)

	ux, uy := math.Cos(lc.angle), math.Sin(lc.angle)
	if (l.X1-ix)*ux+(l.Y1-iy)*uy < 0 {
		ux, uy = -ux, -uy
	}

	lc.result.X1 = ix + rem*ux
	lc.result.Y1 = iy + rem*uy
	lc.clipped = true
}

func (lc *lineClipper) moveEnd(ix, iy float64) {
	lc.result.X2 = ix
	lc.result.Y2 = iy
	lc.clipped = true
}
