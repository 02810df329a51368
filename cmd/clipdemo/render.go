package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/chartlayout/annotation"
	"github.com/gogpu/chartlayout/clip"
	"github.com/gogpu/chartlayout/geom"
)

// faded is the alpha the unclipped geometry is drawn with.
const faded = 0x40

// canvas rasterizes strokes onto an RGBA image one path at a time.
type canvas struct {
	dst *image.RGBA
	r   *vector.Rasterizer
}

func newCanvas(w, h int) *canvas {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	return &canvas{dst: dst, r: vector.NewRasterizer(w, h)}
}

func (c *canvas) bounds() geom.Rect {
	b := c.dst.Bounds()
	return geom.NewRect(0, 0, float64(b.Dx()), float64(b.Dy()))
}

// fill paints the accumulated path and resets the rasterizer.
func (c *canvas) fill(col color.Color) {
	c.r.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
	b := c.dst.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
}

// quad adds a thick segment from a to b as a closed polygon.
func (c *canvas) quad(a, b geom.Point, thickness float64) {
	l := a.Distance(b)
	if l == 0 {
		return
	}
	h := thickness / 2
	nx, ny := -(b.Y-a.Y)/l*h, (b.X-a.X)/l*h
	c.r.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	c.r.LineTo(float32(b.X+nx), float32(b.Y+ny))
	c.r.LineTo(float32(b.X-nx), float32(b.Y-ny))
	c.r.LineTo(float32(a.X-nx), float32(a.Y-ny))
	c.r.ClosePath()
}

// dasher walks a dash pattern along consecutive segments, carrying the
// phase from one segment to the next.
type dasher struct {
	pattern []float64
	index   int
	left    float64
	on      bool
}

func newDasher(s annotation.Stroke) *dasher {
	if !s.IsDashed() {
		return &dasher{}
	}
	t := math.Abs(s.Thickness)
	if t == 0 {
		t = 1
	}
	pattern := make([]float64, 0, 2*len(s.DashArray))
	for _, v := range s.DashArray {
		pattern = append(pattern, math.Abs(v)*t)
	}
	if len(pattern)%2 != 0 {
		pattern = append(pattern, pattern...)
	}
	return &dasher{pattern: pattern, left: pattern[0], on: true}
}

// segment adds the dashes of a→b to the canvas path.
func (d *dasher) segment(c *canvas, a, b geom.Point, thickness float64) {
	if len(d.pattern) == 0 {
		c.quad(a, b, thickness)
		return
	}
	total := a.Distance(b)
	if total == 0 {
		return
	}
	dir := b.Sub(a).Mul(1 / total)
	for pos := 0.0; pos < total; {
		step := math.Min(d.left, total-pos)
		if d.on {
			c.quad(a.Add(dir.Mul(pos)), a.Add(dir.Mul(pos+step)), thickness)
		}
		pos += step
		d.left -= step
		if d.left <= 0 {
			d.index = (d.index + 1) % len(d.pattern)
			d.left = d.pattern[d.index]
			d.on = !d.on
		}
	}
}

func (c *canvas) strokeLine(l geom.Line, s annotation.Stroke, col color.Color) {
	if l.IsZero() {
		return
	}
	newDasher(s).segment(c, l.P1(), l.P2(), strokeWidth(s))
	c.fill(col)
}

func (c *canvas) strokeRect(r geom.Rect, s annotation.Stroke, col color.Color) {
	if r.IsEmpty() {
		return
	}
	d := newDasher(s)
	tl, tr := geom.Pt(r.X, r.Y), geom.Pt(r.Right(), r.Y)
	br, bl := geom.Pt(r.Right(), r.Bottom()), geom.Pt(r.X, r.Bottom())
	w := strokeWidth(s)
	d.segment(c, tl, tr, w)
	d.segment(c, tr, br, w)
	d.segment(c, br, bl, w)
	d.segment(c, bl, tl, w)
	c.fill(col)
}

func (c *canvas) fillRect(r geom.Rect, col color.Color) {
	if r.IsEmpty() {
		return
	}
	c.r.MoveTo(float32(r.X), float32(r.Y))
	c.r.LineTo(float32(r.Right()), float32(r.Y))
	c.r.LineTo(float32(r.Right()), float32(r.Bottom()))
	c.r.LineTo(float32(r.X), float32(r.Bottom()))
	c.r.ClosePath()
	c.fill(col)
}

func (c *canvas) label(x, y int, text string, col color.Color) {
	d := font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func strokeWidth(s annotation.Stroke) float64 {
	return math.Max(math.Abs(s.Thickness), 1)
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// Premultiplied: scale every channel.
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 0xff),
		G: uint8(uint16(c.G) * uint16(a) / 0xff),
		B: uint8(uint16(c.B) * uint16(a) / 0xff),
		A: a,
	}
}

// Render arranges the scene and draws it. Unclipped geometry is drawn
// faded, clipped to the image, and the geometry clipped to the viewport is
// drawn on top; matching dashes show that the clip kept the pattern phase.
func Render(s *Scene) *image.RGBA {
	c := newCanvas(s.Width, s.Height)
	s.Layer.Arrange(s.Viewport)

	bounds := c.bounds()
	c.strokeRect(s.Viewport, annotation.Stroke{Thickness: 1}, colornames.Gray)

	for _, it := range s.Items {
		a, ok := s.Layer.Get(it.id)
		if !ok {
			continue
		}
		st := a.Stroke()
		ghost := withAlpha(it.color, faded)

		switch m := a.(type) {
		case *annotation.GridLine:
			c.strokeLine(clip.ClipLine(m.Line(), bounds, 0, st.DashPatternLength()), st, ghost)
			c.strokeLine(m.Geometry(), st, it.color)
		case *annotation.MarkedZone:
			c.fillRect(clip.ClipRectangle(m.Zone(), bounds, 0, 0), withAlpha(it.color, faded/2))
			c.strokeRect(clip.ClipRectangle(m.Zone(), bounds, st.BorderOverflow(), st.DashPatternLength()), st, ghost)
			c.strokeRect(m.Geometry(), st, it.color)
		case *annotation.CustomLine:
			c.strokeLine(clip.ClipLine(m.Line(), bounds, 0, st.DashPatternLength()), st, ghost)
			c.strokeLine(m.Geometry(), st, it.color)
		}
	}

	c.label(int(s.Viewport.X)+4, int(s.Viewport.Y)-6, "viewport", colornames.Gray)
	return c.dst
}
