package annotation

import (
	"github.com/gogpu/chartlayout/clip"
	"github.com/gogpu/chartlayout/geom"
)

// Annotation is a model that can be arranged against a viewport.
type Annotation interface {
	// Arrange recomputes the clipped geometry if the model changed or the
	// viewport differs from the previous pass. It reports whether it did.
	Arrange(viewport geom.Rect) bool
	// Visible reports whether the last Arrange produced drawable geometry.
	Visible() bool
	// Stroke returns the outline stroke.
	Stroke() Stroke
}

// layoutState tracks invalidation for a model.
type layoutState struct {
	dirty    bool
	arranged bool
	viewport geom.Rect
}

func (ls *layoutState) invalidate() { ls.dirty = true }

// begin reports whether a pass against viewport must recompute, and records
// the pass.
func (ls *layoutState) begin(viewport geom.Rect) bool {
	if ls.arranged && !ls.dirty && ls.viewport == viewport {
		return false
	}
	ls.arranged = true
	ls.dirty = false
	ls.viewport = viewport
	return true
}

// Orientation selects the axis a grid line is perpendicular to.
type Orientation uint8

const (
	// Vertical grid lines sit at a fixed X and span the plot height.
	Vertical Orientation = iota
	// Horizontal grid lines sit at a fixed Y and span the plot width.
	Horizontal
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// GridLine is a line across the whole plot area at a fixed coordinate.
type GridLine struct {
	layoutState
	orientation Orientation
	value       float64
	plot        geom.Rect
	stroke      Stroke
	geometry    geom.Line
}

// NewGridLine creates a grid line at value across plot.
func NewGridLine(o Orientation, value float64, plot geom.Rect, stroke Stroke) *GridLine {
	return &GridLine{
		layoutState: layoutState{dirty: true},
		orientation: o,
		value:       value,
		plot:        plot,
		stroke:      stroke,
	}
}

// SetValue moves the grid line.
func (g *GridLine) SetValue(v float64) {
	if g.value != v {
		g.value = v
		g.invalidate()
	}
}

// SetPlotArea changes the area the line spans.
func (g *GridLine) SetPlotArea(plot geom.Rect) {
	if g.plot != plot {
		g.plot = plot
		g.invalidate()
	}
}

// SetStroke changes the stroke.
func (g *GridLine) SetStroke(s Stroke) {
	g.stroke = s
	g.invalidate()
}

// Stroke returns the outline stroke.
func (g *GridLine) Stroke() Stroke { return g.stroke }

// Orientation returns the grid line orientation.
func (g *GridLine) Orientation() Orientation { return g.orientation }

// Line returns the unclipped line across the plot area.
func (g *GridLine) Line() geom.Line {
	if g.orientation == Horizontal {
		return geom.Line{X1: g.plot.X, Y1: g.value, X2: g.plot.Right(), Y2: g.value}
	}
	return geom.Line{X1: g.value, Y1: g.plot.Y, X2: g.value, Y2: g.plot.Bottom()}
}

// Geometry returns the clipped line from the last Arrange.
func (g *GridLine) Geometry() geom.Line { return g.geometry }

// Visible reports whether the last Arrange produced a line.
func (g *GridLine) Visible() bool { return !g.geometry.IsZero() }

// Arrange implements Annotation.
func (g *GridLine) Arrange(viewport geom.Rect) bool {
	if !g.begin(viewport) {
		return false
	}
	g.geometry = clip.ClipGridLine(g.Line(), viewport, g.stroke.BorderOverflow(), g.stroke.DashPatternLength())
	return true
}

// MarkedZone highlights a rectangular region of the plot.
type MarkedZone struct {
	layoutState
	zone     geom.Rect
	stroke   Stroke
	geometry geom.Rect
}

// NewMarkedZone creates a marked zone.
func NewMarkedZone(zone geom.Rect, stroke Stroke) *MarkedZone {
	return &MarkedZone{
		layoutState: layoutState{dirty: true},
		zone:        zone,
		stroke:      stroke,
		geometry:    geom.EmptyRect,
	}
}

// SetZone changes the highlighted region.
func (m *MarkedZone) SetZone(zone geom.Rect) {
	if m.zone != zone {
		m.zone = zone
		m.invalidate()
	}
}

// SetStroke changes the stroke.
func (m *MarkedZone) SetStroke(s Stroke) {
	m.stroke = s
	m.invalidate()
}

// Stroke returns the outline stroke.
func (m *MarkedZone) Stroke() Stroke { return m.stroke }

// Zone returns the unclipped region.
func (m *MarkedZone) Zone() geom.Rect { return m.zone }

// Geometry returns the clipped region from the last Arrange.
func (m *MarkedZone) Geometry() geom.Rect { return m.geometry }

// Visible reports whether the last Arrange produced a region.
func (m *MarkedZone) Visible() bool { return !m.geometry.IsEmpty() }

// Arrange implements Annotation.
func (m *MarkedZone) Arrange(viewport geom.Rect) bool {
	if !m.begin(viewport) {
		return false
	}
	m.geometry = clip.ClipRectangle(m.zone, viewport, m.stroke.BorderOverflow(), m.stroke.DashPatternLength())
	return true
}

// CustomLine is a free line between two plot points.
type CustomLine struct {
	layoutState
	line     geom.Line
	stroke   Stroke
	geometry geom.Line
}

// NewCustomLine creates a line from p1 to p2. The dash pattern starts at p1.
func NewCustomLine(p1, p2 geom.Point, stroke Stroke) *CustomLine {
	return &CustomLine{
		layoutState: layoutState{dirty: true},
		line:        geom.LineFrom(p1, p2),
		stroke:      stroke,
	}
}

// SetPoints moves the line.
func (c *CustomLine) SetPoints(p1, p2 geom.Point) {
	l := geom.LineFrom(p1, p2)
	if c.line != l {
		c.line = l
		c.invalidate()
	}
}

// SetStroke changes the stroke.
func (c *CustomLine) SetStroke(s Stroke) {
	c.stroke = s
	c.invalidate()
}

// Stroke returns the outline stroke.
func (c *CustomLine) Stroke() Stroke { return c.stroke }

// Line returns the unclipped line.
func (c *CustomLine) Line() geom.Line { return c.line }

// Geometry returns the clipped line from the last Arrange.
func (c *CustomLine) Geometry() geom.Line { return c.geometry }

// Visible reports whether the last Arrange produced a line.
func (c *CustomLine) Visible() bool { return !c.geometry.IsZero() }

// Arrange implements Annotation.
func (c *CustomLine) Arrange(viewport geom.Rect) bool {
	if !c.begin(viewport) {
		return false
	}
	c.geometry = clip.ClipLine(c.line, viewport, c.stroke.BorderOverflow(), c.stroke.DashPatternLength())
	return true
}
