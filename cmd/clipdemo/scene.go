package main

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/chartlayout/annotation"
	"github.com/gogpu/chartlayout/geom"
	"github.com/gogpu/chartlayout/virtual"
)

//go:embed default_scene.yaml
var defaultScene []byte

// ErrInvalidScene indicates a scene file that cannot be laid out.
var ErrInvalidScene = errors.New("clipdemo: invalid scene")

type rectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r rectSpec) rect() geom.Rect { return geom.NewRect(r.X, r.Y, r.W, r.H) }

type pointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p pointSpec) point() geom.Point { return geom.Pt(p.X, p.Y) }

type strokeSpec struct {
	Thickness float64 `yaml:"thickness"`
	Dash      string  `yaml:"dash"`
}

type annotationSpec struct {
	Kind        string     `yaml:"kind"`
	Orientation string     `yaml:"orientation"`
	Value       float64    `yaml:"value"`
	Rect        rectSpec   `yaml:"rect"`
	From        pointSpec  `yaml:"from"`
	To          pointSpec  `yaml:"to"`
	Color       string     `yaml:"color"`
	Stroke      strokeSpec `yaml:"stroke"`
}

type rowsSpec struct {
	Count    int             `yaml:"count"`
	Default  float64         `yaml:"default"`
	Scroll   float64         `yaml:"scroll"`
	Measured map[int]float64 `yaml:"measured"`
}

// sceneSpec is the YAML form of a scene.
type sceneSpec struct {
	Width       int              `yaml:"width"`
	Height      int              `yaml:"height"`
	Viewport    rectSpec         `yaml:"viewport"`
	Plot        rectSpec         `yaml:"plot"`
	Annotations []annotationSpec `yaml:"annotations"`
	Rows        rowsSpec         `yaml:"rows"`
}

// item is an arranged annotation with its drawing color.
type item struct {
	id    annotation.ID
	kind  string
	color color.RGBA
}

// Scene is a loaded, validated scene ready to arrange and render.
type Scene struct {
	Width, Height int
	Viewport      geom.Rect
	Layer         *annotation.Layer
	Items         []item
	Rows          *virtual.Axis
	Scroll        float64
}

// LoadScene reads a scene from path, or the built-in scene when path is
// empty.
func LoadScene(path string) (*Scene, error) {
	data := defaultScene
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load scene: %w", err)
		}
		data = b
	}
	return ParseScene(data)
}

// ParseScene decodes and validates a YAML scene.
func ParseScene(data []byte) (*Scene, error) {
	var spec sceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidScene, spec.Width, spec.Height)
	}
	if spec.Viewport.W < 0 || spec.Viewport.H < 0 {
		return nil, fmt.Errorf("%w: negative viewport size", ErrInvalidScene)
	}

	s := &Scene{
		Width:    spec.Width,
		Height:   spec.Height,
		Viewport: spec.Viewport.rect(),
		Layer:    annotation.NewLayer(),
		Scroll:   spec.Rows.Scroll,
	}

	for i, as := range spec.Annotations {
		a, err := buildAnnotation(as, spec.Plot.rect())
		if err != nil {
			return nil, fmt.Errorf("annotation %d: %w", i, err)
		}
		id, err := s.Layer.Add(a)
		if err != nil {
			return nil, fmt.Errorf("annotation %d: %w", i, err)
		}
		c, ok := colornames.Map[as.Color]
		if !ok {
			c = colornames.Black
		}
		s.Items = append(s.Items, item{id: id, kind: as.Kind, color: c})
	}

	rows, err := buildRows(spec.Rows)
	if err != nil {
		return nil, err
	}
	s.Rows = rows
	return s, nil
}

func buildAnnotation(as annotationSpec, plot geom.Rect) (annotation.Annotation, error) {
	dash, err := annotation.ParseDashArray(as.Stroke.Dash)
	if err != nil {
		return nil, err
	}
	stroke := annotation.Stroke{Thickness: as.Stroke.Thickness, DashArray: dash}

	switch as.Kind {
	case "gridline":
		o := annotation.Vertical
		switch as.Orientation {
		case "", "vertical":
		case "horizontal":
			o = annotation.Horizontal
		default:
			return nil, fmt.Errorf("%w: orientation %q", ErrInvalidScene, as.Orientation)
		}
		return annotation.NewGridLine(o, as.Value, plot, stroke), nil
	case "zone":
		return annotation.NewMarkedZone(as.Rect.rect(), stroke), nil
	case "line":
		return annotation.NewCustomLine(as.From.point(), as.To.point(), stroke), nil
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidScene, as.Kind)
	}
}

func buildRows(rs rowsSpec) (*virtual.Axis, error) {
	axis, err := virtual.NewAxis(rs.Count, rs.Default)
	if err != nil {
		return nil, fmt.Errorf("%w: rows: %w", ErrInvalidScene, err)
	}
	for i, l := range rs.Measured {
		if err := axis.SetLength(i, l); err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrInvalidScene, i, err)
		}
	}
	return axis, nil
}
