package annotation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Stroke describes how an annotation outline is drawn.
//
// DashArray holds alternating dash/gap lengths in units of Thickness, the
// convention used by XAML-style stroke dash arrays. An odd-length array is
// logically duplicated to an even-length pattern, so [2] means [2, 2].
// An empty array is a solid stroke.
type Stroke struct {
	Thickness float64
	DashArray []float64
}

// BorderOverflow returns how far the stroke reaches outside the geometry it
// outlines: half its thickness.
func (s Stroke) BorderOverflow() float64 {
	return math.Abs(s.Thickness) / 2
}

// IsDashed reports whether the stroke has a dash pattern with a positive
// length.
func (s Stroke) IsDashed() bool {
	for _, l := range s.DashArray {
		if l > 0 {
			return true
		}
	}
	return false
}

// DashPatternLength returns the length of one full dash cycle in layout
// units. Solid strokes return 0.
func (s Stroke) DashPatternLength() float64 {
	if !s.IsDashed() {
		return 0
	}

	var total float64
	for _, l := range s.DashArray {
		total += math.Abs(l)
	}
	if len(s.DashArray)%2 != 0 {
		total *= 2
	}
	return total * math.Abs(s.Thickness)
}

// ParseDashArray parses a dash array written as numbers separated by
// spaces or commas, e.g. "4 2" or "4,2,1,2".
func ParseDashArray(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, nil
	}

	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDashArray, f)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v is not a finite non-negative length", ErrInvalidDashArray, v)
		}
		out = append(out, v)
	}
	return out, nil
}
