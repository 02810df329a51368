package annotation

import (
	"fmt"

	"github.com/gogpu/chartlayout"
	"github.com/gogpu/chartlayout/geom"
)

// ID identifies an annotation within a Layer. IDs are never reused.
type ID uint32

// Layer owns a set of annotations and arranges them together.
// Annotations are arranged in insertion order.
type Layer struct {
	next  ID
	items map[ID]Annotation
	order []ID
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{items: make(map[ID]Annotation)}
}

// Add registers a and returns its ID.
func (l *Layer) Add(a Annotation) (ID, error) {
	if a == nil {
		return 0, ErrNilAnnotation
	}
	l.next++
	id := l.next
	l.items[id] = a
	l.order = append(l.order, id)
	return id, nil
}

// Remove unregisters the annotation with the given ID.
func (l *Layer) Remove(id ID) error {
	if _, ok := l.items[id]; !ok {
		return fmt.Errorf("remove %d: %w", id, ErrUnknownAnnotation)
	}
	delete(l.items, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the annotation with the given ID.
func (l *Layer) Get(id ID) (Annotation, bool) {
	a, ok := l.items[id]
	return a, ok
}

// Len returns the number of annotations.
func (l *Layer) Len() int { return len(l.order) }

// Each calls fn for every annotation in insertion order until fn returns
// false.
func (l *Layer) Each(fn func(ID, Annotation) bool) {
	for _, id := range l.order {
		if !fn(id, l.items[id]) {
			return
		}
	}
}

// Arrange runs one layout pass against viewport and returns how many
// annotations recomputed their geometry.
func (l *Layer) Arrange(viewport geom.Rect) int {
	recomputed, visible := 0, 0
	for _, id := range l.order {
		a := l.items[id]
		if a.Arrange(viewport) {
			recomputed++
		}
		if a.Visible() {
			visible++
		}
	}
	chartlayout.Logger().Debug("annotation: layer arranged",
		"total", len(l.order), "recomputed", recomputed, "visible", visible)
	return recomputed
}
