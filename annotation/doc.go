// Package annotation provides chart annotation models that clip their
// geometry to the visible viewport once per layout pass.
//
// Each model keeps its inputs as plain fields behind setters. A setter marks
// the model dirty; Arrange recomputes the clipped geometry only when the
// model is dirty or the viewport moved. A [Layer] owns the models and hands
// out IDs, so that host-side peers can refer back to an annotation without
// keeping it alive.
//
//	layer := annotation.NewLayer()
//	id, _ := layer.Add(annotation.NewGridLine(annotation.Vertical, 120, plot, stroke))
//	layer.Arrange(viewport)
//	if a, ok := layer.Get(id); ok && a.Visible() {
//	    // draw a.(*annotation.GridLine).Geometry()
//	}
package annotation
