package engine

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/geom"
	"github.com/gogpu/ink/render"
)

// Builder turns stroke data into renderable batches. Every method returns
// a new batch owned by the caller; the engine stores it in the drawing's
// cache.
type Builder interface {
	Fill(s *ink.Stroke, color ink.RGBA) *render.Batch
	Stroke(f *ink.Frame, s *ink.Stroke, thickness int, color ink.RGBA) *render.Batch
	Point(p ink.Point, thickness int, color ink.RGBA) *render.Batch
	EditOverlay(s *ink.Stroke, alpha float32, flags ink.DataFlags) *render.Batch
	LivePoint(buf *ink.Buffer, thickness int) *render.Batch
	LivePolyline(buf *ink.Buffer, m f32.Mat4, thickness int) *render.Batch
	LiveFill(points []ink.BufferPoint, color ink.RGBA) *render.Batch
}

var _ Builder = (*geom.Builder)(nil)

// Visibility decides whether a stroke of frame f can be drawn in view.
type Visibility interface {
	CanDraw(view *View, f *ink.Frame, s *ink.Stroke) bool
}

// VisibilityFunc adapts a function to the Visibility interface.
type VisibilityFunc func(view *View, f *ink.Frame, s *ink.Stroke) bool

// CanDraw calls fn(view, f, s).
func (fn VisibilityFunc) CanDraw(view *View, f *ink.Frame, s *ink.Stroke) bool {
	return fn(view, f, s)
}

// SpaceVisibility draws strokes that have points and were drawn in the
// coordinate space of the view.
type SpaceVisibility struct{}

// CanDraw implements Visibility.
func (SpaceVisibility) CanDraw(view *View, _ *ink.Frame, s *ink.Stroke) bool {
	return len(s.Points) > 0 && s.Space() == view.Space
}
