package engine

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/render"
)

// drawBuffer draws the stroke being drawn. The live batches are rebuilt
// on every pass while a drawing session holds a non-eraser buffer and are
// released otherwise. The buffer is in screen space, so it is drawn with
// the identity transform.
func (p *populator) drawBuffer() {
	buf := p.d.Buffer
	if !p.view.SessionActive || buf == nil || len(buf.Points) == 0 || buf.IsEraser() {
		p.cache.ClearLive()
		return
	}
	thickness := DefaultBrushThickness
	if b := p.view.Tools.Brush; b != nil {
		thickness = b.Thickness
	}
	unit := ink.Identity()

	if len(buf.Points) == 1 {
		b := p.e.builder.LivePoint(buf, thickness)
		p.cache.SetLive(b, nil)
		p.st.pass.Submit(p.e.pointGroup(p.st), b, unit)
		return
	}

	stroke := p.e.builder.LivePolyline(buf, unit, thickness)
	var fill *render.Batch
	if len(buf.Points) >= 3 && (buf.Fill.A > p.e.settings.FillThreshold || buf.FillStyle.IsProcedural()) {
		color := buf.Fill
		if buf.FillStyle.IsProcedural() {
			color.A = p.e.settings.LivePreviewAlpha
		}
		fill = p.e.builder.LiveFill(buf.Points, color)
	}
	p.cache.SetLive(stroke, fill)

	p.st.pass.Submit(p.e.drawingStrokeGroup(p.st, p.view), stroke, unit)
	if fill != nil {
		p.st.pass.Submit(p.e.drawingFillGroup(p.st), fill, unit)
	}
}
