package engine

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/batch"
	"github.com/gogpu/ink/render"
)

// populator carries the state of one population pass.
type populator struct {
	e     *Engine
	ob    *ink.Object
	d     *ink.Data
	view  *View
	st    *Storage
	cache *batch.Cache
}

// Populate runs one population pass for ob, submitting its draws to st.
//
// Hidden layers and layers without a frame at view.Frame are skipped. For
// every other layer the onion-skin ghosts are drawn first, then the
// resolved frame at the layer's opacity and tint. The stroke being drawn
// comes last. A pass never fails; drawing nothing is a valid result.
func (e *Engine) Populate(ob *ink.Object, view *View, st *Storage) {
	if ob == nil || ob.Data == nil || view == nil || st == nil {
		return
	}
	p := &populator{
		e:     e,
		ob:    ob,
		d:     ob.Data,
		view:  view,
		st:    st,
		cache: e.CacheFor(ob.Data, view.Frame),
	}
	p.cache.Begin()
	st.registry.Reset()
	calls := len(st.pass.Calls())

	for _, l := range p.d.Layers {
		if !l.IsVisible() {
			continue
		}
		f, i := l.FrameAt(view.Frame)
		if f == nil {
			continue
		}
		if l.HasOnionSkin() {
			p.drawOnionSkins(l, i)
		}
		p.drawStrokes(l, f, l.Opacity, l.Tint, false, false)
	}
	p.drawBuffer()
	p.cache.Commit()

	s := p.cache.Stats()
	ink.Logger().Debug("engine: populated",
		"object", ob.Name,
		"frame", view.Frame,
		"strokes", s.Cursor,
		"builds", s.Builds,
		"reuses", s.Reuses,
		"materials", st.registry.Len(),
		"calls", len(st.pass.Calls())-calls)
}

// drawStrokes draws the strokes of frame f of layer l.
//
// The frame's transform snapshot is updated first. Every stroke that
// passes the visibility check takes exactly one cache slot, whatever it
// draws. Onion draws use tint as the ghost color and never draw edit
// overlays; custom selects the raw tint over the material color.
func (p *populator) drawStrokes(l *ink.Layer, f *ink.Frame, opacity float32, tint ink.RGBA, onion, custom bool) {
	f.ViewMatrix = ink.MulMat4(p.ob.Matrix, l.ParentMatrix())

	for _, s := range f.Strokes {
		if !p.e.visibility.CanDraw(p.view, f, s) {
			continue
		}
		m := s.Material
		if m == nil {
			m = p.e.fallback
		}

		var fillGroup, strokeGroup *render.Group
		if len(s.Points) > 1 {
			fillGroup, strokeGroup = p.e.FindOrCreate(p.st, p.view, m)
		}
		if len(s.Points) >= 3 {
			p.drawFill(l, f, s, m, fillGroup, tint, onion, custom)
		}
		p.drawStroke(l, f, s, m, strokeGroup, opacity, tint, onion, custom)
		if !onion {
			p.drawEdit(l, f, s, m)
		}
		p.cache.Advance()
	}
}

// drawFill draws the fill of a closed stroke. Solid fills at or below the
// fill threshold are skipped; procedural fills always draw.
func (p *populator) drawFill(l *ink.Layer, f *ink.Frame, s *ink.Stroke, m *ink.Material, g *render.Group, tint ink.RGBA, onion, custom bool) {
	color := m.Fill.MixRGB(tint, tint.A).WithAlpha(m.Fill.A * l.Opacity)
	if color.A <= p.e.settings.FillThreshold && !m.FillStyle.IsProcedural() {
		return
	}
	if onion {
		color = ghostColor(m.Fill, tint, custom)
	}
	b := p.cache.Fetch(batch.KindFill, func() *render.Batch {
		return p.e.builder.Fill(s, color)
	})
	p.st.pass.Submit(g, b, f.ViewMatrix)
}

// drawStroke draws the outline of a stroke, or a single dot for a one
// point stroke. Nothing is drawn when the combined thickness is not
// positive.
func (p *populator) drawStroke(l *ink.Layer, f *ink.Frame, s *ink.Stroke, m *ink.Material, g *render.Group, opacity float32, tint ink.RGBA, onion, custom bool) {
	color := m.Stroke.MixRGB(tint, tint.A).WithAlpha(m.Stroke.A * opacity)
	if onion {
		color = ghostColor(m.Stroke, tint, custom)
	}
	thickness := s.Thickness + l.Thickness
	if thickness <= 0 {
		return
	}
	switch len(s.Points) {
	case 0:
	case 1:
		b := p.cache.Fetch(batch.KindPoint, func() *render.Batch {
			return p.e.builder.Point(s.Points[0], thickness, color)
		})
		p.st.pass.Submit(p.e.pointGroup(p.st), b, f.ViewMatrix)
	default:
		b := p.cache.Fetch(batch.KindStroke, func() *render.Batch {
			return p.e.builder.Stroke(f, s, thickness, color)
		})
		p.st.pass.Submit(g, b, f.ViewMatrix)
	}
}

// drawEdit draws the edit overlay of a selected stroke while the drawing
// is in edit mode. Locked layers are skipped, and so are strokes with a
// locked material unless the layer unlocks colors.
func (p *populator) drawEdit(l *ink.Layer, f *ink.Frame, s *ink.Stroke, m *ink.Material) {
	if l.Flags&ink.LayerLocked != 0 || !p.d.IsEditMode() || !s.IsSelected() {
		return
	}
	if m.IsLocked() && l.Flags&ink.LayerUnlockColor == 0 {
		return
	}
	b := p.cache.Fetch(batch.KindEdit, func() *render.Batch {
		return p.e.builder.EditOverlay(s, p.view.Tools.SculptAlpha, p.d.Flags)
	})
	p.st.pass.Submit(p.e.editGroup(p.st), b, f.ViewMatrix)
}

// ghostColor returns the onion color of a material color: the tint itself
// when the layer has a custom ghost color, the material color at the
// tint's alpha otherwise.
func ghostColor(c, tint ink.RGBA, custom bool) ink.RGBA {
	if custom {
		return tint
	}
	return c.WithAlpha(tint.A)
}
