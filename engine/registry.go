package engine

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/render"
)

// Registry keeps one fill group and one stroke group per material used in
// a population pass. Materials are matched by identity.
//
// Lookup is a linear scan: a pass uses few materials compared to strokes.
type Registry struct {
	materials []*ink.Material
	fill      []*render.Group
	stroke    []*render.Group
}

// Find returns the index of m, or -1.
func (r *Registry) Find(m *ink.Material) int {
	for i, rm := range r.materials {
		if rm == m {
			return i
		}
	}
	return -1
}

// Groups returns the fill and stroke groups at index i.
func (r *Registry) Groups(i int) (fill, stroke *render.Group) {
	return r.fill[i], r.stroke[i]
}

// Len returns the number of registered materials.
func (r *Registry) Len() int { return len(r.materials) }

// Materials returns the registered materials in registration order.
func (r *Registry) Materials() []*ink.Material { return r.materials }

// Reset forgets every material.
func (r *Registry) Reset() {
	clear(r.materials)
	r.materials = r.materials[:0]
	clear(r.fill)
	r.fill = r.fill[:0]
	clear(r.stroke)
	r.stroke = r.stroke[:0]
}

func (r *Registry) add(m *ink.Material, fill, stroke *render.Group) int {
	r.materials = append(r.materials, m)
	r.fill = append(r.fill, fill)
	r.stroke = append(r.stroke, stroke)
	return len(r.materials) - 1
}

// FindOrCreate returns the groups of m, creating them in st on first use.
func (e *Engine) FindOrCreate(st *Storage, view *View, m *ink.Material) (fill, stroke *render.Group) {
	r := &st.registry
	if i := r.Find(m); i >= 0 {
		return r.Groups(i)
	}
	fill = e.newFillGroup(st.pass, m)
	stroke = e.newStrokeGroup(st.pass, view)
	r.add(m, fill, stroke)
	return fill, stroke
}

// newFillGroup creates a fill group carrying the material's pattern
// parameters and, when the fill samples an image that resolves, its
// texture.
func (e *Engine) newFillGroup(pass *render.Pass, m *ink.Material) *render.Group {
	g := pass.CreateGroup(e.Program(render.ProgramFill))

	g.SetVec4("color2", m.Secondary.Vec4())
	g.SetInt("fill_type", int32(m.FillStyle))
	g.SetFloat("mix_factor", m.MixFactor)

	g.SetFloat("g_angle", m.Gradient.Angle)
	g.SetFloat("g_radius", m.Gradient.Radius)
	g.SetFloat("g_boxsize", m.Gradient.BoxSize)
	g.SetVec2("g_scale", m.Gradient.Scale)
	g.SetVec2("g_shift", m.Gradient.Shift)

	g.SetFloat("t_angle", m.Texture.Angle)
	g.SetVec2("t_scale", m.Texture.Scale)
	g.SetVec2("t_shift", m.Texture.Shift)
	g.SetFloat("t_opacity", m.Texture.Opacity)
	g.SetBool("t_mix", m.Flags&ink.MaterialTextureMix != 0)
	g.SetBool("t_flip", m.Flags&ink.MaterialFlipFill != 0)

	if m.UsesTexture() {
		tex, err := e.Texture(m.Image)
		if err != nil {
			ink.Logger().Warn("engine: fill texture unavailable",
				"material", m.Name, "image", m.Image, "err", err)
			return g
		}
		g.SetTexture("myTexture", tex)
		g.SetBool("t_clamp", m.Flags&ink.MaterialTextureClamp != 0)
	}
	return g
}

// newStrokeGroup creates a stroke group for the view's viewport.
func (e *Engine) newStrokeGroup(pass *render.Pass, view *View) *render.Group {
	g := pass.CreateGroup(e.Program(render.ProgramStroke))
	g.SetVec2("Viewport", view.Size)
	return g
}

// pointGroup returns the volumetric point group of st, creating it once.
func (e *Engine) pointGroup(st *Storage) *render.Group {
	if st.point == nil {
		st.point = st.pass.CreateGroup(e.Program(render.ProgramPoint))
	}
	return st.point
}

// editGroup returns the edit overlay group of st, creating it once.
func (e *Engine) editGroup(st *Storage) *render.Group {
	if st.edit == nil {
		st.edit = st.pass.CreateGroup(e.Program(render.ProgramEdit))
	}
	return st.edit
}

// drawingStrokeGroup returns the live stroke group of st, creating it once.
func (e *Engine) drawingStrokeGroup(st *Storage, view *View) *render.Group {
	if st.drawStroke == nil {
		st.drawStroke = e.newStrokeGroup(st.pass, view)
	}
	return st.drawStroke
}

// drawingFillGroup returns the live fill group of st, creating it once.
func (e *Engine) drawingFillGroup(st *Storage) *render.Group {
	if st.drawFill == nil {
		st.drawFill = st.pass.CreateGroup(e.Program(render.ProgramDrawingFill))
	}
	return st.drawFill
}
