package engine

import (
	"github.com/gogpu/ink/render"
)

// Storage holds the render state of one draw-list generation: the pass
// draws are submitted to, the material registry and the shared groups
// for points, edit overlays and the live buffer.
//
// Groups are valid until the next Reset. A Storage must not be shared by
// concurrent population passes.
type Storage struct {
	pass     *render.Pass
	registry Registry

	point      *render.Group
	edit       *render.Group
	drawStroke *render.Group
	drawFill   *render.Group
}

// NewStorage creates storage that submits to pass. A nil pass gets a new
// pass named "ink".
func NewStorage(pass *render.Pass) *Storage {
	if pass == nil {
		pass = render.NewPass("ink")
	}
	return &Storage{pass: pass}
}

// Pass returns the pass draws are submitted to.
func (st *Storage) Pass() *render.Pass { return st.pass }

// Registry returns the material registry of the last population pass.
func (st *Storage) Registry() *Registry { return &st.registry }

// Reset starts a new draw-list generation: the pass is emptied and every
// group is dropped.
func (st *Storage) Reset() {
	st.pass.Reset()
	st.registry.Reset()
	st.point, st.edit, st.drawStroke, st.drawFill = nil, nil, nil, nil
}

// PointGroup returns the volumetric point group, if created.
func (st *Storage) PointGroup() *render.Group { return st.point }

// EditGroup returns the edit overlay group, if created.
func (st *Storage) EditGroup() *render.Group { return st.edit }

// DrawingStrokeGroup returns the live stroke group, if created.
func (st *Storage) DrawingStrokeGroup() *render.Group { return st.drawStroke }

// DrawingFillGroup returns the live fill group, if created.
func (st *Storage) DrawingFillGroup() *render.Group { return st.drawFill }
