package ink

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/ink/batch"
)

// DataFlags holds drawing-wide state bits.
type DataFlags uint32

// Data flag constants.
const (
	// DataCacheDirty signals that cached geometry is stale. It is set by
	// editing code through the draw engine and cleared when the cache is
	// rebuilt.
	DataCacheDirty DataFlags = 1 << iota

	// DataEditMode is set while strokes are being edited.
	DataEditMode

	// DataShowEditLines draws the connecting lines between edit points.
	DataShowEditLines
)

// BufferFlags holds live buffer state bits.
type BufferFlags uint8

// BufferEraser marks the live buffer as an eraser gesture; it is never drawn.
const BufferEraser BufferFlags = 1

// BufferPoint is one sample of the stroke being drawn, in screen space.
type BufferPoint struct {
	X, Y     float32
	Pressure float32
	Strength float32
}

// Buffer is the live, uncommitted stroke the user is drawing.
type Buffer struct {
	Points    []BufferPoint
	Flags     BufferFlags
	Stroke    RGBA
	Fill      RGBA
	FillStyle FillStyle
}

// IsEraser reports whether the buffer is an eraser gesture.
func (b *Buffer) IsEraser() bool {
	return b.Flags&BufferEraser != 0
}

// Brush holds the active drawing tool settings.
type Brush struct {
	Name      string
	Thickness int
}

// Data is a layered, frame-based stroke drawing.
type Data struct {
	Layers []*Layer
	Flags  DataFlags

	// Buffer is the stroke being drawn, or nil.
	Buffer *Buffer

	// Cache holds the drawing's geometry batches. It is owned by the draw
	// engine; other code must not touch it.
	Cache *batch.Cache
}

// NewData creates an empty drawing.
func NewData() *Data {
	return &Data{}
}

// AddLayer appends a new layer and returns it.
func (d *Data) AddLayer(name string) *Layer {
	l := NewLayer(name)
	d.Layers = append(d.Layers, l)
	return l
}

// IsEditMode reports whether the drawing is in stroke edit mode.
func (d *Data) IsEditMode() bool {
	return d.Flags&DataEditMode != 0
}

// IsCacheDirty reports whether the cache dirty signal is set.
func (d *Data) IsCacheDirty() bool {
	return d.Flags&DataCacheDirty != 0
}

// Object places a drawing in the scene.
type Object struct {
	Name   string
	Matrix f32.Mat4
	Data   *Data
}

// NewObject creates an object at the origin.
func NewObject(name string, d *Data) *Object {
	return &Object{Name: name, Matrix: Identity(), Data: d}
}
