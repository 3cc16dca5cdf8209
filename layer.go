package ink

import (
	"slices"

	"golang.org/x/image/math/f32"
)

// LayerFlags holds layer option bits.
type LayerFlags uint32

// Layer flag constants.
const (
	// LayerHide excludes the layer from drawing.
	LayerHide LayerFlags = 1 << iota

	// LayerLocked prevents editing; edit overlays are not drawn.
	LayerLocked

	// LayerOnionSkin draws ghosts of neighbouring frames.
	LayerOnionSkin

	// LayerGhostAlways draws ghosts even when onion skinning is off.
	LayerGhostAlways

	// LayerGhostPrevColor uses GhostPrevColor instead of the default ghost color.
	LayerGhostPrevColor

	// LayerGhostNextColor uses GhostNextColor instead of the default ghost color.
	LayerGhostNextColor

	// LayerUnlockColor allows editing strokes whose material is locked.
	LayerUnlockColor
)

// Frame is one keyframe of a layer: the strokes visible from its frame
// number until the next keyframe.
type Frame struct {
	Number  int
	Strokes []*Stroke

	// ViewMatrix is the transform snapshot recorded when the frame was
	// last drawn. It is written by the draw engine.
	ViewMatrix f32.Mat4
}

// AddStroke appends strokes to the frame.
func (f *Frame) AddStroke(s ...*Stroke) {
	f.Strokes = append(f.Strokes, s...)
}

// Layer owns a time-ordered sequence of frames. Frame numbers are unique
// and strictly increasing, which makes neighbour lookup and onion windows
// plain index arithmetic.
type Layer struct {
	Name  string
	Flags LayerFlags

	// Opacity scales stroke and fill alpha.
	Opacity float32

	// Tint is mixed into stroke and fill colors by its alpha.
	Tint RGBA

	// Thickness is added to every stroke's thickness.
	Thickness int

	// GhostPrev and GhostNext are the onion-skin step counts. A positive
	// value draws every frame within that many frame numbers, zero draws the
	// immediate neighbour only, negative disables the direction.
	GhostPrev int
	GhostNext int

	GhostPrevColor RGBA
	GhostNextColor RGBA

	// Parent is an optional parent transform applied after the object
	// matrix. Nil means identity.
	Parent *f32.Mat4

	frames []*Frame
}

// NewLayer creates a visible, fully opaque layer with no tint.
func NewLayer(name string) *Layer {
	return &Layer{
		Name:      name,
		Opacity:   1,
		GhostPrev: 1,
		GhostNext: 1,
	}
}

// Frames returns the layer's frames in frame-number order.
// The returned slice must not be modified.
func (l *Layer) Frames() []*Frame {
	return l.frames
}

// AddFrame returns the frame with the given number, creating it in order
// if it does not exist yet.
func (l *Layer) AddFrame(number int) *Frame {
	i, found := l.search(number)
	if found {
		return l.frames[i]
	}
	f := &Frame{Number: number, ViewMatrix: Identity()}
	l.frames = slices.Insert(l.frames, i, f)
	return f
}

// RemoveFrame deletes the frame with the given number.
// It reports whether a frame was removed.
func (l *Layer) RemoveFrame(number int) bool {
	i, found := l.search(number)
	if !found {
		return false
	}
	l.frames = slices.Delete(l.frames, i, i+1)
	return true
}

// FrameAt resolves the frame shown at scene frame number: the last frame
// whose number is at or before it. It returns the frame and its index, or
// nil and -1 when the layer has no frame at or before number.
func (l *Layer) FrameAt(number int) (*Frame, int) {
	i, found := l.search(number)
	if found {
		return l.frames[i], i
	}
	if i == 0 {
		return nil, -1
	}
	return l.frames[i-1], i - 1
}

// Before returns the frames preceding index i whose frame number is at
// most span below frames[i], nearest first. The walk stops at the first
// frame outside the window.
func (l *Layer) Before(i, span int) []*Frame {
	if i <= 0 || i >= len(l.frames) {
		return nil
	}
	cur := l.frames[i].Number
	var out []*Frame
	for j := i - 1; j >= 0; j-- {
		if cur-l.frames[j].Number > span {
			break
		}
		out = append(out, l.frames[j])
	}
	return out
}

// After returns the frames following index i whose frame number is at
// most span above frames[i], nearest first.
func (l *Layer) After(i, span int) []*Frame {
	if i < 0 || i >= len(l.frames)-1 {
		return nil
	}
	cur := l.frames[i].Number
	var out []*Frame
	for j := i + 1; j < len(l.frames); j++ {
		if l.frames[j].Number-cur > span {
			break
		}
		out = append(out, l.frames[j])
	}
	return out
}

// Prev returns the frame immediately before index i, or nil.
func (l *Layer) Prev(i int) *Frame {
	if i <= 0 || i >= len(l.frames) {
		return nil
	}
	return l.frames[i-1]
}

// Next returns the frame immediately after index i, or nil.
func (l *Layer) Next(i int) *Frame {
	if i < 0 || i+1 >= len(l.frames) {
		return nil
	}
	return l.frames[i+1]
}

// IsVisible reports whether the layer is drawn.
func (l *Layer) IsVisible() bool {
	return l.Flags&LayerHide == 0
}

// HasOnionSkin reports whether ghost frames are drawn for the layer.
func (l *Layer) HasOnionSkin() bool {
	return l.Flags&(LayerOnionSkin|LayerGhostAlways) != 0
}

// ParentMatrix returns the parent transform, or identity when unset.
func (l *Layer) ParentMatrix() f32.Mat4 {
	if l.Parent == nil {
		return Identity()
	}
	return *l.Parent
}

func (l *Layer) search(number int) (int, bool) {
	return slices.BinarySearchFunc(l.frames, number, func(f *Frame, n int) int {
		return f.Number - n
	})
}
