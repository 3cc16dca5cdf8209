package engine

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/ink"
)

// ToolSettings holds the tool state that affects drawing.
type ToolSettings struct {
	// SculptAlpha is the alpha of edit overlay points.
	SculptAlpha float32

	// Brush is the active drawing brush, or nil.
	Brush *ink.Brush
}

// View describes what a population pass draws for.
type View struct {
	// Frame is the current scene frame.
	Frame int

	// Size is the viewport size in pixels.
	Size f32.Vec2

	// Space is the coordinate space of the view.
	Space ink.Space

	Tools ToolSettings

	// SessionActive is set while the user is drawing a stroke.
	SessionActive bool
}
