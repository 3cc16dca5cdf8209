package ink

import "golang.org/x/image/math/f32"

// FillStyle selects how the interior of a closed stroke is shaded.
// Any style other than FillSolid is procedural.
type FillStyle int32

// Fill style constants. The numeric values are shared with the fill shader.
const (
	FillSolid FillStyle = iota
	FillGradient
	FillRadial
	FillChecker
	FillTexture
)

// String returns a human-readable name for the fill style.
func (s FillStyle) String() string {
	switch s {
	case FillSolid:
		return "Solid"
	case FillGradient:
		return "Gradient"
	case FillRadial:
		return "Radial"
	case FillChecker:
		return "Checker"
	case FillTexture:
		return "Texture"
	default:
		return "Unknown"
	}
}

// IsProcedural reports whether the style is drawn by a procedural pattern.
func (s FillStyle) IsProcedural() bool {
	return s != FillSolid
}

// MaterialFlags holds material option bits.
type MaterialFlags uint16

// Material flag constants.
const (
	// MaterialLocked prevents editing strokes that use the material.
	MaterialLocked MaterialFlags = 1 << iota

	// MaterialTextureMix mixes the image texture into non-texture fills.
	MaterialTextureMix

	// MaterialFlipFill swaps the primary and secondary fill colors.
	MaterialFlipFill

	// MaterialTextureClamp clamps texture coordinates instead of repeating.
	MaterialTextureClamp
)

// Gradient holds the procedural gradient and checker parameters.
type Gradient struct {
	Angle   float32
	Radius  float32
	BoxSize float32
	Scale   f32.Vec2
	Shift   f32.Vec2
}

// TextureMapping holds the image texture placement parameters.
type TextureMapping struct {
	Angle   float32
	Scale   f32.Vec2
	Shift   f32.Vec2
	Opacity float32
}

// Material describes how strokes are colored and filled.
// Materials are compared by identity: two distinct *Material values with
// equal fields are different materials.
type Material struct {
	Name string

	// Stroke is the line color.
	Stroke RGBA

	// Fill is the primary fill color; Secondary feeds procedural styles.
	Fill      RGBA
	Secondary RGBA
	FillStyle FillStyle
	MixFactor float32

	Gradient Gradient
	Texture  TextureMapping

	// Image names the texture image used by FillTexture and texture mix.
	// Empty means no image.
	Image string

	Flags MaterialFlags
}

// NewMaterial creates a material with the given line and fill colors,
// solid fill and neutral pattern parameters.
func NewMaterial(name string, stroke, fill RGBA) *Material {
	return &Material{
		Name:   name,
		Stroke: stroke,
		Fill:   fill,
		Gradient: Gradient{
			Radius:  0.5,
			BoxSize: 1,
			Scale:   f32.Vec2{1, 1},
		},
		Texture: TextureMapping{
			Scale:   f32.Vec2{1, 1},
			Opacity: 1,
		},
	}
}

// IsLocked reports whether the material is color-locked.
func (m *Material) IsLocked() bool {
	return m.Flags&MaterialLocked != 0
}

// UsesTexture reports whether the fill samples the material image.
func (m *Material) UsesTexture() bool {
	return m.FillStyle == FillTexture || m.Flags&MaterialTextureMix != 0
}
