package ink

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Colors are straight (not
// premultiplied) because tinting mixes the RGB channels independently
// of alpha.
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// RGBA4 creates a color from RGBA components.
func RGBA4(r, g, b, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Common colors.
var (
	Transparent = RGBA{}
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
)

// Vec4 returns the color as a shader vec4.
func (c RGBA) Vec4() f32.Vec4 {
	return f32.Vec4{c.R, c.G, c.B, c.A}
}

// WithAlpha returns c with its alpha channel replaced.
func (c RGBA) WithAlpha(a float32) RGBA {
	c.A = a
	return c
}

// MixRGB linearly interpolates the RGB channels of c toward t by fac
// and keeps the alpha of c. A fac of 0 returns c, 1 returns t's RGB.
func (c RGBA) MixRGB(t RGBA, fac float32) RGBA {
	return RGBA{
		R: lerp(c.R, t.R, fac),
		G: lerp(c.G, t.G, fac),
		B: lerp(c.B, t.B, fac),
		A: c.A,
	}
}

// Clamp returns c with every channel limited to [0, 1].
func (c RGBA) Clamp() RGBA {
	return RGBA{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
