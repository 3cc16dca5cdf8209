// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// ErrEmptyImage is returned when a texture is requested for an image
// without pixels.
var ErrEmptyImage = errors.New("render: empty image")

// Texture is an image converted to tightly packed RGBA8 pixels, ready for
// upload by the host.
type Texture struct {
	Name   string
	Format gputypes.TextureFormat
	Pixels *image.RGBA
}

// NewTexture converts img to an RGBA8 texture. The source image is copied,
// so later changes to img do not affect the texture.
func NewTexture(name string, img image.Image) (*Texture, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Texture{
		Name:   name,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Pixels: dst,
	}, nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.Pixels.Bounds().Dx() }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.Pixels.Bounds().Dy() }

// Size returns the texture memory size in bytes.
func (t *Texture) Size() int64 {
	return int64(len(t.Pixels.Pix))
}
