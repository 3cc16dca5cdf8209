package engine

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Registered image decoders for material images.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNoImage is returned when an image name cannot be resolved.
var ErrNoImage = errors.New("engine: image not found")

// ImageSource resolves material image names to images.
type ImageSource interface {
	Image(name string) (image.Image, error)
}

// ImageFunc adapts a function to the ImageSource interface.
type ImageFunc func(name string) (image.Image, error)

// Image calls fn(name).
func (fn ImageFunc) Image(name string) (image.Image, error) {
	return fn(name)
}

// MapImages resolves names from an in-memory map.
type MapImages map[string]image.Image

// Image implements ImageSource.
func (m MapImages) Image(name string) (image.Image, error) {
	img, ok := m[name]
	if !ok || img == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoImage, name)
	}
	return img, nil
}

// DirImages resolves names as paths relative to a directory. PNG, JPEG,
// BMP, TIFF and WebP files are supported.
type DirImages string

// Image implements ImageSource.
func (d DirImages) Image(name string) (image.Image, error) {
	if name == "" || !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %q", ErrNoImage, name)
	}
	f, err := os.Open(filepath.Join(string(d), name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNoImage, name)
		}
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("engine: decode image %q: %w", name, err)
	}
	return img, nil
}
