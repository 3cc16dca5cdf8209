package engine

import (
	"github.com/gogpu/ink/geom"
	"github.com/gogpu/ink/render"
)

// Option configures an Engine during creation.
//
// Example:
//
//	// Defaults: geom builders, space visibility, no GPU device
//	e := engine.New()
//
//	// Compile programs on a device and resolve images from a directory
//	e := engine.New(engine.WithDevice(dev), engine.WithImages(engine.DirImages("textures")))
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	builder    Builder
	visibility Visibility
	device     render.DeviceHandle
	images     ImageSource
	settings   Settings
	budgetMB   int
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		builder:    geom.New(),
		visibility: SpaceVisibility{},
		device:     render.NullDeviceHandle{},
		settings:   DefaultSettings(),
	}
}

// WithBuilder sets the geometry builders. A nil builder is ignored.
func WithBuilder(b Builder) Option {
	return func(o *options) {
		if b != nil {
			o.builder = b
		}
	}
}

// WithVisibility sets the stroke visibility predicate. A nil predicate
// is ignored.
func WithVisibility(v Visibility) Option {
	return func(o *options) {
		if v != nil {
			o.visibility = v
		}
	}
}

// WithDevice sets the device programs are compiled for. When the handle
// exposes a HAL device, shader modules are created on it.
func WithDevice(h render.DeviceHandle) Option {
	return func(o *options) {
		if h != nil {
			o.device = h
		}
	}
}

// WithImages sets the source material images are resolved from.
// Without one, texture fills draw without a texture.
func WithImages(src ImageSource) Option {
	return func(o *options) {
		o.images = src
	}
}

// WithSettings replaces the engine settings. Out-of-range values fall
// back to their defaults.
func WithSettings(s Settings) Option {
	return func(o *options) {
		o.settings = s.normalize()
	}
}

// WithTextureBudget sets the texture cache budget in megabytes,
// overriding Settings.TextureBudgetMB.
func WithTextureBudget(mb int) Option {
	return func(o *options) {
		o.budgetMB = mb
	}
}
