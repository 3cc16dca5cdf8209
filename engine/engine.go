package engine

import (
	"fmt"
	"sync"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/shader"
	"github.com/gogpu/ink/internal/texcache"
	"github.com/gogpu/ink/render"
)

// Engine is the shared draw context for stroke drawings.
//
// Engine is safe for concurrent use by population passes of different
// objects.
type Engine struct {
	builder    Builder
	visibility Visibility
	device     render.DeviceHandle
	images     ImageSource
	settings   Settings

	mu       sync.Mutex
	programs [render.NumPrograms]*render.Program
	closed   bool

	textures *texcache.Cache

	// fallback colors strokes without a material.
	fallback *ink.Material
}

// New creates an engine. Programs are compiled on first use.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	budget := o.settings.TextureBudgetMB
	if o.budgetMB > 0 {
		budget = o.budgetMB
	}
	e := &Engine{
		builder:    o.builder,
		visibility: o.visibility,
		device:     o.device,
		images:     o.images,
		settings:   o.settings,
		textures:   texcache.New(budget),
		fallback:   ink.NewMaterial("default", ink.Black, ink.Transparent),
	}
	ink.Logger().Info("engine: created",
		"format", render.TargetFormat(e.device),
		"slot_chunk", e.settings.SlotChunk,
		"texture_budget_mb", budget)
	return e
}

// Settings returns the engine settings.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Program returns the program of the given kind, compiling it on first
// use. A program that fails to compile is still returned; its draws are
// recorded but it carries no shader code. After Close, Program returns a
// fresh program without shader code that the engine does not keep.
func (e *Engine) Program(kind render.ProgramKind) *render.Program {
	if kind >= render.NumPrograms {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return render.NewProgram(kind, render.TargetFormat(e.device))
	}
	if p := e.programs[kind]; p != nil {
		return p
	}
	p := render.NewProgram(kind, render.TargetFormat(e.device))
	if err := e.compile(p); err != nil {
		ink.Logger().Warn("engine: program unavailable", "program", p.Label, "err", err)
	}
	e.programs[kind] = p
	return p
}

// compile compiles p to SPIR-V and, when a HAL device is available,
// creates its shader module.
func (e *Engine) compile(p *render.Program) error {
	if err := shader.CompileProgram(p); err != nil {
		return err
	}
	device, ok := render.HalDevice(e.device)
	if !ok {
		return nil
	}
	return shader.CreateModule(device, p)
}

// Close releases the programs and the texture cache. Drawings keep their
// batch caches; release them with Release.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true

	device, ok := render.HalDevice(e.device)
	n := 0
	for i, p := range e.programs {
		if p == nil {
			continue
		}
		if ok {
			shader.DestroyModule(device, p)
		}
		e.programs[i] = nil
		n++
	}
	e.textures.InvalidateAll()
	ink.Logger().Info("engine: closed", "programs", n)
}

// Texture resolves a material image to a texture through the texture
// cache.
func (e *Engine) Texture(name string) (*render.Texture, error) {
	if tex, ok := e.textures.Get(name); ok {
		return tex, nil
	}
	if e.images == nil || name == "" {
		return nil, fmt.Errorf("%w: %q", ErrNoImage, name)
	}
	img, err := e.images.Image(name)
	if err != nil {
		return nil, err
	}
	tex, err := render.NewTexture(name, img)
	if err != nil {
		return nil, fmt.Errorf("engine: texture %q: %w", name, err)
	}
	e.textures.Put(name, tex)
	return tex, nil
}

// InvalidateImage drops the cached texture of a material image, so the
// next pass resolves it again.
func (e *Engine) InvalidateImage(name string) {
	e.textures.Invalidate(name)
}

// TextureStats returns the texture cache statistics.
func (e *Engine) TextureStats() texcache.Stats {
	return e.textures.Stats()
}
