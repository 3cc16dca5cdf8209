// Package shader holds the WGSL sources of the stroke engine programs and
// compiles them to SPIR-V.
package shader

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/ink/render"
)

//go:embed shaders/fill.wgsl
var fillSource string

//go:embed shaders/stroke.wgsl
var strokeSource string

//go:embed shaders/point.wgsl
var pointSource string

//go:embed shaders/drawing_fill.wgsl
var drawingFillSource string

// ErrUnknownProgram is returned for a program kind without a source.
var ErrUnknownProgram = errors.New("shader: unknown program")

// Source returns the WGSL source for a program kind. Edit overlays reuse
// the point program.
func Source(kind render.ProgramKind) (string, error) {
	switch kind {
	case render.ProgramFill:
		return fillSource, nil
	case render.ProgramStroke:
		return strokeSource, nil
	case render.ProgramPoint, render.ProgramEdit:
		return pointSource, nil
	case render.ProgramDrawingFill:
		return drawingFillSource, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownProgram, kind)
	}
}

// Compile compiles WGSL source to SPIR-V words.
func Compile(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// CompileProgram compiles the source of kind into p.SPIRV.
func CompileProgram(p *render.Program) error {
	src, err := Source(p.Kind)
	if err != nil {
		return err
	}
	code, err := Compile(src)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Label, err)
	}
	p.SPIRV = code
	return nil
}

// CreateModule creates a HAL shader module from the program's SPIR-V.
func CreateModule(device hal.Device, p *render.Program) error {
	if !p.IsCompiled() {
		return fmt.Errorf("%s: no SPIR-V", p.Label)
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: p.Label,
		Source: hal.ShaderSource{
			SPIRV: p.SPIRV,
		},
	})
	if err != nil {
		return fmt.Errorf("%s: create shader module: %w", p.Label, err)
	}
	p.Module = module
	return nil
}

// DestroyModule destroys the program's shader module, if any.
func DestroyModule(device hal.Device, p *render.Program) {
	if device == nil || p.Module == nil {
		return
	}
	device.DestroyShaderModule(p.Module)
	p.Module = nil
}
