// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ProgramKind identifies one of the stroke engine's shader programs.
type ProgramKind uint8

// Program kinds.
const (
	// ProgramFill shades closed stroke interiors with solid or procedural fills.
	ProgramFill ProgramKind = iota

	// ProgramStroke draws stroke outlines.
	ProgramStroke

	// ProgramPoint draws single-point strokes as volumetric dots.
	ProgramPoint

	// ProgramEdit draws edit-mode point overlays.
	ProgramEdit

	// ProgramDrawingFill draws the simulated fill of the live buffer.
	ProgramDrawingFill

	// NumPrograms is the number of program kinds.
	NumPrograms
)

// String returns a human-readable name for the program kind.
func (k ProgramKind) String() string {
	switch k {
	case ProgramFill:
		return "fill"
	case ProgramStroke:
		return "stroke"
	case ProgramPoint:
		return "point"
	case ProgramEdit:
		return "edit"
	case ProgramDrawingFill:
		return "drawing_fill"
	default:
		return "unknown"
	}
}

// Program is a shader program and the pipeline state it is drawn with.
//
// SPIRV is nil when compilation failed or was not attempted; Module is nil
// unless the host exposed a HAL device. Draw calls can still be recorded
// against such a program.
type Program struct {
	Kind  ProgramKind
	Label string

	SPIRV  []uint32
	Module hal.ShaderModule

	Primitive gputypes.PrimitiveState
	Target    gputypes.ColorTargetState
}

// NewProgram creates a program description for kind targeting format,
// blended with premultiplied alpha.
func NewProgram(kind ProgramKind, format gputypes.TextureFormat) *Program {
	blend := gputypes.BlendStatePremultiplied()
	return &Program{
		Kind:  kind,
		Label: "ink_" + kind.String(),
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Target: gputypes.ColorTargetState{
			Format:    format,
			Blend:     &blend,
			WriteMask: gputypes.ColorWriteMaskAll,
		},
	}
}

// IsCompiled reports whether SPIR-V code is available.
func (p *Program) IsCompiled() bool {
	return len(p.SPIRV) > 0
}
