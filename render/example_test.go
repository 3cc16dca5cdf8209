// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ink/render"
)

// ExamplePass demonstrates recording draws against render groups.
func ExamplePass() {
	pass := render.NewPass("strokes")

	stroke := render.NewProgram(render.ProgramStroke, gputypes.TextureFormatRGBA8Unorm)
	g := pass.CreateGroup(stroke)
	g.SetVec2("Viewport", [2]float32{800, 600})

	b := render.NewBatch("stroke", make([]float32, 6*render.FloatsPerVertex))
	pass.Submit(g, b, [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1})

	for _, c := range pass.Calls() {
		fmt.Println(c.Group.Program().Label, c.Batch.VertexCount())
	}
	// Output: ink_stroke 6
}
