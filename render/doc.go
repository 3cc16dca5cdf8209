// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the renderer-side objects the ink draw engine
// produces and consumes.
//
// # Key Principle
//
// ink RECEIVES a GPU device from the host application, it does NOT create
// its own. Everything in this package is a description that a host
// renderer replays: batches of vertices, programs, render groups with
// their uniforms, and the ordered list of draw calls of a pass.
//
// # Core Types
//
//   - DeviceHandle: GPU device access from the host application
//   - Batch: an owned vertex batch built from stroke geometry
//   - Program: a compiled shader program with its pipeline state
//   - Group: a program plus per-material uniform and texture bindings
//   - Pass: the ordered draw submissions of one population pass
//   - Texture: an RGBA8 image prepared for upload
//
// # Usage
//
//	pass := render.NewPass("strokes")
//	grp := pass.CreateGroup(strokeProgram)
//	grp.SetVec2("Viewport", f32.Vec2{800, 600})
//	pass.Submit(grp, batch, transform)
//
//	for _, call := range pass.Calls() {
//	    // bind call.Group, upload call.Batch, draw with call.Transform
//	}
//
// # Thread Safety
//
// Pass and Group are NOT thread-safe. A pass is filled by one population
// pass at a time.
package render
