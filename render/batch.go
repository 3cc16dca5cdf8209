// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// Vertex layout shared by every stroke batch: position (xyz plus a size
// or side channel in w) followed by a straight RGBA color.
const (
	// FloatsPerVertex is the number of float32 values per vertex.
	FloatsPerVertex = 8

	// VertexStride is the byte size of one vertex.
	VertexStride = FloatsPerVertex * 4
)

// VertexLayout describes the batch vertex format to pipeline creation.
var VertexLayout = gputypes.VertexBufferLayout{
	ArrayStride: VertexStride,
	StepMode:    gputypes.VertexStepModeVertex,
	Attributes: []gputypes.VertexAttribute{
		{
			Format:         gputypes.VertexFormatFloat32x4,
			Offset:         0,
			ShaderLocation: 0,
		},
		{
			Format:         gputypes.VertexFormatFloat32x4,
			Offset:         16,
			ShaderLocation: 1,
		},
	},
}

// Batch is an owned vertex batch ready for drawing.
//
// A batch is created by a geometry builder and owned by whoever stores it,
// normally the batch cache. Release drops the vertex data; a released
// batch must not be submitted again.
type Batch struct {
	// Label is a debug label.
	Label string

	// Topology is the primitive topology of Vertices.
	Topology gputypes.PrimitiveTopology

	vertices []float32
	released bool
}

// NewBatch creates a triangle-list batch from packed vertices.
// len(vertices) should be a multiple of FloatsPerVertex.
func NewBatch(label string, vertices []float32) *Batch {
	return &Batch{
		Label:    label,
		Topology: gputypes.PrimitiveTopologyTriangleList,
		vertices: vertices,
	}
}

// Vertices returns the packed vertex data.
func (b *Batch) Vertices() []float32 {
	return b.vertices
}

// VertexCount returns the number of vertices in the batch.
func (b *Batch) VertexCount() int {
	return len(b.vertices) / FloatsPerVertex
}

// Release frees the batch data. Releasing twice, or releasing nil, is a no-op.
func (b *Batch) Release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	b.vertices = nil
}

// Released reports whether Release has been called.
func (b *Batch) Released() bool {
	return b == nil || b.released
}
