// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "golang.org/x/image/math/f32"

// Call is one draw submission: a batch drawn with a group's bindings
// under a model transform.
type Call struct {
	Group     *Group
	Batch     *Batch
	Transform f32.Mat4
}

// Pass records render groups and draw submissions in order.
//
// Submitting is enqueue-only; nothing is drawn until the host replays
// Calls. Groups created in a pass are valid until the pass is reset.
type Pass struct {
	name   string
	groups []*Group
	calls  []Call
}

// NewPass creates an empty pass.
func NewPass(name string) *Pass {
	return &Pass{
		name:   name,
		groups: make([]*Group, 0, 16),
		calls:  make([]Call, 0, 64),
	}
}

// Name returns the pass name.
func (p *Pass) Name() string { return p.name }

// CreateGroup creates a render group for program in this pass.
func (p *Pass) CreateGroup(program *Program) *Group {
	g := &Group{
		id:      len(p.groups),
		program: program,
		pass:    p,
	}
	p.groups = append(p.groups, g)
	return g
}

// Submit enqueues a draw of b with g's bindings under transform.
// Submissions with a nil group or batch, or a released batch, are dropped.
func (p *Pass) Submit(g *Group, b *Batch, transform f32.Mat4) {
	if g == nil || b == nil || b.Released() {
		return
	}
	p.calls = append(p.calls, Call{Group: g, Batch: b, Transform: transform})
}

// Groups returns the groups created in the pass.
func (p *Pass) Groups() []*Group { return p.groups }

// Calls returns the submissions in order.
func (p *Pass) Calls() []Call { return p.calls }

// Reset clears groups and calls for reuse. Previously created groups
// become stale.
func (p *Pass) Reset() {
	clear(p.groups)
	p.groups = p.groups[:0]
	clear(p.calls)
	p.calls = p.calls[:0]
}
