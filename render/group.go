// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "golang.org/x/image/math/f32"

// UniformKind identifies the type of a uniform value.
type UniformKind uint8

// Uniform kinds.
const (
	UniformInt UniformKind = iota
	UniformFloat
	UniformVec2
	UniformVec4
)

// Uniform is a named uniform value. Scalars and vectors are stored in
// Value starting at component 0; integers are stored in Int.
type Uniform struct {
	Name  string
	Kind  UniformKind
	Value f32.Vec4
	Int   int32
}

// Float returns the scalar value of a float uniform.
func (u Uniform) Float() float32 { return u.Value[0] }

// Vec2 returns the first two components.
func (u Uniform) Vec2() f32.Vec2 { return f32.Vec2{u.Value[0], u.Value[1]} }

// Group is a program plus the uniform and texture bindings that the
// batches submitted against it are drawn with.
type Group struct {
	id       int
	program  *Program
	pass     *Pass
	uniforms []Uniform

	textureName string
	texture     *Texture
}

// ID returns the group's index within its pass.
func (g *Group) ID() int { return g.id }

// Program returns the group's program.
func (g *Group) Program() *Program { return g.program }

// Pass returns the pass the group was created in.
func (g *Group) Pass() *Pass { return g.pass }

// Uniforms returns the group's uniforms in the order they were set.
func (g *Group) Uniforms() []Uniform { return g.uniforms }

// Uniform looks up a uniform by name.
func (g *Group) Uniform(name string) (Uniform, bool) {
	for _, u := range g.uniforms {
		if u.Name == name {
			return u, true
		}
	}
	return Uniform{}, false
}

// SetInt sets an integer uniform.
func (g *Group) SetInt(name string, v int32) {
	g.set(Uniform{Name: name, Kind: UniformInt, Int: v})
}

// SetBool sets an integer uniform to 1 or 0.
func (g *Group) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	g.SetInt(name, i)
}

// SetFloat sets a float uniform.
func (g *Group) SetFloat(name string, v float32) {
	g.set(Uniform{Name: name, Kind: UniformFloat, Value: f32.Vec4{v}})
}

// SetVec2 sets a vec2 uniform.
func (g *Group) SetVec2(name string, v f32.Vec2) {
	g.set(Uniform{Name: name, Kind: UniformVec2, Value: f32.Vec4{v[0], v[1]}})
}

// SetVec4 sets a vec4 uniform.
func (g *Group) SetVec4(name string, v f32.Vec4) {
	g.set(Uniform{Name: name, Kind: UniformVec4, Value: v})
}

// SetTexture binds a texture under name. A nil texture clears the binding.
func (g *Group) SetTexture(name string, t *Texture) {
	if t == nil {
		g.textureName, g.texture = "", nil
		return
	}
	g.textureName, g.texture = name, t
}

// Texture returns the bound texture and its binding name, or nil.
func (g *Group) Texture() (string, *Texture) {
	return g.textureName, g.texture
}

// set replaces a uniform of the same name or appends a new one.
func (g *Group) set(u Uniform) {
	for i := range g.uniforms {
		if g.uniforms[i].Name == u.Name {
			g.uniforms[i] = u
			return
		}
	}
	g.uniforms = append(g.uniforms, u)
}
