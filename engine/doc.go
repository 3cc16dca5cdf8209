// Package engine populates render passes from layered stroke drawings.
//
// An [Engine] is the explicitly owned draw context: it holds the shader
// programs shared by every drawing, the geometry builders, the stroke
// visibility predicate and the material texture cache. Create one with
// [New], use it for any number of objects and release it with
// [Engine.Close].
//
// Each redraw runs [Engine.Populate] once per visible object. A pass walks
// the visible layers, resolves the frame shown at the view's scene frame,
// draws onion-skin ghost frames around it and then the frame itself, and
// finally the stroke being drawn. Geometry is served from the drawing's
// batch cache: the first pass of a cache generation builds every batch and
// later passes replay the same slots until the cache is invalidated, the
// scene frame changes or edit mode is toggled.
//
// Editing code must call [Engine.Invalidate] after every change to stroke
// geometry and [Engine.Release] when a drawing is deleted.
//
// Different objects may be populated concurrently as long as each uses its
// own [Storage]. A single object must not be populated from two goroutines
// at once.
package engine
