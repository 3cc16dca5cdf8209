// Package ink provides the data model of layered, frame-based stroke
// drawings and the shared logger of the ink packages.
//
// # Overview
//
// A drawing ([Data]) holds an ordered list of layers. Each [Layer] owns a
// timeline of frames ordered by frame number, and each [Frame] owns the
// strokes shown from that frame number until the next frame. A [Stroke] is
// an ordered sequence of points drawn with a [Material]. An [Object]
// places a drawing in the scene.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ink"
//	    "github.com/gogpu/ink/engine"
//	)
//
//	d := ink.NewData()
//	l := d.AddLayer("lines")
//	red := ink.NewMaterial("red", ink.RGB(1, 0, 0), ink.Transparent)
//	l.AddFrame(1).AddStroke(ink.NewStroke(red, 3, ink.Pt(0, 0, 0), ink.Pt(1, 1, 0)))
//
//	e := engine.New()
//	defer e.Close()
//
//	st := engine.NewStorage(nil)
//	e.Populate(ink.NewObject("sketch", d), &engine.View{Frame: 1}, st)
//
// # Architecture
//
// The module is organized into:
//   - ink: data model, colors, transforms, logging
//   - batch: per-drawing cache of geometry batches
//   - geom: geometry builders producing vertex batches
//   - render: batches, programs, render groups and passes
//   - engine: the draw context and the population pass
//
// # Coordinate System
//
// Transforms are row-major 4x4 matrices ([f32.Mat4]) applied to column
// vectors; the translation lives in the last column. Colors are straight
// (not premultiplied) RGBA with components in [0, 1].
//
// # Logging
//
// ink produces no log output by default. Use [SetLogger] to route
// diagnostics of every ink package to a [log/slog] logger.
package ink
