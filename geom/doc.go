// Package geom builds triangle-list vertex batches from strokes.
//
// Builder turns stroke, point, fill, edit-overlay and live-buffer
// descriptions into [render.Batch] values using the shared
// [render.VertexLayout]: position (xyz plus a size or side channel in w)
// followed by a straight RGBA color. Colors are baked into the vertices,
// which is why cached batches are only valid for the colors they were
// built with.
//
// Builders never fail. Degenerate input (too few points, zero thickness)
// produces an empty batch rather than an error.
package geom
