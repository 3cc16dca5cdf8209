// Package batch provides the per-drawing geometry batch cache.
//
// A Cache holds one Entry per visited stroke slot. Each entry has up to
// four batches: stroke outline, fill, single point and edit overlay. Slots
// are addressed by a cursor that a population pass resets with Begin and
// advances once per visited stroke, so a later pass that visits the same
// strokes in the same order finds the same batches at the same indices.
//
// # Generations
//
// Reset starts a new generation for a scene frame and edit-mode state.
// A fresh generation is dirty: every Fetch builds and stores a new batch.
// Commit marks the generation clean, after which Fetch returns the stored
// batch for the current slot. Any change of frame or edit mode, or an
// external invalidation, must be answered with Reset before the next pass.
//
// # Capacity
//
// Slots grow by a fixed chunk when the cursor runs past the end and only
// shrink when the cache is reset or released.
//
// # Thread Safety
//
// Cache is NOT safe for concurrent use. Each drawing owns its own cache and
// is populated by one pass at a time.
package batch
