package engine

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/batch"
)

// CacheFor returns the batch cache of d, ready for a pass at scene frame.
//
// The existing cache is kept when it was built for frame in the current
// edit-mode state and no invalidation is pending. Otherwise it is created
// or cleared and starts a new dirty generation, and the pending
// invalidation is consumed.
func (e *Engine) CacheFor(d *ink.Data, frame int) *batch.Cache {
	edit := d.IsEditMode()
	if d.Cache != nil && !d.IsCacheDirty() && d.Cache.Valid(frame, edit) {
		return d.Cache
	}
	if d.Cache == nil {
		d.Cache = batch.New(e.settings.SlotChunk)
	}
	d.Cache.Reset(frame, edit)
	d.Flags &^= ink.DataCacheDirty
	return d.Cache
}

// Invalidate marks the cached geometry of d as stale. The next pass
// discards every cached batch and rebuilds. Editing code calls it after
// every change to stroke geometry.
func (e *Engine) Invalidate(d *ink.Data) {
	if d == nil {
		return
	}
	d.Flags |= ink.DataCacheDirty
}

// Release frees every cached batch of d and drops its cache. Releasing a
// drawing without a cache is a no-op.
func (e *Engine) Release(d *ink.Data) {
	if d == nil || d.Cache == nil {
		return
	}
	d.Cache.Release()
	d.Cache = nil
}
