package batch

import (
	"github.com/gogpu/ink/render"
)

// DefaultChunk is the number of slots allocated at reset and added on
// each growth.
const DefaultChunk = 8

// Kind selects one of the four batches of a slot.
type Kind uint8

// Batch kinds.
const (
	KindStroke Kind = iota
	KindFill
	KindPoint
	KindEdit
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindStroke:
		return "stroke"
	case KindFill:
		return "fill"
	case KindPoint:
		return "point"
	case KindEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Entry holds the batches cached for one stroke slot.
type Entry struct {
	Stroke *render.Batch
	Fill   *render.Batch
	Point  *render.Batch
	Edit   *render.Batch
}

// Get returns the batch of kind k, or nil.
func (e *Entry) Get(k Kind) *render.Batch {
	switch k {
	case KindStroke:
		return e.Stroke
	case KindFill:
		return e.Fill
	case KindPoint:
		return e.Point
	case KindEdit:
		return e.Edit
	}
	return nil
}

// set stores b as kind k, releasing a different batch it replaces.
func (e *Entry) set(k Kind, b *render.Batch) {
	var slot **render.Batch
	switch k {
	case KindStroke:
		slot = &e.Stroke
	case KindFill:
		slot = &e.Fill
	case KindPoint:
		slot = &e.Point
	case KindEdit:
		slot = &e.Edit
	default:
		return
	}
	if *slot != nil && *slot != b {
		(*slot).Release()
	}
	*slot = b
}

// release frees all batches of the entry.
func (e *Entry) release() {
	e.Stroke.Release()
	e.Fill.Release()
	e.Point.Release()
	e.Edit.Release()
	*e = Entry{}
}

// Live holds the batches of the stroke being drawn.
type Live struct {
	Stroke *render.Batch
	Fill   *render.Batch
}

// Stats contains cache statistics for monitoring and tests.
type Stats struct {
	// Slots is the committed slot capacity.
	Slots int
	// Cursor is the next slot to be used in the current pass.
	Cursor int
	// Builds is the number of batches built in the current generation.
	Builds uint64
	// Reuses is the number of batches served from a slot without building.
	Reuses uint64
	// Grows is the number of capacity growths in the current generation.
	Grows uint64
	// Resets is the number of generations started over the cache lifetime.
	Resets uint64
	// LiveBuilds is the number of live buffer batches stored.
	LiveBuilds uint64
}

// Cache is a growable, slot-indexed store of geometry batches for one
// drawing, plus a separate holder for the live buffer batches.
//
// The zero value is not usable; create caches with New.
type Cache struct {
	slots []Entry
	next  int
	chunk int

	dirty    bool
	frame    int
	editMode bool

	live  Live
	stats Stats
}

// New creates a cache that allocates slots chunk at a time.
// A chunk of zero or less uses DefaultChunk. A new cache is not valid for
// any frame until Reset starts its first generation.
func New(chunk int) *Cache {
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	return &Cache{
		chunk: chunk,
		dirty: true,
	}
}

// Valid reports whether the cache contents were built for frame in the
// given edit-mode state. External invalidation is tracked by the owner
// and must be checked separately.
func (c *Cache) Valid(frame int, editMode bool) bool {
	return c.slots != nil && c.frame == frame && c.editMode == editMode
}

// Reset releases every batch and starts a new dirty generation for frame
// and editMode with one chunk of empty slots.
func (c *Cache) Reset(frame int, editMode bool) {
	c.clear()
	c.slots = make([]Entry, c.chunk)
	c.next = 0
	c.dirty = true
	c.frame = frame
	c.editMode = editMode

	resets := c.stats.Resets + 1
	c.stats = Stats{Resets: resets}

	slogger().Debug("batch: cache reset", "frame", frame, "edit_mode", editMode, "slots", c.chunk)
}

// Begin rewinds the slot cursor for a new population pass.
func (c *Cache) Begin() {
	c.next = 0
}

// Fetch returns the batch of kind k for the current slot.
//
// A clean cache returns the stored batch. A dirty cache, or a clean cache
// whose slot is empty, calls build, stores the result in the current slot
// (growing capacity first if needed) and returns it.
func (c *Cache) Fetch(k Kind, build func() *render.Batch) *render.Batch {
	if !c.dirty && c.next < len(c.slots) {
		if b := c.slots[c.next].Get(k); b != nil && !b.Released() {
			c.stats.Reuses++
			return b
		}
	}
	c.EnsureCapacity()
	b := build()
	c.slots[c.next].set(k, b)
	c.stats.Builds++
	return b
}

// EnsureCapacity grows the slot array by one chunk if the cursor is past
// its end. New slots are empty.
func (c *Cache) EnsureCapacity() {
	if c.next < len(c.slots) {
		return
	}
	grown := make([]Entry, len(c.slots)+c.chunk)
	copy(grown, c.slots)
	c.slots = grown
	c.stats.Grows++

	slogger().Debug("batch: cache grown", "slots", len(c.slots), "cursor", c.next)
}

// Advance moves the cursor to the next slot. It is called exactly once per
// visited stroke, whether or not the stroke produced any batch.
func (c *Cache) Advance() {
	c.next++
}

// Commit ends a population pass. Later passes reuse the stored batches
// until the next Reset.
func (c *Cache) Commit() {
	c.dirty = false
}

// SetLive replaces the live buffer batches, releasing the previous ones.
// Either argument may be nil.
func (c *Cache) SetLive(stroke, fill *render.Batch) {
	if c.live.Stroke != stroke {
		c.live.Stroke.Release()
	}
	if c.live.Fill != fill {
		c.live.Fill.Release()
	}
	c.live = Live{Stroke: stroke, Fill: fill}
	if stroke != nil {
		c.stats.LiveBuilds++
	}
	if fill != nil {
		c.stats.LiveBuilds++
	}
}

// ClearLive releases the live buffer batches.
func (c *Cache) ClearLive() {
	c.SetLive(nil, nil)
}

// Live returns the current live buffer batches.
func (c *Cache) Live() Live {
	return c.live
}

// Release frees every cached batch, the live buffer and the slot storage.
// The cache must be Reset before it is used again. Releasing an already
// released cache is a no-op.
func (c *Cache) Release() {
	if c == nil {
		return
	}
	n := len(c.slots)
	c.clear()
	c.slots = nil
	c.next = 0
	c.dirty = true
	if n > 0 {
		slogger().Debug("batch: cache released", "slots", n)
	}
}

// Entry returns a copy of slot i.
func (c *Cache) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(c.slots) {
		return Entry{}, false
	}
	return c.slots[i], true
}

// Cursor returns the next slot index.
func (c *Cache) Cursor() int { return c.next }

// Cap returns the committed slot capacity.
func (c *Cache) Cap() int { return len(c.slots) }

// Dirty reports whether the current generation still builds batches.
func (c *Cache) Dirty() bool { return c.dirty }

// Frame returns the scene frame of the current generation.
func (c *Cache) Frame() int { return c.frame }

// EditMode returns the edit-mode state of the current generation.
func (c *Cache) EditMode() bool { return c.editMode }

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	s := c.stats
	s.Slots = len(c.slots)
	s.Cursor = c.next
	return s
}

// clear releases all slot batches and the live buffer.
func (c *Cache) clear() {
	for i := range c.slots {
		c.slots[i].release()
	}
	c.live.Stroke.Release()
	c.live.Fill.Release()
	c.live = Live{}
}
