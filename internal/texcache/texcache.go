// Package texcache caches material textures resolved from images.
package texcache

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/gogpu/ink/render"
)

// Default cache configuration constants.
const (
	// DefaultMaxSizeMB is the default maximum cache size in megabytes.
	DefaultMaxSizeMB = 64
	// bytesPerMB is the number of bytes in a megabyte.
	bytesPerMB = 1024 * 1024
)

// Cache is an LRU cache of textures keyed by image name.
// It is thread-safe and uses atomic counters for statistics.
//
// The cache evicts least recently used textures when the memory budget is
// exceeded. A texture larger than the whole budget is not cached.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	lru     *list.List // front = most recent
	size    int64
	maxSize int64

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type entry struct {
	name string
	tex  *render.Texture
	size int64
}

// Stats contains cache statistics for monitoring.
type Stats struct {
	Size      int64
	MaxSize   int64
	Entries   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// New creates a texture cache with a budget of maxSizeMB megabytes.
// Zero or negative budgets use DefaultMaxSizeMB.
func New(maxSizeMB int) *Cache {
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxSizeMB
	}
	return newBytes(int64(maxSizeMB) * bytesPerMB)
}

func newBytes(maxSize int64) *Cache {
	return &Cache{
		entries: make(map[string]*list.Element),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

// Get returns the texture cached under name.
// On a hit the entry becomes the most recently used.
func (c *Cache) Get(name string) (*render.Texture, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[name]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.lru.MoveToFront(elem)
	c.hits.Add(1)
	return elem.Value.(*entry).tex, true
}

// Put stores tex under name, replacing any previous texture, and evicts
// least recently used textures until the budget is met.
func (c *Cache) Put(name string, tex *render.Texture) {
	if tex == nil {
		return
	}
	sz := tex.Size()
	if sz <= 0 || sz > c.maxSize {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[name]; ok {
		c.remove(old)
	}
	c.evictUntil(c.maxSize - sz)

	elem := c.lru.PushFront(&entry{name: name, tex: tex, size: sz})
	c.entries[name] = elem
	c.size += sz
}

// Invalidate removes the texture cached under name, if any.
func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[name]; ok {
		c.remove(elem)
		c.evictions.Add(1)
	}
}

// InvalidateAll clears the cache.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n := uint64(len(c.entries)); n > 0 {
		c.evictions.Add(n)
	}
	c.entries = make(map[string]*list.Element)
	c.lru.Init()
	c.size = 0
}

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	s := Stats{Size: c.size, MaxSize: c.maxSize, Entries: len(c.entries)}
	c.mu.Unlock()

	s.Hits = c.hits.Load()
	s.Misses = c.misses.Load()
	s.Evictions = c.evictions.Load()
	return s
}

// evictUntil evicts LRU entries until size is at or below target.
// Must be called with c.mu held.
func (c *Cache) evictUntil(target int64) {
	for c.size > target && c.lru.Len() > 0 {
		c.remove(c.lru.Back())
		c.evictions.Add(1)
	}
}

// remove unlinks elem. Must be called with c.mu held.
func (c *Cache) remove(elem *list.Element) {
	e := elem.Value.(*entry)
	c.lru.Remove(elem)
	delete(c.entries, e.name)
	c.size -= e.size
}
