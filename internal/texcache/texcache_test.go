package texcache

import (
	"image"
	"testing"

	"github.com/gogpu/ink/render"
)

func newTestTexture(t *testing.T, name string, w, h int) *render.Texture {
	t.Helper()
	tex, err := render.NewTexture(name, image.NewRGBA(image.Rect(0, 0, w, h)))
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	return tex
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		mb   int
		want int64
	}{
		{"positive", 8, 8 * bytesPerMB},
		{"zero defaults", 0, DefaultMaxSizeMB * bytesPerMB},
		{"negative defaults", -1, DefaultMaxSizeMB * bytesPerMB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.mb).Stats().MaxSize; got != tt.want {
				t.Errorf("MaxSize = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCache_PutGet(t *testing.T) {
	c := New(1)
	tex := newTestTexture(t, "a", 4, 4)

	if _, ok := c.Get("a"); ok {
		t.Error("Get on empty cache should miss")
	}
	c.Put("a", tex)
	got, ok := c.Get("a")
	if !ok || got != tex {
		t.Error("Get should return the stored texture")
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Entries != 1 || s.Size != 64 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestCache_PutNilIgnored(t *testing.T) {
	c := New(1)
	c.Put("a", nil)
	if c.Stats().Entries != 0 {
		t.Error("Put(nil) should not add an entry")
	}
}

func TestCache_LRUEviction(t *testing.T) {
	// Each 4x4 texture is 64 bytes; the budget holds two.
	c := newBytes(128)
	c.Put("a", newTestTexture(t, "a", 4, 4))
	c.Put("b", newTestTexture(t, "b", 4, 4))
	c.Get("a") // b becomes least recently used
	c.Put("c", newTestTexture(t, "c", 4, 4))

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, name := range []string{"a", "c"} {
		if _, ok := c.Get(name); !ok {
			t.Errorf("%s should still be cached", name)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCache_OversizedNotCached(t *testing.T) {
	c := newBytes(32)
	c.Put("big", newTestTexture(t, "big", 4, 4))
	if c.Stats().Entries != 0 {
		t.Error("texture larger than the budget should not be cached")
	}
}

func TestCache_Invalidate(t *testing.T) {
	c := New(1)
	c.Put("a", newTestTexture(t, "a", 2, 2))
	c.Put("b", newTestTexture(t, "b", 2, 2))

	c.Invalidate("a")
	if _, ok := c.Get("a"); ok {
		t.Error("a should be gone after Invalidate")
	}
	c.Invalidate("missing")

	c.InvalidateAll()
	s := c.Stats()
	if s.Entries != 0 || s.Size != 0 {
		t.Errorf("after InvalidateAll: %+v", s)
	}
}
