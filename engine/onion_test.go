package engine

import (
	"testing"

	"github.com/gogpu/ink"
)

func TestOnionAlpha(t *testing.T) {
	tests := []struct {
		distance, step int
		want           float32
	}{
		{1, 1, 0.33},
		{1, 2, 0.44},
		{2, 2, 0.22},
		{1, 3, 0.495},
		{3, 3, 0.165},
	}
	for _, tt := range tests {
		if got := OnionAlpha(1, tt.distance, tt.step); !approx(got, tt.want) {
			t.Errorf("OnionAlpha(1, %d, %d) = %v, want %v", tt.distance, tt.step, got, tt.want)
		}
	}
	if got := OnionAlpha(0.5, 1, 1); !approx(got, 0.165) {
		t.Errorf("OnionAlpha scales with base: got %v", got)
	}
}

// onionDrawing returns a drawing with frames 1 to 5, each holding one
// two-point stroke.
func onionDrawing() (*ink.Object, *ink.Layer, map[*ink.Stroke]int) {
	ob, l, _ := newDrawing()
	m := ink.NewMaterial("m", ink.RGB(1, 0, 0), ink.White)
	frameOf := make(map[*ink.Stroke]int)
	for n := 1; n <= 5; n++ {
		s := ink.NewStroke(m, 2, points(2)...)
		l.AddFrame(n).AddStroke(s)
		frameOf[s] = n
	}
	l.Flags |= ink.LayerOnionSkin
	return ob, l, frameOf
}

func TestPopulate_OnionSkin(t *testing.T) {
	type ghost struct {
		frame int
		alpha float32
	}
	tests := []struct {
		name       string
		prev, next int
		want       []ghost
	}{
		{"stepped both ways", 2, 1, []ghost{{2, 0.44}, {1, 0.22}, {4, 0.33}, {3, 1}}},
		{"adjacent only", 0, 0, []ghost{{2, 1.0 / 7}, {4, 0.25}, {3, 1}}},
		{"disabled", -1, -1, []ghost{{3, 1}}},
		{"window wider than timeline", 5, 5, []ghost{
			{2, OnionAlpha(1, 1, 5)}, {1, OnionAlpha(1, 2, 5)},
			{4, OnionAlpha(1, 1, 5)}, {5, OnionAlpha(1, 2, 5)},
			{3, 1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rb := newTestEngine(t)
			ob, l, frameOf := onionDrawing()
			l.GhostPrev, l.GhostNext = tt.prev, tt.next

			e.Populate(ob, testView(3), NewStorage(nil))

			if len(rb.builds) != len(tt.want) {
				t.Fatalf("builds = %d, want %d", len(rb.builds), len(tt.want))
			}
			for i, w := range tt.want {
				b := rb.builds[i]
				if got := frameOf[b.stroke]; got != w.frame {
					t.Errorf("build %d frame = %d, want %d", i, got, w.frame)
				}
				if !approx(b.color.A, w.alpha) {
					t.Errorf("build %d alpha = %v, want %v", i, b.color.A, w.alpha)
				}
			}
			if got := ob.Data.Cache.Cursor(); got != len(tt.want) {
				t.Errorf("cursor = %d, want %d", got, len(tt.want))
			}
		})
	}
}

func TestPopulate_OnionSkinGap(t *testing.T) {
	e, rb := newTestEngine(t)
	ob, l, _ := newDrawing()
	for _, n := range []int{4, 10} {
		l.AddFrame(n).AddStroke(ink.NewStroke(nil, 2, points(2)...))
	}
	l.Flags |= ink.LayerGhostAlways
	l.GhostPrev, l.GhostNext = 3, -1

	// Frame 10 is current; frame 4 is 6 frames back, outside the window.
	e.Populate(ob, testView(12), NewStorage(nil))

	if got := len(rb.builds); got != 1 {
		t.Errorf("builds = %d, want 1", got)
	}
}

func TestPopulate_OnionColors(t *testing.T) {
	e, rb := newTestEngine(t)
	ob, l, frameOf := onionDrawing()
	l.GhostPrev, l.GhostNext = 1, 1
	l.Flags |= ink.LayerGhostPrevColor
	l.GhostPrevColor = ink.RGB(0, 1, 0)

	e.Populate(ob, testView(3), NewStorage(nil))

	for _, b := range rb.builds {
		c := b.color
		switch frameOf[b.stroke] {
		case 2:
			if c.R != 0 || c.G != 1 || c.B != 0 {
				t.Errorf("previous ghost color = %+v, want custom green", c)
			}
		case 4:
			// Without a custom color the material color is kept.
			if c.R != 1 || c.G != 0 || c.B != 0 {
				t.Errorf("next ghost color = %+v, want material red", c)
			}
		case 3:
			if c != ink.RGB(1, 0, 0) {
				t.Errorf("current frame color = %+v, want material red", c)
			}
		}
	}
}

func TestPopulate_OnionSkipsEditOverlay(t *testing.T) {
	e, rb := newTestEngine(t)
	ob, l, _ := onionDrawing()
	ob.Matrix = ink.Translation(1, 0, 0)
	l.GhostPrev, l.GhostNext = 2, 2
	ob.Data.Flags |= ink.DataEditMode
	for _, f := range l.Frames() {
		f.Strokes[0].Flags |= ink.StrokeSelect
	}

	st := NewStorage(nil)
	e.Populate(ob, testView(3), st)

	if got := rb.count("edit"); got != 1 {
		t.Errorf("edit overlays = %d, want 1 (current frame only)", got)
	}
	for _, f := range l.Frames() {
		if f.ViewMatrix != ob.Matrix {
			t.Errorf("frame %d transform not recorded", f.Number)
		}
	}
}
