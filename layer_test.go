package ink

import (
	"slices"
	"testing"
)

// timeline returns a layer with frames at the given numbers, added out of
// order on purpose.
func timeline(numbers ...int) *Layer {
	l := NewLayer("test")
	for i := len(numbers) - 1; i >= 0; i-- {
		l.AddFrame(numbers[i])
	}
	return l
}

func frameNumbers(fs []*Frame) []int {
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = f.Number
	}
	return out
}

func TestLayer_AddFrameKeepsOrder(t *testing.T) {
	l := timeline(1, 5, 3, 10)
	if got := frameNumbers(l.Frames()); !slices.Equal(got, []int{1, 3, 5, 10}) {
		t.Errorf("frames = %v", got)
	}
	f := l.Frames()[1]
	if l.AddFrame(3) != f {
		t.Error("AddFrame of an existing number should return the same frame")
	}
	if len(l.Frames()) != 4 {
		t.Error("AddFrame must not duplicate frame numbers")
	}
}

func TestLayer_RemoveFrame(t *testing.T) {
	l := timeline(1, 2, 3)
	if !l.RemoveFrame(2) {
		t.Error("RemoveFrame(2) = false")
	}
	if l.RemoveFrame(2) {
		t.Error("second RemoveFrame(2) = true")
	}
	if got := frameNumbers(l.Frames()); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("frames = %v", got)
	}
}

func TestLayer_FrameAt(t *testing.T) {
	l := timeline(2, 5, 9)
	tests := []struct {
		frame     int
		wantNum   int
		wantIndex int
	}{
		{1, 0, -1},
		{2, 2, 0},
		{4, 2, 0},
		{5, 5, 1},
		{8, 5, 1},
		{9, 9, 2},
		{100, 9, 2},
	}
	for _, tt := range tests {
		f, i := l.FrameAt(tt.frame)
		if i != tt.wantIndex {
			t.Errorf("FrameAt(%d) index = %d, want %d", tt.frame, i, tt.wantIndex)
			continue
		}
		if tt.wantIndex < 0 {
			if f != nil {
				t.Errorf("FrameAt(%d) = frame %d, want none", tt.frame, f.Number)
			}
			continue
		}
		if f.Number != tt.wantNum {
			t.Errorf("FrameAt(%d) = frame %d, want %d", tt.frame, f.Number, tt.wantNum)
		}
	}
	if f, i := NewLayer("empty").FrameAt(1); f != nil || i != -1 {
		t.Error("empty layer should resolve no frame")
	}
}

func TestLayer_Window(t *testing.T) {
	l := timeline(1, 2, 4, 7, 8, 9)
	cur := 3 // frame 7

	tests := []struct {
		name string
		got  []*Frame
		want []int
	}{
		{"before span 3", l.Before(cur, 3), []int{4}},
		{"before span 6", l.Before(cur, 6), []int{4, 2, 1}},
		{"before span 0", l.Before(cur, 0), nil},
		{"after span 1", l.After(cur, 1), []int{8}},
		{"after span 5", l.After(cur, 5), []int{8, 9}},
		{"before first", l.Before(0, 10), nil},
		{"after last", l.After(5, 10), nil},
		{"out of range", l.After(-1, 10), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameNumbers(tt.got); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayer_Neighbours(t *testing.T) {
	l := timeline(1, 4, 6)
	if f := l.Prev(1); f == nil || f.Number != 1 {
		t.Error("Prev(1) should be frame 1")
	}
	if f := l.Next(1); f == nil || f.Number != 6 {
		t.Error("Next(1) should be frame 6")
	}
	if l.Prev(0) != nil || l.Next(2) != nil {
		t.Error("no neighbours past the ends")
	}
	for _, i := range []int{-1, 3, 4} {
		if l.Prev(i) != nil || l.Next(i) != nil {
			t.Errorf("index %d out of range should have no neighbours", i)
		}
	}
}

func TestLayer_Flags(t *testing.T) {
	l := NewLayer("flags")
	if !l.IsVisible() || l.HasOnionSkin() {
		t.Error("new layer should be visible without onion skin")
	}
	l.Flags |= LayerHide | LayerGhostAlways
	if l.IsVisible() || !l.HasOnionSkin() {
		t.Error("flags not honored")
	}
	if l.Opacity != 1 || l.GhostPrev != 1 || l.GhostNext != 1 {
		t.Errorf("defaults = %v %d %d", l.Opacity, l.GhostPrev, l.GhostNext)
	}
}

func TestLayer_ParentMatrix(t *testing.T) {
	l := NewLayer("parent")
	if l.ParentMatrix() != Identity() {
		t.Error("unset parent should be identity")
	}
	p := Translation(1, 2, 3)
	l.Parent = &p
	if l.ParentMatrix() != p {
		t.Error("ParentMatrix should return the parent")
	}
}
