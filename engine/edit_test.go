package engine

import (
	"testing"

	"github.com/gogpu/ink"
)

func TestPopulate_EditOverlay(t *testing.T) {
	tests := []struct {
		name        string
		editMode    bool
		selected    bool
		layerFlags  ink.LayerFlags
		lockedColor bool
		want        bool
	}{
		{"selected in edit mode", true, true, 0, false, true},
		{"not in edit mode", false, true, 0, false, false},
		{"not selected", true, false, 0, false, false},
		{"locked layer", true, true, ink.LayerLocked, false, false},
		{"locked material", true, true, 0, true, false},
		{"locked material on unlocked-color layer", true, true, ink.LayerUnlockColor, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rb := newTestEngine(t)
			ob, l, f := newDrawing()
			l.Flags |= tt.layerFlags
			if tt.editMode {
				ob.Data.Flags |= ink.DataEditMode
			}
			m := ink.NewMaterial("m", ink.Black, ink.White)
			if tt.lockedColor {
				m.Flags |= ink.MaterialLocked
			}
			s := ink.NewStroke(m, 2, points(2)...)
			if tt.selected {
				s.Flags |= ink.StrokeSelect
			}
			f.AddStroke(s)

			st := NewStorage(nil)
			e.Populate(ob, testView(1), st)

			if got := rb.count("edit") == 1; got != tt.want {
				t.Fatalf("edit overlay drawn = %v, want %v", got, tt.want)
			}
			if !tt.want {
				return
			}
			calls := st.Pass().Calls()
			if last := calls[len(calls)-1]; last.Group != st.EditGroup() {
				t.Error("edit overlay not submitted to the edit group")
			}
			if a := rb.builds[len(rb.builds)-1].color.A; !approx(a, 0.75) {
				t.Errorf("edit overlay alpha = %v, want sculpt alpha 0.75", a)
			}
			entry, _ := ob.Data.Cache.Entry(0)
			if entry.Edit == nil {
				t.Error("edit overlay should be cached in the stroke's slot")
			}
		})
	}
}
