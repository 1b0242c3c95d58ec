package entity

import "testing"

func TestWindow_LastFocusedIn(t *testing.T) {
	page := thsplit(tleaf("a"), tleaf("b"))
	other := tleaf("c")
	w := NewWindow("w", nil)
	w.Root = &TabGroup{Children: []Node{page, other}, Labels: []string{"", ""}}

	if got := w.LastFocusedIn(page); got.ID != "a" {
		t.Fatalf("without history LastFocusedIn = %s, want first leaf a", got.ID)
	}

	w.SetFocused("b")
	w.SetFocused("c")
	if got := w.LastFocusedIn(page); got.ID != "b" {
		t.Fatalf("LastFocusedIn = %s, want b", got.ID)
	}
	if w.FocusedLeaf().ID != "c" {
		t.Fatalf("FocusedLeaf = %s, want c", w.FocusedLeaf().ID)
	}

	w.ForgetFocus("c")
	if w.Focused != "" {
		t.Fatalf("forgetting the focused leaf must clear focus")
	}
	if w.FocusedLeaf() != nil {
		t.Fatalf("FocusedLeaf must be nil without focus")
	}
}

func TestDirection_Axis(t *testing.T) {
	tests := []struct {
		dir     Direction
		axis    Orientation
		forward bool
	}{
		{DirLeft, OrientationHorizontal, false},
		{DirRight, OrientationHorizontal, true},
		{DirUp, OrientationVertical, false},
		{DirDown, OrientationVertical, true},
	}
	for _, tt := range tests {
		axis, ok := tt.dir.Axis()
		if !ok || axis != tt.axis || tt.dir.Forward() != tt.forward {
			t.Fatalf("%s: axis=%v ok=%v forward=%v", tt.dir, axis, ok, tt.dir.Forward())
		}
	}
	if _, ok := Direction("sideways").Axis(); ok {
		t.Fatalf("unknown direction must have no axis")
	}
}

func TestNewWindow(t *testing.T) {
	w := NewWindow("w", tleaf("a"))
	if w.IsEmpty() || w.Focused != "a" || w.LeafCount() != 1 {
		t.Fatalf("unexpected window %+v", w)
	}
	if !NewWindow("e", nil).IsEmpty() {
		t.Fatalf("window without leaf must be empty")
	}
}
