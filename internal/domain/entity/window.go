package entity

import "time"

// WindowID uniquely identifies a top-level window.
type WindowID string

// Direction is a directional intent used by focus movement and resizing.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Axis returns the split orientation a direction moves along.
func (d Direction) Axis() (Orientation, bool) {
	switch d {
	case DirLeft, DirRight:
		return OrientationHorizontal, true
	case DirUp, DirDown:
		return OrientationVertical, true
	default:
		return 0, false
	}
}

// Forward reports whether the direction moves towards the second child.
func (d Direction) Forward() bool {
	return d == DirRight || d == DirDown
}

// Window represents one top-level window and its arrangement tree.
type Window struct {
	ID         WindowID
	Title      string
	Root       Node   // nil once the last leaf is closed
	Focused    LeafID // Currently focused leaf
	Zoomed     LeafID // Zoom overlay; empty when nothing is zoomed
	Size       [2]int
	Position   [2]int
	Maximized  bool
	Fullscreen bool
	CreatedAt  time.Time

	focusClock uint64
	focusStamp map[LeafID]uint64
}

// NewWindow creates a window holding a single leaf.
func NewWindow(id WindowID, initial *Leaf) *Window {
	w := &Window{
		ID:        id,
		CreatedAt: time.Now(),
	}
	if initial != nil {
		w.Root = initial
		w.SetFocused(initial.ID)
	}
	return w
}

// IsEmpty reports whether the window has no leaves left.
func (w *Window) IsEmpty() bool {
	return w.Root == nil
}

// LeafCount returns the number of leaves in the window.
func (w *Window) LeafCount() int {
	return LeafCount(w.Root)
}

// FindLeaf searches for a leaf by id in the window.
func (w *Window) FindLeaf(id LeafID) *Leaf {
	return FindLeaf(w.Root, id)
}

// FocusedLeaf returns the focused leaf, or nil.
func (w *Window) FocusedLeaf() *Leaf {
	if w.Focused == "" {
		return nil
	}
	return w.FindLeaf(w.Focused)
}

// SetFocused records focus on a leaf and bumps its recency.
func (w *Window) SetFocused(id LeafID) {
	w.Focused = id
	if id == "" {
		return
	}
	if w.focusStamp == nil {
		w.focusStamp = make(map[LeafID]uint64)
	}
	w.focusClock++
	w.focusStamp[id] = w.focusClock
}

// ForgetFocus drops the recency record of a closed leaf.
func (w *Window) ForgetFocus(id LeafID) {
	delete(w.focusStamp, id)
	if w.Focused == id {
		w.Focused = ""
	}
}

// LastFocusedIn returns the most recently focused leaf inside the subtree,
// falling back to its first leaf in tree order.
func (w *Window) LastFocusedIn(n Node) *Leaf {
	var (
		best  *Leaf
		stamp uint64
	)
	for _, leaf := range Leaves(n) {
		if s := w.focusStamp[leaf.ID]; s > stamp {
			best, stamp = leaf, s
		}
	}
	if best != nil {
		return best
	}
	return FirstLeaf(n)
}

// ZoomState describes the zoom overlay after a toggle.
type ZoomState struct {
	Zoomed bool
	LeafID LeafID
}
