package entity

// EventType names a structural change published to the presentation layer.
type EventType string

const (
	EventNodeReplaced       EventType = "node_replaced"
	EventFocusMoved         EventType = "focus_moved"
	EventVisualStateChanged EventType = "visual_state_changed"
	EventZoomChanged        EventType = "zoom_changed"
	EventWindowClosed       EventType = "window_closed"
)

// Event is implemented by every published event.
type Event interface {
	Type() EventType
	Window() WindowID
}

// NodeReplaced is emitted after the root of a window changed.
type NodeReplaced struct {
	WindowID WindowID
	OldRoot  Node
	NewRoot  Node
}

// FocusMoved is emitted when a different leaf receives focus.
type FocusMoved struct {
	WindowID WindowID
	LeafID   LeafID
}

// VisualStateChanged carries the broadcast state of one leaf.
type VisualStateChanged struct {
	WindowID WindowID
	LeafID   LeafID
	State    VisualState
}

// ZoomChanged reports the zoom overlay of a window.
type ZoomChanged struct {
	WindowID WindowID
	Zoom     ZoomState
}

// WindowClosed is emitted when the last leaf of a window went away.
type WindowClosed struct {
	WindowID WindowID
}

func (e NodeReplaced) Type() EventType       { return EventNodeReplaced }
func (e FocusMoved) Type() EventType         { return EventFocusMoved }
func (e VisualStateChanged) Type() EventType { return EventVisualStateChanged }
func (e ZoomChanged) Type() EventType        { return EventZoomChanged }
func (e WindowClosed) Type() EventType       { return EventWindowClosed }

func (e NodeReplaced) Window() WindowID       { return e.WindowID }
func (e FocusMoved) Window() WindowID         { return e.WindowID }
func (e VisualStateChanged) Window() WindowID { return e.WindowID }
func (e ZoomChanged) Window() WindowID        { return e.WindowID }
func (e WindowClosed) Window() WindowID       { return e.WindowID }
