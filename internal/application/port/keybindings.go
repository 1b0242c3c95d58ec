package port

import "context"

// KeybindingEntry is one action and the accelerator bound to it.
// Accelerators are opaque strings handed to the presentation layer.
type KeybindingEntry struct {
	Action      string `json:"action"`
	Accelerator string `json:"accelerator"`
	Default     string `json:"default,omitempty"`
	IsCustom    bool   `json:"is_custom"`
}

// SetKeybindingRequest binds Accelerator to Action.
type SetKeybindingRequest struct {
	Action      string `json:"action"`
	Accelerator string `json:"accelerator"`
}

// KeybindingConflict is another action already bound to the same accelerator.
type KeybindingConflict struct {
	ConflictingAction string `json:"conflicting_action"`
	Accelerator       string `json:"accelerator"`
}

// KeybindingsProvider provides keybinding configuration data.
type KeybindingsProvider interface {
	GetKeybindings(ctx context.Context) ([]KeybindingEntry, error)
}

// KeybindingsSaver persists keybinding changes.
type KeybindingsSaver interface {
	SetKeybinding(ctx context.Context, action, accelerator string) error
	ResetKeybinding(ctx context.Context, action string) error
	ResetAllKeybindings(ctx context.Context) error
}
