package config

import (
	"context"
	"maps"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/logging"
)

// KeybindingsGateway exposes the [keybindings] section through the
// keybinding ports. Every change is written to the config file.
type KeybindingsGateway struct {
	mgr *Manager
}

var (
	_ port.KeybindingsProvider = (*KeybindingsGateway)(nil)
	_ port.KeybindingsSaver    = (*KeybindingsGateway)(nil)
)

// NewKeybindingsGateway creates a gateway backed by mgr.
func NewKeybindingsGateway(mgr *Manager) *KeybindingsGateway {
	return &KeybindingsGateway{mgr: mgr}
}

// GetKeybindings lists configured and default bindings.
func (g *KeybindingsGateway) GetKeybindings(ctx context.Context) ([]port.KeybindingEntry, error) {
	logging.FromContext(ctx).Debug().Msg("keybindings gateway: fetching keybindings")
	current := g.mgr.Get().Keybindings
	defaults := DefaultConfig().Keybindings

	entries := make([]port.KeybindingEntry, 0, len(current))
	for action, accel := range current {
		def, known := defaults[action]
		entries = append(entries, port.KeybindingEntry{
			Action:      action,
			Accelerator: accel,
			Default:     def,
			IsCustom:    !known || def != accel,
		})
	}
	return entries, nil
}

// SetKeybinding binds accelerator to action.
func (g *KeybindingsGateway) SetKeybinding(_ context.Context, action, accelerator string) error {
	cfg := g.mgr.Get()
	cfg.Keybindings[action] = accelerator
	return g.mgr.Save(cfg)
}

// ResetKeybinding restores the default of action, or removes an action
// that has no default.
func (g *KeybindingsGateway) ResetKeybinding(_ context.Context, action string) error {
	cfg := g.mgr.Get()
	if def, ok := DefaultConfig().Keybindings[action]; ok {
		cfg.Keybindings[action] = def
	} else {
		delete(cfg.Keybindings, action)
	}
	return g.mgr.Save(cfg)
}

// ResetAllKeybindings replaces the section with the defaults.
func (g *KeybindingsGateway) ResetAllKeybindings(_ context.Context) error {
	cfg := g.mgr.Get()
	cfg.Keybindings = maps.Clone(DefaultConfig().Keybindings)
	return g.mgr.Save(cfg)
}
