package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbterm/internal/application/port"
)

func findBinding(entries []port.KeybindingEntry, action string) (port.KeybindingEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return port.KeybindingEntry{}, false
}

func TestKeybindingsGateway(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	require.NoError(t, m.Load())
	gw := NewKeybindingsGateway(m)

	entries, err := gw.GetKeybindings(ctx)
	require.NoError(t, err)
	zoom, ok := findBinding(entries, "toggle_zoom")
	require.True(t, ok)
	assert.Equal(t, "ctrl+shift+x", zoom.Accelerator)
	assert.False(t, zoom.IsCustom)

	require.NoError(t, gw.SetKeybinding(ctx, "toggle_zoom", "ctrl+alt+z"))
	require.NoError(t, gw.SetKeybinding(ctx, "open_scratch", "super+s"))

	entries, err = gw.GetKeybindings(ctx)
	require.NoError(t, err)
	zoom, _ = findBinding(entries, "toggle_zoom")
	assert.Equal(t, "ctrl+alt+z", zoom.Accelerator)
	assert.Equal(t, "ctrl+shift+x", zoom.Default)
	assert.True(t, zoom.IsCustom)
	scratch, ok := findBinding(entries, "open_scratch")
	require.True(t, ok)
	assert.True(t, scratch.IsCustom)
	assert.Empty(t, scratch.Default)

	require.NoError(t, gw.ResetKeybinding(ctx, "toggle_zoom"))
	require.NoError(t, gw.ResetKeybinding(ctx, "open_scratch"))
	cfg := m.Get()
	assert.Equal(t, "ctrl+shift+x", cfg.Keybindings["toggle_zoom"])
	assert.NotContains(t, cfg.Keybindings, "open_scratch")

	require.NoError(t, gw.SetKeybinding(ctx, "new_tab", "f2"))
	require.NoError(t, gw.ResetAllKeybindings(ctx))
	assert.Equal(t, DefaultConfig().Keybindings, m.Get().Keybindings)
}

func TestKeybindingsGateway_RejectsEmptyAccelerator(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Load())

	err := NewKeybindingsGateway(m).SetKeybinding(context.Background(), "new_tab", " ")
	assert.ErrorContains(t, err, "keybindings.new_tab")
}
