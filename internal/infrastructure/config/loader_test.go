package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	dir := t.TempDir()
	m, err := NewManagerInDir(dir)
	require.NoError(t, err)
	return m, dir
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	m, dir := newTestManager(t)

	require.NoError(t, m.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	cfg := m.Get()
	defaults := DefaultConfig()
	assert.Equal(t, defaults.Layout, cfg.Layout)
	assert.Equal(t, defaults.Logging.Level, cfg.Logging.Level)
	assert.Equal(t, "default", cfg.DefaultProfile)
	assert.Contains(t, cfg.Profiles, "default")
	assert.Equal(t, "ctrl+shift+d", cfg.Keybindings["split_horizontal"])
	assert.True(t, strings.HasSuffix(cfg.Database.Path, filepath.Join("dumbterm", databaseName)))
}

func TestManager_LoadReadsFile(t *testing.T) {
	m, dir := newTestManager(t)
	writeConfigFile(t, dir, `
default_profile = "Ops"

[layout]
minimum_pane_fraction = 0.1
resize_step = 0.02
default_send_mode = "GROUP"
inherit_working_directory = false

[profiles.Ops]
command = "ssh ops"
directory = "/srv"

[profiles.default]
`)

	require.NoError(t, m.Load())
	cfg := m.Get()

	assert.InDelta(t, 0.1, cfg.Layout.MinimumPaneFraction, 1e-9)
	assert.InDelta(t, 0.02, cfg.Layout.ResizeStep, 1e-9)
	assert.Equal(t, "group", cfg.Layout.DefaultSendMode)
	assert.False(t, cfg.Layout.InheritWorkingDirectory)
	assert.Equal(t, "ops", cfg.DefaultProfile)
	assert.Equal(t, ProfileConfig{Command: "ssh ops", Directory: "/srv"}, cfg.Profiles["ops"])
	assert.Equal(t, []string{"default", "ops"}, cfg.ProfileNames())
	// Keys the file does not mention keep their defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestManager_EnvironmentOverrides(t *testing.T) {
	m, _ := newTestManager(t)
	t.Setenv("DUMBTERM_LOG_LEVEL", "debug")
	t.Setenv("DUMBTERM_LAYOUT_RESIZE_STEP", "0.2")

	require.NoError(t, m.Load())
	cfg := m.Get()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.InDelta(t, 0.2, cfg.Layout.ResizeStep, 1e-9)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	m, dir := newTestManager(t)
	writeConfigFile(t, dir, `
default_profile = "missing"

[layout]
minimum_pane_fraction = 0.7
`)

	err := m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.minimum_pane_fraction")
	assert.Contains(t, err.Error(), `default_profile "missing"`)
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	m, dir := newTestManager(t)
	writeConfigFile(t, dir, "[layout\nresize_step = ")

	err := m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Profiles["rogue"] = ProfileConfig{}
	cfg.Layout.ResizeStep = 0.9

	fresh := m.Get()
	assert.NotContains(t, fresh.Profiles, "rogue")
	assert.InDelta(t, defaultResizeStep, fresh.Layout.ResizeStep, 1e-9)
}

func TestManager_SaveRoundTrip(t *testing.T) {
	m, dir := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Profiles["logs"] = ProfileConfig{Command: "journalctl -f"}
	cfg.Layout.DefaultLayout = "work"
	require.NoError(t, m.Save(cfg))

	assert.Equal(t, "work", m.Get().Layout.DefaultLayout)

	reloaded, err := NewManagerInDir(dir)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "journalctl -f", reloaded.Get().Profiles["logs"].Command)
	assert.Equal(t, "work", reloaded.Get().Layout.DefaultLayout)
}

func TestManager_SaveRejectsInvalidConfig(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Layout.ResizeStep = 0
	assert.Error(t, m.Save(cfg))
	assert.Error(t, m.Save(nil))
}

func TestManager_WatchReloadsOnChange(t *testing.T) {
	m, dir := newTestManager(t)
	require.NoError(t, m.Load())
	require.NoError(t, m.Watch(context.Background()))

	changed := make(chan *Config, 16)
	m.OnConfigChange(func(cfg *Config) { changed <- cfg })

	cfg := DefaultConfig()
	cfg.Database.Path = filepath.Join(dir, "db.sqlite")
	cfg.Layout.DefaultLayout = "edited"
	require.NoError(t, WriteConfigOrdered(cfg, filepath.Join(dir, "config.toml")))

	// A truncating write can surface as more than one event.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-changed:
			if got.Layout.DefaultLayout != "edited" {
				continue
			}
			assert.Equal(t, "edited", m.Get().Layout.DefaultLayout)
			return
		case <-deadline:
			t.Fatal("config change was not observed")
		}
	}
}
