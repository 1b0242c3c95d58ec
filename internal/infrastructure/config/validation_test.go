package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "negative backups",
			mutate:  func(c *Config) { c.Logging.MaxBackups = -1 },
			wantErr: "logging.max_backups",
		},
		{
			name:    "zero minimum fraction",
			mutate:  func(c *Config) { c.Layout.MinimumPaneFraction = 0 },
			wantErr: "layout.minimum_pane_fraction",
		},
		{
			name:    "half minimum fraction",
			mutate:  func(c *Config) { c.Layout.MinimumPaneFraction = 0.5 },
			wantErr: "layout.minimum_pane_fraction",
		},
		{
			name:    "resize step of one",
			mutate:  func(c *Config) { c.Layout.ResizeStep = 1 },
			wantErr: "layout.resize_step",
		},
		{
			name:    "unknown send mode",
			mutate:  func(c *Config) { c.Layout.DefaultSendMode = "broadcast" },
			wantErr: "layout.default_send_mode",
		},
		{
			name:    "empty default profile",
			mutate:  func(c *Config) { c.DefaultProfile = "" },
			wantErr: "default_profile cannot be empty",
		},
		{
			name:    "undefined default profile",
			mutate:  func(c *Config) { c.DefaultProfile = "ops" },
			wantErr: `default_profile "ops"`,
		},
		{
			name:    "blank keybinding",
			mutate:  func(c *Config) { c.Keybindings["new_tab"] = " " },
			wantErr: "keybindings.new_tab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateConfig_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Layout.ResizeStep = -1

	err := validateConfig(cfg)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "logging.level")
		assert.Contains(t, err.Error(), "layout.resize_step")
	}
}
