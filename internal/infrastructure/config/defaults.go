package config

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxAgeDays = 7
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 5

	defaultMinimumPaneFraction = 0.05
	defaultResizeStep          = 0.05
	defaultSendMode            = "off"
	defaultLayoutName          = "default"
	defaultProfileName         = "default"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxAge:     defaultLogMaxAgeDays,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Layout: LayoutConfig{
			MinimumPaneFraction:     defaultMinimumPaneFraction,
			ResizeStep:              defaultResizeStep,
			InheritWorkingDirectory: true,
			InsertTabAfterCurrent:   true,
			DefaultSendMode:         defaultSendMode,
			DefaultLayout:           defaultLayoutName,
		},
		DefaultProfile: defaultProfileName,
		Profiles: map[string]ProfileConfig{
			defaultProfileName: {},
		},
		Keybindings: map[string]string{
			"split_horizontal":  "ctrl+shift+d",
			"split_vertical":    "ctrl+shift+e",
			"close_terminal":    "ctrl+shift+w",
			"new_tab":           "ctrl+shift+t",
			"next_tab":          "ctrl+page_down",
			"prev_tab":          "ctrl+page_up",
			"move_tab_left":     "ctrl+shift+page_up",
			"move_tab_right":    "ctrl+shift+page_down",
			"toggle_zoom":       "ctrl+shift+x",
			"focus_up":          "alt+up",
			"focus_down":        "alt+down",
			"focus_left":        "alt+left",
			"focus_right":       "alt+right",
			"focus_next":        "ctrl+tab",
			"focus_prev":        "ctrl+shift+tab",
			"resize_up":         "ctrl+shift+up",
			"resize_down":       "ctrl+shift+down",
			"resize_left":       "ctrl+shift+left",
			"resize_right":      "ctrl+shift+right",
			"group_all":         "super+g",
			"ungroup_all":       "super+shift+g",
			"toggle_fullscreen": "f11",
		},
	}
}
