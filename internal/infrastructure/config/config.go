// Package config provides configuration management for dumbterm with Viper integration.
package config

import "sort"

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for dumbterm.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Layout   LayoutConfig   `mapstructure:"layout" toml:"layout" json:"layout"`
	// DefaultProfile names the profile used when a leaf has none.
	DefaultProfile string `mapstructure:"default_profile" toml:"default_profile" json:"default_profile"`
	// Profiles are named spawn settings. Names are case-insensitive.
	Profiles map[string]ProfileConfig `mapstructure:"profiles" toml:"profiles" json:"profiles"`
	// Keybindings maps an action name to an accelerator. Values are kept verbatim.
	Keybindings map[string]string `mapstructure:"keybindings" toml:"keybindings" json:"keybindings"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// MaxAge is the number of days rotated log files are kept.
	MaxAge     int `mapstructure:"max_age" toml:"max_age" json:"max_age"`
	MaxSizeMB  int `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
}

// DatabaseConfig locates the layout database.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/dumbterm/dumbterm.sqlite when empty.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LayoutConfig holds the arrangement engine options.
type LayoutConfig struct {
	// MinimumPaneFraction is the smallest share a split child can be resized to.
	MinimumPaneFraction float64 `mapstructure:"minimum_pane_fraction" toml:"minimum_pane_fraction" json:"minimum_pane_fraction"`
	// ResizeStep is the ratio change of one resize.
	ResizeStep              float64 `mapstructure:"resize_step" toml:"resize_step" json:"resize_step"`
	InheritWorkingDirectory bool    `mapstructure:"inherit_working_directory" toml:"inherit_working_directory" json:"inherit_working_directory"`
	InsertTabAfterCurrent   bool    `mapstructure:"insert_tab_after_current" toml:"insert_tab_after_current" json:"insert_tab_after_current"`
	DefaultSendMode         string  `mapstructure:"default_send_mode" toml:"default_send_mode" json:"default_send_mode" jsonschema:"enum=off,enum=group,enum=all"`
	// DefaultLayout is loaded by the launcher when no layout is named.
	DefaultLayout string `mapstructure:"default_layout" toml:"default_layout" json:"default_layout"`
}

// ProfileConfig is what a profile name resolves to when spawning a session.
type ProfileConfig struct {
	Command   string `mapstructure:"command" toml:"command" json:"command,omitempty"`
	Directory string `mapstructure:"directory" toml:"directory" json:"directory,omitempty"`
}

// ProfileNames returns the configured profile names, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
