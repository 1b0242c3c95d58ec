package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configDir      string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerInDir(configDir)
}

// NewManagerInDir creates a configuration manager reading config.toml from dir.
func NewManagerInDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// DUMBTERM_LAYOUT_RESIZE_STEP style variables map onto nested keys.
	v.SetEnvPrefix("DUMBTERM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DUMBTERM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTERM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUMBTERM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTERM_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.configFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			err,
		)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

// normalizeConfig lowercases enum-like values. Profile names are lowercased
// by viper, so the default profile reference follows.
func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Layout.DefaultSendMode = strings.ToLower(strings.TrimSpace(config.Layout.DefaultSendMode))
	if config.Layout.DefaultSendMode == "" {
		config.Layout.DefaultSendMode = defaultSendMode
	}
	config.Layout.DefaultLayout = strings.TrimSpace(config.Layout.DefaultLayout)
	if config.Layout.DefaultLayout == "" {
		config.Layout.DefaultLayout = defaultLayoutName
	}
	config.DefaultProfile = strings.ToLower(strings.TrimSpace(config.DefaultProfile))
	if config.Profiles == nil {
		config.Profiles = make(map[string]ProfileConfig)
	}
	if config.Keybindings == nil {
		config.Keybindings = make(map[string]string)
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Profiles = maps.Clone(m.config.Profiles)
	configCopy.Keybindings = maps.Clone(m.config.Keybindings)
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile()); err != nil {
		return err
	}

	// With a watcher active the write comes back as a change event.
	if m.watching {
		m.skipNextReload = true
		saved := *cfg
		m.config = &saved
		return nil
	}
	return m.reload()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile()
}

func (m *Manager) configFile() string {
	return filepath.Join(m.configDir, "config.toml")
}

// createDefaultConfig writes the defaults to a new config file.
func (m *Manager) createDefaultConfig() error {
	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(m.configFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setLayoutDefaults(defaults)
	m.setProfileDefaults(defaults)
	m.viper.SetDefault("database.path", defaults.Database.Path)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.minimum_pane_fraction", defaults.Layout.MinimumPaneFraction)
	m.viper.SetDefault("layout.resize_step", defaults.Layout.ResizeStep)
	m.viper.SetDefault("layout.inherit_working_directory", defaults.Layout.InheritWorkingDirectory)
	m.viper.SetDefault("layout.insert_tab_after_current", defaults.Layout.InsertTabAfterCurrent)
	m.viper.SetDefault("layout.default_send_mode", defaults.Layout.DefaultSendMode)
	m.viper.SetDefault("layout.default_layout", defaults.Layout.DefaultLayout)
}

func (m *Manager) setProfileDefaults(defaults *Config) {
	m.viper.SetDefault("default_profile", defaults.DefaultProfile)

	profiles := make(map[string]any, len(defaults.Profiles))
	for name, p := range defaults.Profiles {
		profiles[name] = map[string]any{"command": p.Command, "directory": p.Directory}
	}
	m.viper.SetDefault("profiles", profiles)

	keybindings := make(map[string]any, len(defaults.Keybindings))
	for action, accel := range defaults.Keybindings {
		keybindings[action] = accel
	}
	m.viper.SetDefault("keybindings", keybindings)
}

// New returns a new default configuration instance.
func New() *Config {
	return DefaultConfig()
}
