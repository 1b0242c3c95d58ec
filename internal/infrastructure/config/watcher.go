package config

import (
	"context"
	"fmt"

	"github.com/bnema/dumbterm/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file whenever it changes on disk. Callbacks
// registered with OnConfigChange receive each config that loads and
// validates; a broken edit keeps the previous config in place.
func (m *Manager) Watch(ctx context.Context) error {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.viper.ConfigFileUsed() == "" {
		return fmt.Errorf("no config file to watch")
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

		m.mu.Lock()
		if m.skipNextReload {
			// Written by Save: memory is already current, only viper lags.
			m.skipNextReload = false
			if err := m.viper.ReadInConfig(); err != nil {
				log.Warn().Err(err).Msg("failed to re-read saved config")
			}
		} else if err := m.reload(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("config reload rejected, keeping previous config")
			return
		}
		cfg := m.config
		callbacks := append([]func(*Config){}, m.callbacks...)
		m.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	m.viper.WatchConfig()
	m.watching = true

	log.Debug().Str("file", m.viper.ConfigFileUsed()).Msg("watching config file")
	return nil
}

// OnConfigChange registers fn to run after every successful reload.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// reload re-reads and validates the config file. Callers hold m.mu.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(cfg); err != nil {
		return err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	m.config = cfg
	return nil
}
