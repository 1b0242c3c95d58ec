// Package cli wires the dumbterm command line: configuration, layout
// storage and headless windows for previews.
package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/domain/build"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/infrastructure/config"
	"github.com/bnema/dumbterm/internal/infrastructure/configstore"
	infralogging "github.com/bnema/dumbterm/internal/infrastructure/logging"
	"github.com/bnema/dumbterm/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumbterm/internal/infrastructure/session"
	"github.com/bnema/dumbterm/internal/logging"
	"github.com/bnema/dumbterm/internal/ui/coordinator"
)

// App holds CLI dependencies.
type App struct {
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// ConfigErr is set when the config file could not be loaded and the
	// defaults are in use.
	ConfigErr error

	Store     *configstore.Store
	LayoutsUC *usecase.ManageLayoutsUseCase

	mu         sync.RWMutex
	cfg        *config.Config
	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp creates the CLI application. The layout database is opened on
// first use.
func NewApp() (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	logger, logCleanup, logErr := infralogging.NewRunLoggerAdapter().CreateLogger(
		context.Background(),
		logging.GenerateRunID(),
		runLogConfig(cfg),
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	a := &App{
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		ConfigErr:  cfgErr,
		cfg:        cfg,
		db:         db,
		ctx:        ctx,
		logCleanup: logCleanup,
	}
	a.Store = configstore.New(appConfig{a}, sqlite.NewLazyLayoutRepository(db))
	a.LayoutsUC = usecase.NewManageLayoutsUseCase(a.Store, usecase.NewUUIDGenerator())
	return a, nil
}

// Config returns the configuration in effect.
func (a *App) Config() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// WatchConfig follows edits of the config file for the rest of the run.
// Later windows and previews pick up the reloaded [layout] and profiles;
// the database path stays the one opened at startup.
func (a *App) WatchConfig() error {
	if a.ConfigErr != nil {
		return fmt.Errorf("config file unavailable: %w", a.ConfigErr)
	}
	if a.Manager == nil {
		return fmt.Errorf("config file unavailable")
	}
	a.Manager.OnConfigChange(a.setConfig)
	return a.Manager.Watch(a.ctx)
}

func (a *App) setConfig(cfg *config.Config) {
	a.mu.Lock()
	dbPath := a.cfg.Database.Path
	a.cfg = cfg
	a.mu.Unlock()

	log := logging.FromContext(a.ctx)
	if cfg.Database.Path != dbPath {
		log.Warn().Str("database", cfg.Database.Path).Msg("database path change applies on next start")
	}
	log.Info().Msg("configuration reloaded")
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Settings converts the [layout] section for the window coordinator.
func (a *App) Settings() coordinator.Settings {
	return SettingsFromConfig(a.Config())
}

// SettingsFromConfig converts the [layout] section of cfg.
func SettingsFromConfig(cfg *config.Config) coordinator.Settings {
	settings := coordinator.DefaultSettings()
	settings.MinimumPaneFraction = cfg.Layout.MinimumPaneFraction
	settings.ResizeStep = cfg.Layout.ResizeStep
	settings.InheritWorkingDirectory = cfg.Layout.InheritWorkingDirectory
	settings.InsertTabAfterCurrent = cfg.Layout.InsertTabAfterCurrent
	if mode, err := entity.ParseSendMode(cfg.Layout.DefaultSendMode); err == nil {
		settings.DefaultSendMode = mode
	}
	settings.DefaultProfile = cfg.DefaultProfile
	return settings
}

// HeadlessSessions returns a session factory that resolves the configured
// profiles without starting processes.
func (a *App) HeadlessSessions() *session.HeadlessFactory {
	cfg := a.Config()
	profiles := make(map[string]session.Profile, len(cfg.Profiles))
	for name, p := range cfg.Profiles {
		profiles[name] = session.Profile{Command: p.Command, Directory: p.Directory}
	}
	home, _ := os.UserHomeDir()
	return session.NewHeadlessFactory(
		session.WithDefaultDirectory(home),
		session.WithProfiles(profiles),
	)
}

// NewWindow creates a coordinator backed by sessions and publishing to publisher.
func (a *App) NewWindow(sessions port.SessionFactory, publisher port.EventPublisher) (*coordinator.WindowCoordinator, error) {
	w, err := coordinator.NewWindowCoordinator(a.ctx, coordinator.WindowCoordinatorConfig{
		Sessions:  sessions,
		Publisher: publisher,
		Layouts:   a.LayoutsUC,
		Settings:  a.Settings(),
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	return w, nil
}

// appConfig serves the App's current config to the layout store.
type appConfig struct{ a *App }

func (c appConfig) Get() *config.Config { return c.a.Config() }

// loadConfig loads configuration from standard locations, falling back to
// the defaults when that fails.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, withDatabasePath(config.DefaultConfig()), err
	}
	if err := mgr.Load(); err != nil {
		return mgr, withDatabasePath(config.DefaultConfig()), err
	}
	return mgr, mgr.Get(), nil
}

func withDatabasePath(cfg *config.Config) *config.Config {
	if cfg.Database.Path == "" {
		if path, err := config.GetDatabaseFile(); err == nil {
			cfg.Database.Path = path
		}
	}
	return cfg
}

func runLogConfig(cfg *config.Config) port.RunLogConfig {
	logDir := cfg.Logging.LogDir
	if logDir == "" {
		logDir, _ = config.GetLogDir()
	}
	level := cfg.Logging.Level
	if env := os.Getenv("DUMBTERM_LOG_LEVEL"); env != "" {
		level = env
	}
	return port.RunLogConfig{
		Level:         level,
		Format:        cfg.Logging.Format,
		LogDir:        logDir,
		WriteToStderr: true,
		EnableFileLog: cfg.Logging.EnableFileLog && logDir != "",
		MaxSizeMB:     cfg.Logging.MaxSizeMB,
		MaxBackups:    cfg.Logging.MaxBackups,
		MaxAgeDays:    cfg.Logging.MaxAge,
	}
}
