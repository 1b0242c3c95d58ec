// Package logging adapts the core logger to per-run file logging.
package logging

import (
	"context"
	"io"
	"os"

	"github.com/bnema/dumbterm/internal/application/port"
	corelogging "github.com/bnema/dumbterm/internal/logging"
	"github.com/rs/zerolog"
)

type RunLoggerAdapter struct {
	stderr io.Writer
}

var _ port.RunLogger = (*RunLoggerAdapter)(nil)

func NewRunLoggerAdapter() *RunLoggerAdapter {
	return &RunLoggerAdapter{stderr: os.Stderr}
}

// CreateLogger builds the run logger. With file logging enabled the JSON
// stream goes to <LogDir>/dumbterm_<runID>.log through the rotator.
// On failure the returned logger still writes to stderr.
func (a *RunLoggerAdapter) CreateLogger(
	_ context.Context,
	runID string,
	cfg port.RunLogConfig,
) (zerolog.Logger, func(), error) {
	out := a.stderr
	if !cfg.WriteToStderr {
		out = io.Discard
	}

	logCfg := corelogging.DefaultConfig()
	logCfg.Level = corelogging.ParseLevel(cfg.Level)
	if cfg.Format == "json" {
		logCfg.Format = "json"
	}
	logCfg.Output = out

	cleanup := func() {}
	if cfg.EnableFileLog {
		rotator, err := corelogging.NewLogRotator(corelogging.RotatorConfig{
			Dir:        cfg.LogDir,
			BaseName:   corelogging.RunLogFilename(runID),
			MaxSizeMB:  cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAgeDays: cfg.MaxAgeDays,
			Compress:   true,
		})
		if err != nil {
			fallback := corelogging.NewFromConfigValues(cfg.Level, cfg.Format, nil)
			return fallback, func() {}, err
		}
		logCfg.File = rotator
		cleanup = func() { _ = rotator.Close() }
	}

	logger := corelogging.New(logCfg).With().Str("run_id", corelogging.ShortRunID(runID)).Logger()
	return logger, cleanup, nil
}
