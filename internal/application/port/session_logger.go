package port

import (
	"context"

	"github.com/rs/zerolog"
)

// RunLogConfig describes where and how a run's log is written.
type RunLogConfig struct {
	Level         string
	Format        string
	LogDir        string
	WriteToStderr bool
	EnableFileLog bool
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
}

// RunLogger creates the logger for one process run. The returned func
// flushes and closes any file sink.
type RunLogger interface {
	CreateLogger(ctx context.Context, runID string, cfg RunLogConfig) (zerolog.Logger, func(), error)
}
