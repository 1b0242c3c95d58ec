package port

import "context"

// SpawnRequest describes a terminal session to start.
type SpawnRequest struct {
	Cwd     string // Empty means the factory default
	Profile string
	Command string // Overrides the profile command when set
}

// SessionFactory starts terminal sessions for new leaves.
type SessionFactory interface {
	Spawn(ctx context.Context, req SpawnRequest) (SessionHandle, error)
}

// SessionHandle is a running terminal session.
// Callbacks may be invoked from any goroutine.
type SessionHandle interface {
	OnTitleChanged(fn func(title string))
	OnEnded(fn func(exitStatus int))
	Write(p []byte) (int, error)
	Close() error
}

// DirectoryQuerier is implemented by sessions that can report the working
// directory of their foreground process.
type DirectoryQuerier interface {
	CurrentWorkingDirectory() (string, error)
}
