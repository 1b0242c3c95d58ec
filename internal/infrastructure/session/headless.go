// Package session provides terminal session adapters.
package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/logging"
)

// ErrSessionClosed is returned when writing to a closed or ended session.
var ErrSessionClosed = errors.New("session closed")

// Profile is the spawn configuration a profile name resolves to.
type Profile struct {
	Command   string
	Directory string
}

// HeadlessFactory spawns sessions without a process or terminal grid. It is
// used for previews, layout validation and tests.
type HeadlessFactory struct {
	mu         sync.Mutex
	defaultDir string
	profiles   map[string]Profile
	sessions   []*HeadlessSession
	failNext   error
	nextID     int
}

var _ port.SessionFactory = (*HeadlessFactory)(nil)

// HeadlessOption configures a HeadlessFactory.
type HeadlessOption func(*HeadlessFactory)

// WithDefaultDirectory sets the directory used when neither the request nor
// the profile names one.
func WithDefaultDirectory(dir string) HeadlessOption {
	return func(f *HeadlessFactory) { f.defaultDir = dir }
}

// WithProfiles sets the profiles requests are resolved against.
func WithProfiles(profiles map[string]Profile) HeadlessOption {
	return func(f *HeadlessFactory) {
		for name, p := range profiles {
			f.profiles[name] = p
		}
	}
}

// NewHeadlessFactory creates a headless session factory.
func NewHeadlessFactory(opts ...HeadlessOption) *HeadlessFactory {
	f := &HeadlessFactory{profiles: make(map[string]Profile)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FailNext makes the next Spawn return err.
func (f *HeadlessFactory) FailNext(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = err
}

// Spawn starts a headless session. An explicit Command wins over the
// profile command; an explicit Cwd wins over the profile directory.
func (f *HeadlessFactory) Spawn(ctx context.Context, req port.SpawnRequest) (port.SessionHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failNext; err != nil {
		f.failNext = nil
		return nil, err
	}

	profile := f.profiles[req.Profile]
	cmd := req.Command
	if cmd == "" {
		cmd = profile.Command
	}
	dir := req.Cwd
	if dir == "" {
		dir = profile.Directory
	}
	if dir == "" {
		dir = f.defaultDir
	}

	f.nextID++
	s := &HeadlessSession{
		id:      fmt.Sprintf("headless-%d", f.nextID),
		request: req,
		command: cmd,
		cwd:     dir,
	}
	f.sessions = append(f.sessions, s)

	logging.FromContext(ctx).Debug().
		Str("session", s.id).
		Str("profile", req.Profile).
		Str("cwd", dir).
		Msg("headless session spawned")
	return s, nil
}

// Sessions returns every session spawned so far, in spawn order.
func (f *HeadlessFactory) Sessions() []*HeadlessSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*HeadlessSession, len(f.sessions))
	copy(out, f.sessions)
	return out
}

// Live returns the sessions that are neither closed nor ended.
func (f *HeadlessFactory) Live() []*HeadlessSession {
	var live []*HeadlessSession
	for _, s := range f.Sessions() {
		if s.Alive() {
			live = append(live, s)
		}
	}
	return live
}

// HeadlessSession records what is written to it and lets callers drive its
// notifications.
type HeadlessSession struct {
	mu      sync.Mutex
	id      string
	request port.SpawnRequest
	command string
	cwd     string
	written bytes.Buffer
	onTitle []func(string)
	onEnded []func(int)
	ended   bool
	status  int
	closed  bool
}

var (
	_ port.SessionHandle    = (*HeadlessSession)(nil)
	_ port.DirectoryQuerier = (*HeadlessSession)(nil)
)

func (s *HeadlessSession) ID() string                 { return s.id }
func (s *HeadlessSession) Request() port.SpawnRequest { return s.request }
func (s *HeadlessSession) Command() string            { return s.command }

func (s *HeadlessSession) OnTitleChanged(fn func(title string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTitle = append(s.onTitle, fn)
}

// OnEnded registers fn. When the session has already ended fn runs at once,
// on the caller's goroutine.
func (s *HeadlessSession) OnEnded(fn func(exitStatus int)) {
	s.mu.Lock()
	if s.ended {
		status := s.status
		s.mu.Unlock()
		fn(status)
		return
	}
	s.onEnded = append(s.onEnded, fn)
	s.mu.Unlock()
}

func (s *HeadlessSession) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.ended {
		return 0, ErrSessionClosed
	}
	return s.written.Write(p)
}

// Close releases the session. It does not fire the ended notification.
func (s *HeadlessSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *HeadlessSession) CurrentWorkingDirectory() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrSessionClosed
	}
	return s.cwd, nil
}

// Chdir simulates the foreground process changing directory.
func (s *HeadlessSession) Chdir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cwd = dir
}

// SetTitle reports a new title to the registered callbacks.
func (s *HeadlessSession) SetTitle(title string) {
	s.mu.Lock()
	fns := append([]func(string){}, s.onTitle...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn(title)
	}
}

// End finishes the session with status. Only the first call notifies.
func (s *HeadlessSession) End(status int) {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.ended = true
	s.status = status
	fns := append([]func(int){}, s.onEnded...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn(status)
	}
}

// Written returns a copy of everything written so far.
func (s *HeadlessSession) Written() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Clone(s.written.Bytes())
}

func (s *HeadlessSession) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *HeadlessSession) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && !s.ended
}
