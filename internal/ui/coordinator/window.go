package coordinator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

// Settings are the [layout] options the coordinator applies.
type Settings struct {
	MinimumPaneFraction     float64
	ResizeStep              float64
	InheritWorkingDirectory bool
	InsertTabAfterCurrent   bool
	DefaultSendMode         entity.SendMode
	DefaultProfile          string
}

// DefaultSettings mirrors the defaults of the [layout] config section.
func DefaultSettings() Settings {
	return Settings{
		MinimumPaneFraction:     usecase.DefaultMinimumPaneFraction,
		ResizeStep:              usecase.DefaultResizeStep,
		InheritWorkingDirectory: true,
		InsertTabAfterCurrent:   true,
		DefaultSendMode:         entity.SendOff,
	}
}

// WindowCoordinatorConfig holds configuration for WindowCoordinator.
type WindowCoordinatorConfig struct {
	WindowID   entity.WindowID // Generated when empty
	Sessions   port.SessionFactory
	Publisher  port.EventPublisher
	Layouts    *usecase.ManageLayoutsUseCase // Optional; needed for SaveLayout and LoadLayout
	GenerateID func() string
	Settings   Settings
}

// WindowCoordinator owns the arrangement tree of one window. It turns user
// intents and session notifications into tree mutations and publishes the
// resulting events. Every method is safe for concurrent use.
type WindowCoordinator struct {
	mu       sync.Mutex
	window   *entity.Window
	groups   *entity.GroupRegistry
	sessions map[entity.LeafID]*leafSession

	layoutUC  *usecase.ManageLayoutUseCase
	focusUC   *usecase.NavigateFocusUseCase
	groupsUC  *usecase.ManageGroupsUseCase
	layoutsUC *usecase.ManageLayoutsUseCase

	factory    port.SessionFactory
	publisher  port.EventPublisher
	generateID func() string
	settings   Settings

	// ctx carries the logger used for session notifications, which arrive
	// without a caller context.
	ctx context.Context
}

// leafSession is the running session behind a leaf.
type leafSession struct {
	handle port.SessionHandle
	cwd    port.DirectoryQuerier // nil when the session cannot report it
}

// NewWindowCoordinator creates a coordinator for an empty window.
func NewWindowCoordinator(ctx context.Context, cfg WindowCoordinatorConfig) (*WindowCoordinator, error) {
	if cfg.Sessions == nil {
		return nil, fmt.Errorf("session factory is required")
	}
	if cfg.Publisher == nil {
		return nil, fmt.Errorf("event publisher is required")
	}
	generateID := cfg.GenerateID
	if generateID == nil {
		generateID = usecase.NewUUIDGenerator()
	}
	windowID := cfg.WindowID
	if windowID == "" {
		windowID = entity.WindowID(generateID())
	}

	ctx = logging.WithWindowID(logging.WithComponent(ctx, "window-coordinator"), string(windowID))
	logging.FromContext(ctx).Debug().Msg("creating window coordinator")

	return &WindowCoordinator{
		window:     entity.NewWindow(windowID, nil),
		groups:     entity.NewGroupRegistry(cfg.Settings.DefaultSendMode),
		sessions:   make(map[entity.LeafID]*leafSession),
		layoutUC:   usecase.NewManageLayoutUseCase(),
		focusUC:    usecase.NewNavigateFocusUseCase(),
		groupsUC:   usecase.NewManageGroupsUseCase(),
		layoutsUC:  cfg.Layouts,
		factory:    cfg.Sessions,
		publisher:  cfg.Publisher,
		generateID: generateID,
		settings:   cfg.Settings,
		ctx:        ctx,
	}, nil
}

// WindowID returns the id of the coordinated window.
func (c *WindowCoordinator) WindowID() entity.WindowID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window.ID
}

// Root returns the current tree. Trees are never mutated in place, so the
// returned value stays valid after later intents.
func (c *WindowCoordinator) Root() entity.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window.Root
}

// Focused returns the focused leaf, or "" for an empty window.
func (c *WindowCoordinator) Focused() entity.LeafID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window.Focused
}

// Zoom returns the zoom overlay state.
func (c *WindowCoordinator) Zoom() entity.ZoomState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return entity.ZoomState{Zoomed: c.window.Zoomed != "", LeafID: c.window.Zoomed}
}

// Groups returns a copy of the group membership.
func (c *WindowCoordinator) Groups() map[entity.LeafID]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groups.Snapshot()
}

// SendMode returns the broadcast mode.
func (c *WindowCoordinator) SendMode() entity.SendMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groups.Mode()
}

// Title returns the window title.
func (c *WindowCoordinator) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window.Title
}

// VisualStates returns the broadcast state of every leaf.
func (c *WindowCoordinator) VisualStates() []usecase.LeafVisualState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groupsUC.VisualStates(c.window, c.groups)
}

// Describe encodes the current window without storing it.
func (c *WindowCoordinator) Describe() *entity.LayoutDescription {
	c.mu.Lock()
	defer c.mu.Unlock()
	return usecase.NewLayoutCodec(c.generateID, usecase.ProfileSet{}).Encode(c.window, c.groups)
}

// Start spawns the first session of an empty window.
func (c *WindowCoordinator) Start(ctx context.Context) error {
	return c.mutate(ctx, func(ctx context.Context, tx *mutation) error {
		if c.window.Root != nil {
			return fmt.Errorf("window already started")
		}
		leaf, err := tx.spawnLeaf(ctx, nil)
		if err != nil {
			return err
		}
		c.window.Root = leaf
		c.window.SetFocused(leaf.ID)
		tx.commit()
		return nil
	})
}

// Split splits the focused leaf.
func (c *WindowCoordinator) Split(ctx context.Context, orientation entity.Orientation) error {
	return c.SplitLeaf(ctx, "", orientation)
}

// SplitLeaf splits target, or the focused leaf when target is empty.
func (c *WindowCoordinator) SplitLeaf(ctx context.Context, target entity.LeafID, orientation entity.Orientation) error {
	return c.mutate(ctx, func(ctx context.Context, tx *mutation) error {
		if target == "" {
			target = c.window.Focused
		}
		_, err := c.layoutUC.Split(ctx, usecase.SplitInput{
			Window:      c.window,
			Target:      target,
			Orientation: orientation,
			Factory:     tx.spawnLeaf,
		})
		if err != nil {
			return err
		}
		tx.commit()
		return nil
	})
}

// Close closes the focused leaf.
func (c *WindowCoordinator) Close(ctx context.Context) error {
	return c.CloseLeaf(ctx, "")
}

// CloseLeaf closes target, or the focused leaf when target is empty.
func (c *WindowCoordinator) CloseLeaf(ctx context.Context, target entity.LeafID) error {
	return c.mutate(ctx, func(ctx context.Context, tx *mutation) error {
		if target == "" {
			target = c.window.Focused
		}
		return c.closeLocked(ctx, tx, target)
	})
}

func (c *WindowCoordinator) closeLocked(ctx context.Context, tx *mutation, target entity.LeafID) error {
	out, err := c.layoutUC.Close(ctx, c.window, target)
	if err != nil {
		return err
	}
	c.groups.Forget(target)
	if s, ok := c.sessions[target]; ok {
		delete(c.sessions, target)
		tx.closeAfter(s.handle)
	}
	if out.WindowEmpty {
		logging.FromContext(ctx).Info().Msg("last leaf closed")
	}
	return nil
}

// OpenTab opens a new tab next to the focused leaf.
func (c *WindowCoordinator) OpenTab(ctx context.Context, label string) error {
	return c.mutate(ctx, func(ctx context.Context, tx *mutation) error {
		_, err := c.layoutUC.OpenTab(ctx, usecase.OpenTabInput{
			Window:             c.window,
			InsertAfterCurrent: c.settings.InsertTabAfterCurrent,
			Label:              label,
			Factory:            tx.spawnLeaf,
		})
		if err != nil {
			return err
		}
		tx.commit()
		return nil
	})
}

// MoveTab moves the tab holding the focused leaf by delta positions.
func (c *WindowCoordinator) MoveTab(ctx context.Context, delta int) error {
	return c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		return c.layoutUC.MoveTab(ctx, c.window, c.window.Focused, delta)
	})
}

// SwitchTab activates the next (step > 0) or previous (step < 0) tab.
func (c *WindowCoordinator) SwitchTab(ctx context.Context, step int) error {
	return c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		return c.layoutUC.SwitchTab(ctx, c.window, step)
	})
}

// ActivateTab activates the tab at index.
func (c *WindowCoordinator) ActivateTab(ctx context.Context, index int) error {
	return c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		return c.layoutUC.ActivateTab(ctx, c.window, index)
	})
}

// SetTabLabel labels the tab holding the focused leaf.
func (c *WindowCoordinator) SetTabLabel(ctx context.Context, label string) error {
	return c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		return c.layoutUC.SetTabLabel(ctx, c.window, c.window.Focused, label)
	})
}

// ToggleZoom zooms or unzooms the focused leaf.
func (c *WindowCoordinator) ToggleZoom(ctx context.Context) (entity.ZoomState, error) {
	var state entity.ZoomState
	err := c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		var err error
		state, err = c.layoutUC.ToggleZoom(ctx, c.window, c.window.Focused)
		return err
	})
	return state, err
}

// Resize moves the divider next to the focused leaf one step in direction.
func (c *WindowCoordinator) Resize(ctx context.Context, direction entity.Direction) error {
	return c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		_, err := c.layoutUC.Resize(ctx, usecase.ResizeInput{
			Window:      c.window,
			Target:      c.window.Focused,
			Direction:   direction,
			Step:        c.settings.ResizeStep,
			MinFraction: c.settings.MinimumPaneFraction,
		})
		return err
	})
}

// FocusDirection moves focus to the neighbour in direction. It does nothing
// at the window edge or while a leaf is zoomed.
func (c *WindowCoordinator) FocusDirection(ctx context.Context, direction entity.Direction) error {
	return c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		if c.window.Zoomed != "" || c.window.Root == nil {
			return nil
		}
		next, ok, err := c.focusUC.Directional(ctx, c.window.Root, c.window.Focused, direction)
		if err != nil || !ok {
			return err
		}
		return c.layoutUC.Focus(ctx, c.window, next)
	})
}

// FocusCycle moves focus step leaves forward in tree order within scope.
func (c *WindowCoordinator) FocusCycle(ctx context.Context, step int, scope usecase.CycleScope) error {
	return c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		if c.window.Root == nil {
			return nil
		}
		next, err := c.focusUC.Cyclic(ctx, c.window.Root, c.window.Focused, step, scope)
		if err != nil {
			return err
		}
		return c.layoutUC.Focus(ctx, c.window, next)
	})
}

// Focus focuses a leaf, showing the tabs it sits in.
func (c *WindowCoordinator) Focus(ctx context.Context, leaf entity.LeafID) error {
	return c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		return c.layoutUC.Focus(ctx, c.window, leaf)
	})
}

// SetGroup assigns leaf (or the focused leaf) to a broadcast group.
func (c *WindowCoordinator) SetGroup(ctx context.Context, leaf entity.LeafID, name string) error {
	return c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		if leaf == "" {
			leaf = c.window.Focused
		}
		return c.groupsUC.SetGroup(ctx, c.window, c.groups, leaf, name)
	})
}

// GroupAll groups every leaf of the scope and returns the generated name.
func (c *WindowCoordinator) GroupAll(ctx context.Context, scope entity.GroupScope) (string, error) {
	var name string
	err := c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		var err error
		name, err = c.groupsUC.GroupAll(ctx, c.window, c.groups, scope)
		return err
	})
	return name, err
}

// UngroupAll clears group membership in the scope.
func (c *WindowCoordinator) UngroupAll(ctx context.Context, scope entity.GroupScope) error {
	return c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		return c.groupsUC.UngroupAll(ctx, c.window, c.groups, scope)
	})
}

// SetSendMode changes the broadcast mode.
func (c *WindowCoordinator) SetSendMode(ctx context.Context, mode entity.SendMode) error {
	return c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		return c.groupsUC.SetSendMode(ctx, c.groups, mode)
	})
}

// SetWindowTitle sets the window title.
func (c *WindowCoordinator) SetWindowTitle(ctx context.Context, title string) {
	c.mu.Lock()
	c.window.Title = title
	c.mu.Unlock()
	logging.FromContext(ctx).Debug().Str("title", title).Msg("window title set")
}

// ToggleFullscreen flips the fullscreen flag and returns the new value.
func (c *WindowCoordinator) ToggleFullscreen(ctx context.Context) bool {
	c.mu.Lock()
	c.window.Fullscreen = !c.window.Fullscreen
	on := c.window.Fullscreen
	c.mu.Unlock()
	logging.FromContext(ctx).Debug().Bool("fullscreen", on).Msg("fullscreen toggled")
	return on
}

// Shutdown closes every session and empties the window.
func (c *WindowCoordinator) Shutdown(ctx context.Context) error {
	return c.mutate(ctx, func(ctx context.Context, tx *mutation) error {
		for id, s := range c.sessions {
			tx.closeAfter(s.handle)
			delete(c.sessions, id)
		}
		c.window.Root = nil
		c.window.Zoomed = ""
		c.window.SetFocused("")
		c.groups = entity.NewGroupRegistry(c.groups.Mode())
		return nil
	})
}

// mutation collects the side effects of one intent. Sessions spawned while
// the intent runs are registered on commit and closed otherwise.
type mutation struct {
	c        *WindowCoordinator
	spawned  map[entity.LeafID]*leafSession
	watching map[entity.LeafID]port.SessionHandle
	closing  []port.SessionHandle
}

// spawnLeaf is the usecase.LeafFactory of the coordinator.
func (tx *mutation) spawnLeaf(ctx context.Context, source *entity.Leaf) (*entity.Leaf, error) {
	c := tx.c
	req := port.SpawnRequest{Profile: c.settings.DefaultProfile}
	if source != nil {
		if source.Profile != "" {
			req.Profile = source.Profile
		}
		if c.settings.InheritWorkingDirectory {
			req.Cwd = c.workingDirectoryLocked(ctx, source)
		}
	}
	return tx.spawn(ctx, &entity.Leaf{
		ID:        entity.LeafID(c.generateID()),
		Profile:   req.Profile,
		Directory: req.Cwd,
	}, req)
}

func (tx *mutation) spawn(ctx context.Context, leaf *entity.Leaf, req port.SpawnRequest) (*entity.Leaf, error) {
	handle, err := tx.c.factory.Spawn(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("spawn session: %w", err)
	}
	s := &leafSession{handle: handle}
	// Resolved once: capability does not change over the session lifetime.
	if q, ok := handle.(port.DirectoryQuerier); ok {
		s.cwd = q
	}
	if tx.spawned == nil {
		tx.spawned = make(map[entity.LeafID]*leafSession)
	}
	tx.spawned[leaf.ID] = s
	return leaf, nil
}

// commit registers the spawned sessions. Their notifications are wired once
// the lock is released, since a handle may notify from inside OnEnded.
func (tx *mutation) commit() {
	for id, s := range tx.spawned {
		tx.c.sessions[id] = s
		if tx.watching == nil {
			tx.watching = make(map[entity.LeafID]port.SessionHandle)
		}
		tx.watching[id] = s.handle
	}
	tx.spawned = nil
}

func (tx *mutation) closeAfter(h port.SessionHandle) {
	tx.closing = append(tx.closing, h)
}

// workingDirectoryLocked returns the directory a leaf spawned from source
// should start in.
func (c *WindowCoordinator) workingDirectoryLocked(ctx context.Context, source *entity.Leaf) string {
	if s, ok := c.sessions[source.ID]; ok && s.cwd != nil {
		dir, err := s.cwd.CurrentWorkingDirectory()
		if err == nil && dir != "" {
			return dir
		}
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Str("leaf_id", string(source.ID)).Msg("working directory query failed")
		}
	}
	return source.Directory
}

// snapshot is the observable state compared before and after an intent.
type snapshot struct {
	root    entity.Node
	focused entity.LeafID
	zoomed  entity.LeafID
	groups  map[entity.LeafID]string
	mode    entity.SendMode
}

func (c *WindowCoordinator) snapshotLocked() snapshot {
	return snapshot{
		root:    c.window.Root,
		focused: c.window.Focused,
		zoomed:  c.window.Zoomed,
		groups:  c.groups.Snapshot(),
		mode:    c.groups.Mode(),
	}
}

// mutate runs fn under the lock, then publishes the events describing what
// changed. Sessions closed by fn, or spawned but never committed, are closed
// after the lock is released; committed ones start notifying after the
// events are out. A target leaf that no longer exists is not an error.
func (c *WindowCoordinator) mutate(ctx context.Context, fn func(ctx context.Context, tx *mutation) error) error {
	tx := &mutation{c: c}

	c.mu.Lock()
	before := c.snapshotLocked()
	err := fn(ctx, tx)
	for _, s := range tx.spawned {
		tx.closing = append(tx.closing, s.handle)
	}
	events := c.diffLocked(before)
	c.mu.Unlock()

	log := logging.FromContext(ctx)
	for _, h := range tx.closing {
		if cerr := h.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close session")
		}
	}
	for _, ev := range events {
		c.publisher.Publish(ctx, ev)
	}
	for _, id := range slices.Sorted(maps.Keys(tx.watching)) {
		c.watch(id, tx.watching[id])
	}

	if errors.Is(err, entity.ErrNotFound) {
		log.Debug().Err(err).Msg("target leaf is gone, nothing to do")
		return nil
	}
	return err
}

func (c *WindowCoordinator) diffLocked(before snapshot) []entity.Event {
	w := c.window
	var events []entity.Event

	rootChanged := before.root != w.Root
	if rootChanged {
		events = append(events, entity.NodeReplaced{WindowID: w.ID, OldRoot: before.root, NewRoot: w.Root})
	}
	if before.zoomed != w.Zoomed {
		events = append(events, entity.ZoomChanged{
			WindowID: w.ID,
			Zoom:     entity.ZoomState{Zoomed: w.Zoomed != "", LeafID: w.Zoomed},
		})
	}
	if w.Root == nil {
		if before.root != nil {
			events = append(events, entity.WindowClosed{WindowID: w.ID})
		}
		return events
	}

	focusChanged := before.focused != w.Focused
	if focusChanged && w.Focused != "" {
		events = append(events, entity.FocusMoved{WindowID: w.ID, LeafID: w.Focused})
	}
	leavesChanged := rootChanged && !slices.Equal(entity.LeafIDs(before.root), entity.LeafIDs(w.Root))
	if focusChanged || leavesChanged || before.mode != c.groups.Mode() || !maps.Equal(before.groups, c.groups.Snapshot()) {
		for _, vs := range c.groupsUC.VisualStates(w, c.groups) {
			events = append(events, entity.VisualStateChanged{WindowID: w.ID, LeafID: vs.LeafID, State: vs.State})
		}
	}
	return events
}

// watch wires the notifications of a leaf's session.
func (c *WindowCoordinator) watch(id entity.LeafID, h port.SessionHandle) {
	h.OnTitleChanged(func(title string) {
		c.handleTitleChanged(id, title)
	})
	h.OnEnded(func(status int) {
		c.handleSessionEnded(id, status)
	})
}

func (c *WindowCoordinator) handleTitleChanged(id entity.LeafID, title string) {
	ctx := logging.WithLeafID(c.ctx, string(id))
	err := c.mutate(ctx, func(ctx context.Context, _ *mutation) error {
		_, err := c.layoutUC.SetTitle(ctx, c.window, id, title)
		return err
	})
	c.logNotificationError(ctx, err, "title change")
}

func (c *WindowCoordinator) handleSessionEnded(id entity.LeafID, status int) {
	ctx := logging.WithLeafID(c.ctx, string(id))
	logging.FromContext(ctx).Debug().Int("exit_status", status).Msg("session ended")

	err := c.mutate(ctx, func(ctx context.Context, tx *mutation) error {
		return c.closeLocked(ctx, tx, id)
	})
	c.logNotificationError(ctx, err, "session end")
}

// logNotificationError reports a failed notification. A missing leaf never
// gets here: mutate already treats it as a no-op.
func (c *WindowCoordinator) logNotificationError(ctx context.Context, err error, what string) {
	if err == nil {
		return
	}
	logging.FromContext(ctx).Warn().Err(err).Msgf("ignored %s notification", what)
}
