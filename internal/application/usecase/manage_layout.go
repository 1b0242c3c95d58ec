package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

var ErrNothingToResize = errors.New("nothing to resize")

// Resize and layout defaults, mirrored by the [layout] config section.
const (
	DefaultMinimumPaneFraction = 0.05
	DefaultResizeStep          = 0.05
)

// LeafFactory creates the leaf (and its session) for a split or a new tab.
// source is the leaf the operation started from; it may be nil.
type LeafFactory func(ctx context.Context, source *entity.Leaf) (*entity.Leaf, error)

// ManageLayoutUseCase mutates the arrangement tree of a window.
// Every mutation replaces Window.Root with a rebuilt root and leaves the
// previous root untouched.
type ManageLayoutUseCase struct{}

// NewManageLayoutUseCase creates a new layout tree use case.
func NewManageLayoutUseCase() *ManageLayoutUseCase {
	return &ManageLayoutUseCase{}
}

// SplitInput contains parameters for splitting a leaf.
type SplitInput struct {
	Window      *entity.Window
	Target      entity.LeafID
	Orientation entity.Orientation
	Factory     LeafFactory
}

// SplitOutput contains the result of a split.
type SplitOutput struct {
	NewLeaf *entity.Leaf
	Split   *entity.Split
}

// Split replaces the target's slot with a split holding the target first and
// a new leaf second.
func (uc *ManageLayoutUseCase) Split(ctx context.Context, input SplitInput) (*SplitOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("target_id", string(input.Target)).
		Str("orientation", input.Orientation.String()).
		Msg("splitting leaf")

	if input.Window == nil {
		return nil, fmt.Errorf("window is required")
	}
	if input.Factory == nil {
		return nil, fmt.Errorf("leaf factory is required")
	}

	w := input.Window
	path := entity.PathTo(w.Root, input.Target)
	if path == nil {
		return nil, &entity.NotFoundError{ID: input.Target}
	}
	source := path[len(path)-1].(*entity.Leaf)

	newLeaf, err := input.Factory(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("create leaf: %w", err)
	}
	if newLeaf == nil || newLeaf.ID == "" {
		return nil, fmt.Errorf("leaf factory returned no leaf")
	}
	if entity.Contains(w.Root, newLeaf.ID) {
		return nil, fmt.Errorf("leaf id %s already in use", newLeaf.ID)
	}

	split := &entity.Split{
		Orientation: input.Orientation,
		First:       source,
		Second:      newLeaf,
		Ratio:       entity.DefaultSplitRatio,
	}
	w.Root = rebuild(path, len(path)-1, split)
	w.Zoomed = ""
	w.SetFocused(newLeaf.ID)

	log.Info().
		Str("source_id", string(source.ID)).
		Str("new_leaf_id", string(newLeaf.ID)).
		Msg("leaf split")

	return &SplitOutput{NewLeaf: newLeaf, Split: split}, nil
}

// CloseOutput contains the result of closing a leaf.
type CloseOutput struct {
	WindowEmpty bool
	Promoted    entity.Node // Node now occupying the freed slot, or the visible page after a page removal
}

// Close removes a leaf and collapses the ancestors it leaves degenerate.
// A split parent is replaced by the sibling; a tab group parent loses the
// page and disappears in turn once it has no pages left.
func (uc *ManageLayoutUseCase) Close(ctx context.Context, w *entity.Window, target entity.LeafID) (*CloseOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("leaf_id", string(target)).Msg("closing leaf")

	if w == nil {
		return nil, fmt.Errorf("window is required")
	}

	path := entity.PathTo(w.Root, target)
	if path == nil {
		return nil, &entity.NotFoundError{ID: target}
	}

	wasFocused := w.Focused == target
	root, promoted, pageRemoved := collapse(path, len(path)-1)

	w.Root = root
	w.Zoomed = ""
	w.ForgetFocus(target)

	if root == nil {
		log.Info().Msg("closing last leaf in window")
		return &CloseOutput{WindowEmpty: true}, nil
	}

	if wasFocused || w.FindLeaf(w.Focused) == nil {
		next := focusAfterClose(w, root, promoted, pageRemoved)
		if next != nil {
			w.SetFocused(next.ID)
		}
	}

	log.Info().
		Str("closed_leaf_id", string(target)).
		Str("focused_id", string(w.Focused)).
		Msg("leaf closed")

	return &CloseOutput{Promoted: promoted}, nil
}

// collapse removes path[depth] and returns the new root together with the
// node that now occupies the affected slot. pageRemoved is set when the slot
// belonged to a tab group, in which case promoted is its new visible page.
func collapse(path []entity.Node, depth int) (root, promoted entity.Node, pageRemoved bool) {
	if depth == 0 {
		return nil, nil, false
	}

	switch parent := path[depth-1].(type) {
	case *entity.Split:
		sibling := parent.Second
		if parent.Second == path[depth] {
			sibling = parent.First
		}
		return rebuild(path, depth-1, sibling), sibling, false
	case *entity.TabGroup:
		if len(parent.Children) <= 1 {
			return collapse(path, depth-1)
		}
		g := copyTabGroup(parent)
		for i, child := range g.Children {
			if child == path[depth] {
				removePage(g, i)
				break
			}
		}
		return rebuild(path, depth-1, g), g.ActivePage(), true
	default:
		return rebuild(path, depth-1, nil), nil, false
	}
}

// focusAfterClose picks the entry leaf of a promoted sibling, or the leaf
// last focused on the page that became visible.
func focusAfterClose(w *entity.Window, root, promoted entity.Node, pageRemoved bool) *entity.Leaf {
	if promoted == nil {
		return entryLeaf(root)
	}
	if pageRemoved {
		if leaf := w.LastFocusedIn(promoted); leaf != nil && isVisible(root, leaf.ID) {
			return leaf
		}
	}
	return entryLeaf(promoted)
}

// isVisible reports whether every tab group on the path to id shows it.
func isVisible(root entity.Node, id entity.LeafID) bool {
	path := entity.PathTo(root, id)
	if path == nil {
		return false
	}
	for i := 0; i < len(path)-1; i++ {
		if g, ok := path[i].(*entity.TabGroup); ok && g.ActivePage() != path[i+1] {
			return false
		}
	}
	return true
}

// OpenTabInput contains parameters for opening a tab.
type OpenTabInput struct {
	Window             *entity.Window
	At                 entity.LeafID // Page to insert after; defaults to the focused leaf
	InsertAfterCurrent bool
	Label              string
	Factory            LeafFactory
}

// OpenTabOutput contains the result of opening a tab.
type OpenTabOutput struct {
	NewLeaf   *entity.Leaf
	TabGroup  *entity.TabGroup
	PageIndex int
}

// OpenTab adds a page holding a new leaf. A root that is not a tab group is
// first wrapped into a one-page tab group.
func (uc *ManageLayoutUseCase) OpenTab(ctx context.Context, input OpenTabInput) (*OpenTabOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("at", string(input.At)).
		Bool("insert_after_current", input.InsertAfterCurrent).
		Msg("opening tab")

	if input.Window == nil {
		return nil, fmt.Errorf("window is required")
	}
	if input.Factory == nil {
		return nil, fmt.Errorf("leaf factory is required")
	}

	w := input.Window
	at := input.At
	if at == "" {
		at = w.Focused
	}

	var source *entity.Leaf
	if at != "" {
		source = w.FindLeaf(at)
		if source == nil && input.At != "" {
			return nil, &entity.NotFoundError{ID: input.At}
		}
	}

	newLeaf, err := input.Factory(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("create leaf: %w", err)
	}
	if newLeaf == nil || newLeaf.ID == "" {
		return nil, fmt.Errorf("leaf factory returned no leaf")
	}
	if entity.Contains(w.Root, newLeaf.ID) {
		return nil, fmt.Errorf("leaf id %s already in use", newLeaf.ID)
	}

	if w.Root == nil {
		w.Root = newLeaf
		w.Zoomed = ""
		w.SetFocused(newLeaf.ID)
		return &OpenTabOutput{NewLeaf: newLeaf}, nil
	}

	var g *entity.TabGroup
	if root, ok := w.Root.(*entity.TabGroup); ok {
		g = copyTabGroup(root)
	} else {
		g = &entity.TabGroup{
			Children: []entity.Node{w.Root},
			Labels:   []string{""},
		}
	}

	index := len(g.Children)
	if input.InsertAfterCurrent && source != nil {
		if page := g.PageOf(source.ID); page >= 0 {
			index = page + 1
		}
	}

	g.Children = append(g.Children, nil)
	copy(g.Children[index+1:], g.Children[index:])
	g.Children[index] = newLeaf
	g.Labels = append(g.Labels, "")
	copy(g.Labels[index+1:], g.Labels[index:])
	g.Labels[index] = input.Label
	g.ActiveIndex = index

	w.Root = g
	w.Zoomed = ""
	w.SetFocused(newLeaf.ID)

	log.Info().
		Str("new_leaf_id", string(newLeaf.ID)).
		Int("page_index", index).
		Int("page_count", len(g.Children)).
		Msg("tab opened")

	return &OpenTabOutput{NewLeaf: newLeaf, TabGroup: g, PageIndex: index}, nil
}

// MoveTab moves the page containing leaf by delta positions inside its
// nearest tab group, wrapping around. No-op with fewer than two pages.
func (uc *ManageLayoutUseCase) MoveTab(ctx context.Context, w *entity.Window, leaf entity.LeafID, delta int) error {
	log := logging.FromContext(ctx)

	if w == nil {
		return fmt.Errorf("window is required")
	}
	path := entity.PathTo(w.Root, leaf)
	if path == nil {
		return &entity.NotFoundError{ID: leaf}
	}

	group, depth := nearestTabGroup(path)
	if group == nil || len(group.Children) < 2 || delta == 0 {
		return nil
	}

	from := group.PageOf(leaf)
	to := wrapIndex(from+delta, len(group.Children))
	if from == to {
		return nil
	}

	g := copyTabGroup(group)
	active := g.ActivePage()

	page, label := g.Children[from], g.Label(from)
	removePage(g, from)
	g.Children = append(g.Children, nil)
	copy(g.Children[to+1:], g.Children[to:])
	g.Children[to] = page
	g.Labels = append(g.Labels, "")
	copy(g.Labels[to+1:], g.Labels[to:])
	g.Labels[to] = label

	for i, child := range g.Children {
		if child == active {
			g.ActiveIndex = i
			break
		}
	}

	w.Root = rebuild(path, depth, g)
	w.Zoomed = ""

	log.Debug().
		Str("leaf_id", string(leaf)).
		Int("from", from).
		Int("to", to).
		Msg("tab moved")

	return nil
}

// SwitchTab activates the page step positions away from the active one in the
// window's tab group, wrapping around. Notebooks nested in a page are left
// alone.
func (uc *ManageLayoutUseCase) SwitchTab(ctx context.Context, w *entity.Window, step int) error {
	if w == nil {
		return fmt.Errorf("window is required")
	}
	group := uc.windowTabGroup(w)
	if group == nil || len(group.Children) < 2 {
		return nil
	}
	return uc.ActivateTab(ctx, w, wrapIndex(group.ActiveIndex+step, len(group.Children)))
}

// ActivateTab shows page index of the window's tab group and focuses the leaf
// last focused on that page.
func (uc *ManageLayoutUseCase) ActivateTab(ctx context.Context, w *entity.Window, index int) error {
	log := logging.FromContext(ctx)

	if w == nil {
		return fmt.Errorf("window is required")
	}
	group := uc.windowTabGroup(w)
	if group == nil {
		return nil
	}
	if index < 0 || index >= len(group.Children) {
		return fmt.Errorf("tab index %d out of range [0,%d)", index, len(group.Children))
	}

	target := w.LastFocusedIn(group.Children[index])
	if target == nil {
		return nil
	}

	log.Debug().Int("index", index).Str("leaf_id", string(target.ID)).Msg("activating tab")
	return uc.Focus(ctx, w, target.ID)
}

// windowTabGroup returns the outermost tab group holding the focused leaf,
// falling back to a tab group root.
func (uc *ManageLayoutUseCase) windowTabGroup(w *entity.Window) *entity.TabGroup {
	if path := entity.PathTo(w.Root, w.Focused); path != nil {
		g, _ := outermostTabGroup(path)
		return g
	}
	g, _ := w.Root.(*entity.TabGroup)
	return g
}

// SetTabLabel renames the page containing leaf in its nearest tab group.
func (uc *ManageLayoutUseCase) SetTabLabel(ctx context.Context, w *entity.Window, leaf entity.LeafID, label string) error {
	log := logging.FromContext(ctx)

	if w == nil {
		return fmt.Errorf("window is required")
	}
	path := entity.PathTo(w.Root, leaf)
	if path == nil {
		return &entity.NotFoundError{ID: leaf}
	}
	group, depth := nearestTabGroup(path)
	if group == nil {
		return fmt.Errorf("leaf %s is not inside a tab group", leaf)
	}

	index := group.PageOf(leaf)
	if group.Label(index) == label {
		return nil
	}
	g := copyTabGroup(group)
	g.Labels[index] = label
	w.Root = rebuild(path, depth, g)

	log.Debug().Str("leaf_id", string(leaf)).Str("label", label).Msg("tab label set")
	return nil
}

// ToggleZoom zooms the target, or unzooms it when it is already zoomed.
func (uc *ManageLayoutUseCase) ToggleZoom(ctx context.Context, w *entity.Window, target entity.LeafID) (entity.ZoomState, error) {
	log := logging.FromContext(ctx)

	if w == nil {
		return entity.ZoomState{}, fmt.Errorf("window is required")
	}
	if !entity.Contains(w.Root, target) {
		return entity.ZoomState{Zoomed: w.Zoomed != "", LeafID: w.Zoomed}, &entity.NotFoundError{ID: target}
	}

	if w.Zoomed == target {
		w.Zoomed = ""
		log.Debug().Str("leaf_id", string(target)).Msg("unzoomed")
		return entity.ZoomState{}, nil
	}

	w.Zoomed = target
	log.Debug().Str("leaf_id", string(target)).Msg("zoomed")
	return entity.ZoomState{Zoomed: true, LeafID: target}, nil
}

// ResizeInput contains parameters for resizing around a leaf.
type ResizeInput struct {
	Window      *entity.Window
	Target      entity.LeafID
	Direction   entity.Direction
	Step        float64 // Fraction of the split, e.g. 0.05
	MinFraction float64 // Smallest fraction either side may shrink to
}

// Resize moves the divider of the nearest split ancestor whose orientation
// matches the direction's axis. Right and Down grow the first child.
// Returns the resulting ratio.
func (uc *ManageLayoutUseCase) Resize(ctx context.Context, input ResizeInput) (float64, error) {
	log := logging.FromContext(ctx)

	if input.Window == nil {
		return 0, fmt.Errorf("window is required")
	}
	w := input.Window
	if w.Root == nil {
		return 0, ErrNothingToResize
	}

	axis, ok := input.Direction.Axis()
	if !ok {
		return 0, fmt.Errorf("unknown direction %q", input.Direction)
	}

	path := entity.PathTo(w.Root, input.Target)
	if path == nil {
		return 0, &entity.NotFoundError{ID: input.Target}
	}

	depth := -1
	for i := len(path) - 2; i >= 0; i-- {
		if s, isSplit := path[i].(*entity.Split); isSplit && s.Orientation == axis {
			depth = i
			break
		}
	}
	if depth < 0 {
		return 0, ErrNothingToResize
	}

	minRatio := input.MinFraction
	if minRatio <= 0 || minRatio >= 0.5 || math.IsNaN(minRatio) {
		minRatio = DefaultMinimumPaneFraction
	}
	step := math.Abs(input.Step)
	if step == 0 || math.IsNaN(step) {
		step = DefaultResizeStep
	}
	if !input.Direction.Forward() {
		step = -step
	}

	split := *path[depth].(*entity.Split)
	oldRatio := split.Ratio
	split.Ratio = clampFloat64(split.Ratio+step, minRatio, 1.0-minRatio)
	w.Root = rebuild(path, depth, &split)

	log.Debug().
		Str("direction", string(input.Direction)).
		Float64("old_ratio", oldRatio).
		Float64("new_ratio", split.Ratio).
		Msg("split resized")

	return split.Ratio, nil
}

// Focus focuses a leaf and shows every tab page on its path.
func (uc *ManageLayoutUseCase) Focus(ctx context.Context, w *entity.Window, leaf entity.LeafID) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("leaf_id", string(leaf)).Msg("focusing leaf")

	if w == nil {
		return fmt.Errorf("window is required")
	}
	path := entity.PathTo(w.Root, leaf)
	if path == nil {
		return &entity.NotFoundError{ID: leaf}
	}

	for i := len(path) - 2; i >= 0; i-- {
		g, ok := path[i].(*entity.TabGroup)
		if !ok || g.ActivePage() == path[i+1] {
			continue
		}
		c := copyTabGroup(g)
		c.ActiveIndex = g.PageOf(leaf)
		w.Root = rebuild(path, i, c)
		path = entity.PathTo(w.Root, leaf)
	}

	w.SetFocused(leaf)
	return nil
}

// SetTitle records a title reported by the leaf's session.
// It returns false when the title did not change.
func (uc *ManageLayoutUseCase) SetTitle(ctx context.Context, w *entity.Window, leaf entity.LeafID, title string) (bool, error) {
	if w == nil {
		return false, fmt.Errorf("window is required")
	}
	path := entity.PathTo(w.Root, leaf)
	if path == nil {
		return false, &entity.NotFoundError{ID: leaf}
	}

	current := path[len(path)-1].(*entity.Leaf)
	if current.Title == title {
		return false, nil
	}
	updated := *current
	updated.Title = title
	w.Root = rebuild(path, len(path)-1, &updated)

	logging.FromContext(ctx).Trace().
		Str("leaf_id", string(leaf)).
		Str("title", title).
		Msg("leaf title changed")
	return true, nil
}
