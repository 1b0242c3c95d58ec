package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

// LeafVisualState pairs a leaf with its broadcast state.
type LeafVisualState struct {
	LeafID entity.LeafID
	State  entity.VisualState
}

// ManageGroupsUseCase handles broadcast group membership of a window.
type ManageGroupsUseCase struct{}

// NewManageGroupsUseCase creates a new group management use case.
func NewManageGroupsUseCase() *ManageGroupsUseCase {
	return &ManageGroupsUseCase{}
}

// SetGroup assigns leaf to the named group; an empty name clears membership.
func (uc *ManageGroupsUseCase) SetGroup(
	ctx context.Context,
	w *entity.Window,
	groups *entity.GroupRegistry,
	leaf entity.LeafID,
	name string,
) error {
	if w == nil || groups == nil {
		return fmt.Errorf("window and group registry are required")
	}
	if !entity.Contains(w.Root, leaf) {
		return &entity.NotFoundError{ID: leaf}
	}

	groups.SetGroup(leaf, name)
	logging.FromContext(ctx).Debug().
		Str("leaf_id", string(leaf)).
		Str("group", name).
		Msg("group membership set")
	return nil
}

// GroupAll puts every leaf of the scope into a new uniquely named group.
// With ScopeTab the scope is the top level tab page holding the focused leaf.
func (uc *ManageGroupsUseCase) GroupAll(
	ctx context.Context,
	w *entity.Window,
	groups *entity.GroupRegistry,
	scope entity.GroupScope,
) (string, error) {
	if w == nil || groups == nil {
		return "", fmt.Errorf("window and group registry are required")
	}
	if w.Root == nil {
		return "", fmt.Errorf("window is empty")
	}

	scopeRoot, tabIndex := uc.scopeRoot(w, scope)
	name := groups.GroupAll(scope, scopeRoot, tabIndex)

	logging.FromContext(ctx).Info().
		Str("group", name).
		Int("members", entity.LeafCount(scopeRoot)).
		Msg("grouped all leaves")
	return name, nil
}

// UngroupAll clears membership of every leaf in the scope.
func (uc *ManageGroupsUseCase) UngroupAll(
	ctx context.Context,
	w *entity.Window,
	groups *entity.GroupRegistry,
	scope entity.GroupScope,
) error {
	if w == nil || groups == nil {
		return fmt.Errorf("window and group registry are required")
	}
	scopeRoot, _ := uc.scopeRoot(w, scope)
	groups.UngroupAll(scopeRoot)

	logging.FromContext(ctx).Info().Int("leaves", entity.LeafCount(scopeRoot)).Msg("ungrouped all leaves")
	return nil
}

func (uc *ManageGroupsUseCase) scopeRoot(w *entity.Window, scope entity.GroupScope) (entity.Node, int) {
	if scope != entity.ScopeTab {
		return w.Root, 0
	}
	path := entity.PathTo(w.Root, w.Focused)
	if g, depth := outermostTabGroup(path); g != nil {
		return path[depth+1], g.PageOf(w.Focused)
	}
	return w.Root, 0
}

// SetSendMode changes the broadcast mode.
func (uc *ManageGroupsUseCase) SetSendMode(ctx context.Context, groups *entity.GroupRegistry, mode entity.SendMode) error {
	if groups == nil {
		return fmt.Errorf("group registry is required")
	}
	mode, err := entity.ParseSendMode(string(mode))
	if err != nil {
		return err
	}
	groups.SetMode(mode)
	logging.FromContext(ctx).Debug().Str("mode", string(mode)).Msg("send mode changed")
	return nil
}

// VisualStates computes the broadcast state of every leaf in tree order.
func (uc *ManageGroupsUseCase) VisualStates(w *entity.Window, groups *entity.GroupRegistry) []LeafVisualState {
	if w == nil || groups == nil {
		return nil
	}
	leaves := entity.LeafIDs(w.Root)
	states := make([]LeafVisualState, 0, len(leaves))
	for _, id := range leaves {
		states = append(states, LeafVisualState{
			LeafID: id,
			State:  groups.VisualState(w.Root, id, w.Focused),
		})
	}
	return states
}
