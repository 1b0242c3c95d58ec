package usecase

import (
	"context"
	"testing"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManageGroupsUseCase_SetGroup(t *testing.T) {
	uc := NewManageGroupsUseCase()
	ctx := context.Background()
	w := windowWith(hsplit(leaf("a"), leaf("b")), "a")
	groups := entity.NewGroupRegistry(entity.SendGroup)

	require.NoError(t, uc.SetGroup(ctx, w, groups, "a", "g1"))
	require.NoError(t, uc.SetGroup(ctx, w, groups, "b", "g1"))
	assert.Equal(t, []entity.LeafID{"a", "b"}, groups.ResolveSendTargets(w.Root, "a"))

	require.NoError(t, uc.SetGroup(ctx, w, groups, "b", ""))
	assert.Equal(t, []entity.LeafID{"a"}, groups.ResolveSendTargets(w.Root, "a"))

	assert.ErrorIs(t, uc.SetGroup(ctx, w, groups, "zz", "g1"), entity.ErrNotFound)
}

func TestManageGroupsUseCase_GroupAllAndUngroupAll(t *testing.T) {
	uc := NewManageGroupsUseCase()
	ctx := context.Background()
	w := windowWith(tabs(0, hsplit(leaf("a"), leaf("b")), leaf("c")), "b")
	groups := entity.NewGroupRegistry(entity.SendGroup)

	name, err := uc.GroupAll(ctx, w, groups, entity.ScopeTab)
	require.NoError(t, err)
	assert.Equal(t, "tab-1", name)
	assert.Equal(t, "tab-1", groups.GroupOf("a"))
	assert.Equal(t, "tab-1", groups.GroupOf("b"))
	assert.Empty(t, groups.GroupOf("c"))

	name, err = uc.GroupAll(ctx, w, groups, entity.ScopeWindow)
	require.NoError(t, err)
	assert.Equal(t, "window", name)
	assert.Equal(t, []entity.LeafID{"a", "b", "c"}, groups.Members(w.Root, "window"))

	name, err = uc.GroupAll(ctx, w, groups, entity.ScopeWindow)
	require.NoError(t, err)
	assert.Equal(t, "window-2", name, "generated names never collide with live groups")

	require.NoError(t, uc.SetGroup(ctx, w, groups, "c", "other"))
	name, err = uc.GroupAll(ctx, w, groups, entity.ScopeTab)
	require.NoError(t, err)
	assert.Equal(t, "tab-1", name)

	require.NoError(t, uc.UngroupAll(ctx, w, groups, entity.ScopeTab))
	assert.Empty(t, groups.GroupOf("a"))
	assert.Equal(t, "other", groups.GroupOf("c"))

	_, err = uc.GroupAll(ctx, &entity.Window{}, groups, entity.ScopeWindow)
	assert.Error(t, err)
}

func TestManageGroupsUseCase_VisualStates(t *testing.T) {
	uc := NewManageGroupsUseCase()
	ctx := context.Background()
	w := windowWith(hsplit(leaf("a"), vsplit(leaf("b"), leaf("c"))), "a")
	groups := entity.NewGroupRegistry(entity.SendGroup)
	require.NoError(t, uc.SetGroup(ctx, w, groups, "a", "g1"))
	require.NoError(t, uc.SetGroup(ctx, w, groups, "b", "g1"))

	assert.Equal(t, []LeafVisualState{
		{LeafID: "a", State: entity.VisualTransmit},
		{LeafID: "b", State: entity.VisualReceive},
		{LeafID: "c", State: entity.VisualInactive},
	}, uc.VisualStates(w, groups))

	require.NoError(t, uc.SetSendMode(ctx, groups, entity.SendAll))
	w.SetFocused("c")
	assert.Equal(t, []LeafVisualState{
		{LeafID: "a", State: entity.VisualReceive},
		{LeafID: "b", State: entity.VisualReceive},
		{LeafID: "c", State: entity.VisualTransmit},
	}, uc.VisualStates(w, groups))

	assert.Error(t, uc.SetSendMode(ctx, groups, entity.SendMode("sometimes")))
	assert.Equal(t, entity.SendAll, groups.Mode())

	require.NoError(t, uc.SetSendMode(ctx, groups, ""))
	assert.Equal(t, entity.SendOff, groups.Mode(), "empty mode is stored as off")
}
