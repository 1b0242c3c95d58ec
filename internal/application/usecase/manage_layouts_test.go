package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/dumbterm/internal/application/port"
	portmocks "github.com/bnema/dumbterm/internal/application/port/mocks"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManageLayoutsUseCase_Save(t *testing.T) {
	ctx := context.Background()
	store := portmocks.NewMockConfigStore(t)
	uc := NewManageLayoutsUseCase(store, sequentialIDs("id"))

	w, groups := sampleWindow()
	store.EXPECT().
		SaveLayout(mock.Anything, "work", mock.AnythingOfType("*entity.LayoutDescription")).
		RunAndReturn(func(_ context.Context, name string, desc *entity.LayoutDescription) error {
			assert.Equal(t, name, desc.Name)
			assert.Equal(t, entity.LayoutTypeNotebook, desc.Root.Type)
			return nil
		})

	desc, err := uc.Save(ctx, "  work ", w, groups)
	require.NoError(t, err)
	assert.Equal(t, "work", desc.Name)
}

func TestManageLayoutsUseCase_Save_Errors(t *testing.T) {
	ctx := context.Background()
	store := portmocks.NewMockConfigStore(t)
	uc := NewManageLayoutsUseCase(store, sequentialIDs("id"))
	w, groups := sampleWindow()

	_, err := uc.Save(ctx, " ", w, groups)
	assert.Error(t, err)

	_, err = uc.Save(ctx, "empty", &entity.Window{}, groups)
	assert.Error(t, err)

	storeErr := errors.New("disk full")
	store.EXPECT().SaveLayout(mock.Anything, "work", mock.Anything).Return(storeErr)
	_, err = uc.Save(ctx, "work", w, groups)
	assert.ErrorIs(t, err, storeErr)
}

func TestManageLayoutsUseCase_Load(t *testing.T) {
	ctx := context.Background()
	store := portmocks.NewMockConfigStore(t)
	uc := NewManageLayoutsUseCase(store, sequentialIDs("id"))

	desc := &entity.LayoutDescription{
		Root: &entity.LayoutNode{Type: "hsplit", Children: []*entity.LayoutNode{
			{Type: "terminal", UUID: "a", Profile: "ops"},
			{Type: "terminal", UUID: "b", Profile: "retired"},
		}},
	}
	store.EXPECT().GetLayout(mock.Anything, "dev").Return(desc, nil)
	store.EXPECT().ListProfiles(mock.Anything).Return([]string{"default", "ops"}, nil)
	store.EXPECT().DefaultProfile(mock.Anything).Return("default")

	result, err := uc.Load(ctx, "dev")
	require.NoError(t, err)
	assert.Equal(t, "h(*,*)", skeleton(result.Window.Root))
	assert.Equal(t, "ops", result.Window.FindLeaf(result.IDs["a"]).Profile)
	assert.Equal(t, "default", result.Window.FindLeaf(result.IDs["b"]).Profile)
	assert.Len(t, result.Report.Substitutions, 1)
	assert.Equal(t, "dev", desc.Name)
}

func TestManageLayoutsUseCase_Load_NotFound(t *testing.T) {
	store := portmocks.NewMockConfigStore(t)
	uc := NewManageLayoutsUseCase(store, sequentialIDs("id"))

	store.EXPECT().GetLayout(mock.Anything, "nope").Return(nil, port.ErrLayoutNotFound)

	_, err := uc.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, port.ErrLayoutNotFound)
}

func TestManageLayoutsUseCase_List_DefaultFirstThenCaseInsensitive(t *testing.T) {
	store := portmocks.NewMockConfigStore(t)
	uc := NewManageLayoutsUseCase(store, sequentialIDs("id"))

	store.EXPECT().ListLayouts(mock.Anything).Return([]string{"zeta", "Beta", "default", "alpha", "beta"}, nil)

	names, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "alpha", "Beta", "beta", "zeta"}, names)
}

func TestManageLayoutsUseCase_DeleteAndProfiles(t *testing.T) {
	ctx := context.Background()
	store := portmocks.NewMockConfigStore(t)
	uc := NewManageLayoutsUseCase(store, sequentialIDs("id"))

	store.EXPECT().DeleteLayout(mock.Anything, "old").Return(nil)
	require.NoError(t, uc.Delete(ctx, "old"))

	store.EXPECT().ListProfiles(mock.Anything).Return([]string{"ops", "Admin", "main"}, nil)
	store.EXPECT().DefaultProfile(mock.Anything).Return("main")

	profiles, err := uc.Profiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "Admin", "ops"}, profiles)
}
