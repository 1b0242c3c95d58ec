package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/application/port/mocks"
	"github.com/bnema/dumbterm/internal/application/usecase"
)

func TestGetKeybindingsUseCase_Execute(t *testing.T) {
	t.Run("returns keybindings sorted by action", func(t *testing.T) {
		mockProvider := mocks.NewMockKeybindingsProvider(t)
		mockProvider.EXPECT().GetKeybindings(mock.Anything).Return([]port.KeybindingEntry{
			{Action: "zoom", Accelerator: "ctrl+shift+x"},
			{Action: "close", Accelerator: "ctrl+shift+w"},
		}, nil)

		uc := usecase.NewGetKeybindingsUseCase(mockProvider)
		result, err := uc.Execute(context.Background())

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "close", result[0].Action)
		assert.Equal(t, "zoom", result[1].Action)
	})

	t.Run("returns error when provider fails", func(t *testing.T) {
		mockProvider := mocks.NewMockKeybindingsProvider(t)
		mockProvider.EXPECT().GetKeybindings(mock.Anything).Return(nil, errors.New("provider error"))

		uc := usecase.NewGetKeybindingsUseCase(mockProvider)
		_, err := uc.Execute(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider error")
	})

	t.Run("returns error when provider is nil", func(t *testing.T) {
		uc := usecase.NewGetKeybindingsUseCase(nil)
		_, err := uc.Execute(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider is nil")
	})
}

func TestSetKeybindingUseCase_Execute(t *testing.T) {
	existing := []port.KeybindingEntry{
		{Action: "new_tab", Accelerator: "ctrl+shift+t"},
		{Action: "zoom", Accelerator: "Ctrl+Shift+X"},
	}

	t.Run("stores the binding", func(t *testing.T) {
		mockProvider := mocks.NewMockKeybindingsProvider(t)
		mockSaver := mocks.NewMockKeybindingsSaver(t)
		mockProvider.EXPECT().GetKeybindings(mock.Anything).Return(existing, nil)
		mockSaver.EXPECT().SetKeybinding(mock.Anything, "close", "ctrl+shift+q").Return(nil)

		uc := usecase.NewSetKeybindingUseCase(mockProvider, mockSaver)
		conflicts, err := uc.Execute(context.Background(), port.SetKeybindingRequest{
			Action:      " close ",
			Accelerator: "ctrl+shift+q ",
		})

		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("reports conflicts and still saves", func(t *testing.T) {
		mockProvider := mocks.NewMockKeybindingsProvider(t)
		mockSaver := mocks.NewMockKeybindingsSaver(t)
		mockProvider.EXPECT().GetKeybindings(mock.Anything).Return(existing, nil)
		mockSaver.EXPECT().SetKeybinding(mock.Anything, "close", "ctrl+shift+x").Return(nil)

		uc := usecase.NewSetKeybindingUseCase(mockProvider, mockSaver)
		conflicts, err := uc.Execute(context.Background(), port.SetKeybindingRequest{
			Action:      "close",
			Accelerator: "ctrl+shift+x",
		})

		require.NoError(t, err)
		require.Len(t, conflicts, 1)
		assert.Equal(t, "zoom", conflicts[0].ConflictingAction)
	})

	t.Run("rebinding an action to its own accelerator is no conflict", func(t *testing.T) {
		mockProvider := mocks.NewMockKeybindingsProvider(t)
		mockSaver := mocks.NewMockKeybindingsSaver(t)
		mockProvider.EXPECT().GetKeybindings(mock.Anything).Return(existing, nil)
		mockSaver.EXPECT().SetKeybinding(mock.Anything, "new_tab", "ctrl+shift+t").Return(nil)

		uc := usecase.NewSetKeybindingUseCase(mockProvider, mockSaver)
		conflicts, err := uc.Execute(context.Background(), port.SetKeybindingRequest{
			Action:      "new_tab",
			Accelerator: "ctrl+shift+t",
		})

		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("validates the request", func(t *testing.T) {
		mockProvider := mocks.NewMockKeybindingsProvider(t)
		mockSaver := mocks.NewMockKeybindingsSaver(t)
		uc := usecase.NewSetKeybindingUseCase(mockProvider, mockSaver)

		_, err := uc.Execute(context.Background(), port.SetKeybindingRequest{Accelerator: "a"})
		assert.ErrorContains(t, err, "action is required")

		_, err = uc.Execute(context.Background(), port.SetKeybindingRequest{Action: "close", Accelerator: "  "})
		assert.ErrorContains(t, err, "accelerator is required")
	})

	t.Run("propagates saver errors", func(t *testing.T) {
		mockProvider := mocks.NewMockKeybindingsProvider(t)
		mockSaver := mocks.NewMockKeybindingsSaver(t)
		mockProvider.EXPECT().GetKeybindings(mock.Anything).Return(nil, nil)
		mockSaver.EXPECT().SetKeybinding(mock.Anything, "close", "q").Return(errors.New("read-only"))

		uc := usecase.NewSetKeybindingUseCase(mockProvider, mockSaver)
		_, err := uc.Execute(context.Background(), port.SetKeybindingRequest{Action: "close", Accelerator: "q"})
		assert.ErrorContains(t, err, "read-only")
	})
}

func TestResetKeybindingUseCases(t *testing.T) {
	mockSaver := mocks.NewMockKeybindingsSaver(t)
	mockSaver.EXPECT().ResetKeybinding(mock.Anything, "zoom").Return(nil).Once()
	mockSaver.EXPECT().ResetAllKeybindings(mock.Anything).Return(nil).Once()

	require.NoError(t, usecase.NewResetKeybindingUseCase(mockSaver).Execute(context.Background(), " zoom "))
	require.NoError(t, usecase.NewResetAllKeybindingsUseCase(mockSaver).Execute(context.Background()))

	assert.Error(t, usecase.NewResetKeybindingUseCase(mockSaver).Execute(context.Background(), ""))
	assert.Error(t, usecase.NewResetAllKeybindingsUseCase(nil).Execute(context.Background()))
}
