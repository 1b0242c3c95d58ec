package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/logging"
)

// GetKeybindingsUseCase retrieves all keybindings.
type GetKeybindingsUseCase struct {
	provider port.KeybindingsProvider
}

// NewGetKeybindingsUseCase creates a new GetKeybindingsUseCase.
func NewGetKeybindingsUseCase(provider port.KeybindingsProvider) *GetKeybindingsUseCase {
	return &GetKeybindingsUseCase{provider: provider}
}

// Execute returns every keybinding, sorted by action.
func (uc *GetKeybindingsUseCase) Execute(ctx context.Context) ([]port.KeybindingEntry, error) {
	if uc == nil || uc.provider == nil {
		return nil, fmt.Errorf("keybindings provider is nil")
	}
	entries, err := uc.provider.GetKeybindings(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Action < entries[j].Action })
	return entries, nil
}

// SetKeybindingUseCase updates a single keybinding.
type SetKeybindingUseCase struct {
	provider port.KeybindingsProvider
	saver    port.KeybindingsSaver
}

// NewSetKeybindingUseCase creates a new SetKeybindingUseCase.
func NewSetKeybindingUseCase(provider port.KeybindingsProvider, saver port.KeybindingsSaver) *SetKeybindingUseCase {
	return &SetKeybindingUseCase{provider: provider, saver: saver}
}

// Execute stores the binding and reports other actions already using the
// same accelerator. Conflicts do not prevent the change.
func (uc *SetKeybindingUseCase) Execute(ctx context.Context, req port.SetKeybindingRequest) ([]port.KeybindingConflict, error) {
	if uc == nil || uc.saver == nil || uc.provider == nil {
		return nil, fmt.Errorf("keybindings saver is nil")
	}
	req.Action = strings.TrimSpace(req.Action)
	req.Accelerator = strings.TrimSpace(req.Accelerator)
	if err := validateSetKeybindingRequest(req); err != nil {
		return nil, err
	}

	entries, err := uc.provider.GetKeybindings(ctx)
	if err != nil {
		return nil, err
	}
	conflicts := findConflicts(entries, req)
	if len(conflicts) > 0 {
		logging.FromContext(ctx).Warn().
			Str("action", req.Action).
			Str("accelerator", req.Accelerator).
			Int("conflicts", len(conflicts)).
			Msg("accelerator already bound")
	}

	if err := uc.saver.SetKeybinding(ctx, req.Action, req.Accelerator); err != nil {
		return nil, err
	}
	return conflicts, nil
}

// ResetKeybindingUseCase resets a keybinding to default.
type ResetKeybindingUseCase struct {
	saver port.KeybindingsSaver
}

// NewResetKeybindingUseCase creates a new ResetKeybindingUseCase.
func NewResetKeybindingUseCase(saver port.KeybindingsSaver) *ResetKeybindingUseCase {
	return &ResetKeybindingUseCase{saver: saver}
}

// Execute resets a keybinding to default.
func (uc *ResetKeybindingUseCase) Execute(ctx context.Context, action string) error {
	if uc == nil || uc.saver == nil {
		return fmt.Errorf("keybindings saver is nil")
	}
	action = strings.TrimSpace(action)
	if action == "" {
		return fmt.Errorf("action is required")
	}
	return uc.saver.ResetKeybinding(ctx, action)
}

// ResetAllKeybindingsUseCase resets all keybindings to defaults.
type ResetAllKeybindingsUseCase struct {
	saver port.KeybindingsSaver
}

// NewResetAllKeybindingsUseCase creates a new ResetAllKeybindingsUseCase.
func NewResetAllKeybindingsUseCase(saver port.KeybindingsSaver) *ResetAllKeybindingsUseCase {
	return &ResetAllKeybindingsUseCase{saver: saver}
}

// Execute resets all keybindings to defaults.
func (uc *ResetAllKeybindingsUseCase) Execute(ctx context.Context) error {
	if uc == nil || uc.saver == nil {
		return fmt.Errorf("keybindings saver is nil")
	}
	return uc.saver.ResetAllKeybindings(ctx)
}

func validateSetKeybindingRequest(req port.SetKeybindingRequest) error {
	if req.Action == "" {
		return fmt.Errorf("action is required")
	}
	if req.Accelerator == "" {
		return fmt.Errorf("accelerator is required")
	}
	return nil
}

// findConflicts compares accelerators as text, ignoring case.
func findConflicts(entries []port.KeybindingEntry, req port.SetKeybindingRequest) []port.KeybindingConflict {
	var conflicts []port.KeybindingConflict
	for _, e := range entries {
		if e.Action == req.Action {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(e.Accelerator), req.Accelerator) {
			conflicts = append(conflicts, port.KeybindingConflict{
				ConflictingAction: e.Action,
				Accelerator:       e.Accelerator,
			})
		}
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].ConflictingAction < conflicts[j].ConflictingAction })
	return conflicts
}
