package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

// ManageLayoutsUseCase stores and restores named layouts through the
// configuration store.
type ManageLayoutsUseCase struct {
	store       port.ConfigStore
	idGenerator IDGenerator
}

// NewManageLayoutsUseCase creates a new layout catalog use case.
func NewManageLayoutsUseCase(store port.ConfigStore, idGenerator IDGenerator) *ManageLayoutsUseCase {
	return &ManageLayoutsUseCase{
		store:       store,
		idGenerator: idGenerator,
	}
}

// Save encodes the window and stores it under name, replacing any layout
// with the same name.
func (uc *ManageLayoutsUseCase) Save(
	ctx context.Context,
	name string,
	w *entity.Window,
	groups *entity.GroupRegistry,
) (*entity.LayoutDescription, error) {
	desc, err := uc.Describe(name, w, groups)
	if err != nil {
		return nil, err
	}
	if err := uc.Store(ctx, desc, w.LeafCount()); err != nil {
		return nil, err
	}
	return desc, nil
}

// Describe encodes w under name without storing it.
func (uc *ManageLayoutsUseCase) Describe(name string, w *entity.Window, groups *entity.GroupRegistry) (*entity.LayoutDescription, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("layout name is required")
	}
	if w == nil || w.Root == nil {
		return nil, fmt.Errorf("window is empty")
	}

	desc := NewLayoutCodec(uc.idGenerator, ProfileSet{}).Encode(w, groups)
	desc.Name = name
	return desc, nil
}

// Store writes a described layout to the catalog.
func (uc *ManageLayoutsUseCase) Store(ctx context.Context, desc *entity.LayoutDescription, leaves int) error {
	if err := uc.store.SaveLayout(ctx, desc.Name, desc); err != nil {
		return fmt.Errorf("save layout %q: %w", desc.Name, err)
	}
	logging.FromContext(ctx).Info().Str("layout", desc.Name).Int("leaves", leaves).Msg("layout saved")
	return nil
}

// Load fetches and decodes a named layout.
func (uc *ManageLayoutsUseCase) Load(ctx context.Context, name string) (*DecodeResult, error) {
	desc, err := uc.store.GetLayout(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get layout %q: %w", name, err)
	}
	if desc.Name == "" {
		desc.Name = name
	}
	return uc.Decode(ctx, desc)
}

// Decode rebuilds a description against the configured profiles.
func (uc *ManageLayoutsUseCase) Decode(ctx context.Context, desc *entity.LayoutDescription) (*DecodeResult, error) {
	codec, err := uc.codec(ctx)
	if err != nil {
		return nil, err
	}
	result, err := codec.Decode(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return result, nil
}

func (uc *ManageLayoutsUseCase) codec(ctx context.Context) (*LayoutCodec, error) {
	profiles, err := uc.store.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return NewLayoutCodec(uc.idGenerator, ProfileSet{
		Default: uc.store.DefaultProfile(ctx),
		Known:   profiles,
	}), nil
}

// List returns layout names in launcher order: the default layout first,
// then case-insensitive alphabetical.
func (uc *ManageLayoutsUseCase) List(ctx context.Context) ([]string, error) {
	names, err := uc.store.ListLayouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	SortLayoutNames(names)
	return names, nil
}

// SortLayoutNames orders names the way launchers present them.
func SortLayoutNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		a, b := names[i], names[j]
		if a == entity.DefaultLayoutName || b == entity.DefaultLayoutName {
			return a == entity.DefaultLayoutName && b != entity.DefaultLayoutName
		}
		la, lb := strings.ToLower(a), strings.ToLower(b)
		if la != lb {
			return la < lb
		}
		return a < b
	})
}

// Delete removes a named layout.
func (uc *ManageLayoutsUseCase) Delete(ctx context.Context, name string) error {
	if err := uc.store.DeleteLayout(ctx, name); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	logging.FromContext(ctx).Info().Str("layout", name).Msg("layout deleted")
	return nil
}

// Profiles returns the configured profile names, default first.
func (uc *ManageLayoutsUseCase) Profiles(ctx context.Context) ([]string, error) {
	profiles, err := uc.store.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	def := uc.store.DefaultProfile(ctx)
	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i] == def || profiles[j] == def {
			return profiles[i] == def && profiles[j] != def
		}
		return strings.ToLower(profiles[i]) < strings.ToLower(profiles[j])
	})
	return profiles, nil
}
