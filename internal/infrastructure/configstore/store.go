// Package configstore serves profiles from the config file and named
// layouts from the layout database through port.ConfigStore.
package configstore

import (
	"context"
	"fmt"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/domain/repository"
	"github.com/bnema/dumbterm/internal/infrastructure/cache"
	"github.com/bnema/dumbterm/internal/infrastructure/config"
	"github.com/bnema/dumbterm/internal/logging"
	"github.com/goccy/go-json"
)

const defaultCacheSize = 32

// ConfigSource returns the current configuration. *config.Manager implements it.
type ConfigSource interface {
	Get() *config.Config
}

// Store implements port.ConfigStore.
type Store struct {
	config  ConfigSource
	layouts repository.LayoutRepository
	cache   port.Cache[string, []byte]
}

var _ port.ConfigStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithCache replaces the default in-memory layout cache.
func WithCache(c port.Cache[string, []byte]) Option {
	return func(s *Store) {
		s.cache = c
	}
}

// New creates a store. Decoded layouts are cached as their JSON document so
// callers never share a description.
func New(cfg ConfigSource, layouts repository.LayoutRepository, opts ...Option) *Store {
	s := &Store{
		config:  cfg,
		layouts: layouts,
		cache:   cache.NewLRU[string, []byte](defaultCacheSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) GetLayout(ctx context.Context, name string) (*entity.LayoutDescription, error) {
	log := logging.FromContext(ctx)

	if doc, ok := s.cache.Get(name); ok {
		desc := &entity.LayoutDescription{}
		if err := json.Unmarshal(doc, desc); err == nil {
			log.Trace().Str("layout", name).Msg("layout cache hit")
			return desc, nil
		}
		s.cache.Remove(name)
	}

	desc, err := s.layouts.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get layout %q: %w", name, err)
	}
	if desc == nil {
		return nil, fmt.Errorf("%w: %s", port.ErrLayoutNotFound, name)
	}

	if doc, err := json.Marshal(desc); err == nil {
		s.cache.Set(name, doc)
	}
	return desc, nil
}

func (s *Store) SaveLayout(ctx context.Context, name string, desc *entity.LayoutDescription) error {
	if desc == nil {
		return fmt.Errorf("save layout %q: description is nil", name)
	}
	stored := *desc
	stored.Name = name

	s.cache.Remove(name)
	if err := s.layouts.Save(ctx, &stored); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("layout", name).Msg("layout stored")
	return nil
}

func (s *Store) ListLayouts(ctx context.Context) ([]string, error) {
	return s.layouts.List(ctx)
}

// DeleteLayout removes a layout, or returns port.ErrLayoutNotFound.
func (s *Store) DeleteLayout(ctx context.Context, name string) error {
	existing, err := s.layouts.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", port.ErrLayoutNotFound, name)
	}

	s.cache.Remove(name)
	return s.layouts.Delete(ctx, name)
}

func (s *Store) ListProfiles(_ context.Context) ([]string, error) {
	return s.config.Get().ProfileNames(), nil
}

func (s *Store) DefaultProfile(_ context.Context) string {
	return s.config.Get().DefaultProfile
}
