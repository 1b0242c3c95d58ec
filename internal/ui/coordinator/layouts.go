package coordinator

import (
	"context"
	"fmt"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

// SaveLayout stores the current window under name. The tree is encoded
// under the lock and written after it is released.
func (c *WindowCoordinator) SaveLayout(ctx context.Context, name string) error {
	if c.layoutsUC == nil {
		return fmt.Errorf("layout catalog is not configured")
	}
	ctx = logging.WithLayout(ctx, name)

	c.mu.Lock()
	desc, err := c.layoutsUC.Describe(name, c.window, c.groups)
	leaves := c.window.LeafCount()
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.layoutsUC.Store(ctx, desc, leaves)
}

// LoadLayout replaces the window content with a stored layout. Sessions of
// the current tree are closed once the new tree is in place.
func (c *WindowCoordinator) LoadLayout(ctx context.Context, name string) (*usecase.DecodeReport, error) {
	if c.layoutsUC == nil {
		return nil, fmt.Errorf("layout catalog is not configured")
	}
	ctx = logging.WithLayout(ctx, name)

	result, err := c.layoutsUC.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := c.ApplyLayout(ctx, result); err != nil {
		return nil, err
	}
	return &result.Report, nil
}

// ApplyLayout installs a decoded layout, spawning one session per leaf.
// Nothing changes when a spawn fails.
func (c *WindowCoordinator) ApplyLayout(ctx context.Context, result *usecase.DecodeResult) error {
	if result == nil || result.Window == nil || result.Window.Root == nil {
		return usecase.ErrEmptyLayout
	}
	log := logging.FromContext(ctx)

	return c.mutate(ctx, func(ctx context.Context, tx *mutation) error {
		for _, leaf := range entity.Leaves(result.Window.Root) {
			req := port.SpawnRequest{
				Cwd:     leaf.Directory,
				Profile: leaf.Profile,
				Command: leaf.Command,
			}
			if _, err := tx.spawn(ctx, leaf, req); err != nil {
				return fmt.Errorf("leaf %s: %w", leaf.ID, err)
			}
		}

		for id, s := range c.sessions {
			tx.closeAfter(s.handle)
			delete(c.sessions, id)
		}

		next := result.Window
		next.ID = c.window.ID
		if next.Title == "" {
			next.Title = c.window.Title
		}
		c.window = next

		groups := entity.NewGroupRegistry(c.groups.Mode())
		for id, name := range result.Groups {
			groups.SetGroup(id, name)
		}
		c.groups = groups

		tx.commit()
		log.Info().
			Int("leaves", next.LeafCount()).
			Int("substitutions", len(result.Report.Substitutions)).
			Msg("layout applied")
		return nil
	})
}
