package cli

import (
	"context"
	"fmt"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/infrastructure/events"
	"github.com/bnema/dumbterm/internal/logging"
	"github.com/bnema/dumbterm/internal/ui/coordinator"
)

// ScaffoldOptions describe a generated layout.
type ScaffoldOptions struct {
	Columns int
	Rows    int
	Tabs    int
	Profile string
	Title   string
}

// Scaffold builds a window of Tabs tabs, each holding a Columns x Rows
// grid, and stores it as name.
func (a *App) Scaffold(ctx context.Context, name string, opts ScaffoldOptions) error {
	if opts.Columns < 1 || opts.Rows < 1 || opts.Tabs < 1 {
		return fmt.Errorf("columns, rows and tabs must be at least 1")
	}
	ctx = logging.WithLayout(ctx, name)

	settings := a.Settings()
	if opts.Profile != "" {
		settings.DefaultProfile = opts.Profile
	}
	w, err := coordinator.NewWindowCoordinator(ctx, coordinator.WindowCoordinatorConfig{
		Sessions:  a.HeadlessSessions(),
		Publisher: events.NewBus(),
		Layouts:   a.LayoutsUC,
		Settings:  settings,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer func() { _ = w.Shutdown(ctx) }()

	if err := w.Start(ctx); err != nil {
		return err
	}
	for tab := range opts.Tabs {
		if tab > 0 {
			if err := w.OpenTab(ctx, ""); err != nil {
				return fmt.Errorf("open tab %d: %w", tab+1, err)
			}
		}
		if err := fillGrid(ctx, w, opts.Columns, opts.Rows); err != nil {
			return fmt.Errorf("tab %d: %w", tab+1, err)
		}
	}
	if opts.Title != "" {
		w.SetWindowTitle(ctx, opts.Title)
	}

	logging.FromContext(ctx).Info().
		Int("columns", opts.Columns).
		Int("rows", opts.Rows).
		Int("tabs", opts.Tabs).
		Msg("layout scaffolded")
	return w.SaveLayout(ctx, name)
}

// fillGrid splits the focused leaf into columns, then each column into rows.
// Focus follows the newest leaf.
func fillGrid(ctx context.Context, w *coordinator.WindowCoordinator, columns, rows int) error {
	cols := []entity.LeafID{w.Focused()}
	for range columns - 1 {
		if err := w.Split(ctx, entity.OrientationHorizontal); err != nil {
			return err
		}
		cols = append(cols, w.Focused())
	}
	for _, col := range cols {
		if err := w.Focus(ctx, col); err != nil {
			return err
		}
		for range rows - 1 {
			if err := w.Split(ctx, entity.OrientationVertical); err != nil {
				return err
			}
		}
	}
	return nil
}
