package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/infrastructure/events"
	"github.com/bnema/dumbterm/internal/ui/coordinator"
)

// eventBuffer is large enough for the per-leaf visual state events of a
// big layout.
const eventBuffer = 4096

// Preview is a layout built into a headless window.
type Preview struct {
	Name   string
	Window *coordinator.WindowCoordinator
	Report usecase.DecodeReport
	Events events.Summary
}

// PreviewLayout builds the named stored layout. An empty name uses the
// configured default layout.
func (a *App) PreviewLayout(ctx context.Context, name string) (*Preview, error) {
	if name == "" {
		name = a.Config().Layout.DefaultLayout
	}
	return a.preview(ctx, name, func(w *coordinator.WindowCoordinator) (*usecase.DecodeReport, error) {
		return w.LoadLayout(ctx, name)
	})
}

// PreviewDescription builds desc without storing it.
func (a *App) PreviewDescription(ctx context.Context, desc *entity.LayoutDescription) (*Preview, error) {
	return a.preview(ctx, desc.Name, func(w *coordinator.WindowCoordinator) (*usecase.DecodeReport, error) {
		result, err := a.LayoutsUC.Decode(ctx, desc)
		if err != nil {
			return nil, err
		}
		if err := w.ApplyLayout(ctx, result); err != nil {
			return nil, err
		}
		return &result.Report, nil
	})
}

func (a *App) preview(
	ctx context.Context,
	name string,
	build func(*coordinator.WindowCoordinator) (*usecase.DecodeReport, error),
) (*Preview, error) {
	bus := events.NewBus()
	ch, unsubscribe := bus.Subscribe(eventBuffer)

	w, err := a.NewWindow(a.HeadlessSessions(), bus)
	if err != nil {
		unsubscribe()
		return nil, err
	}

	report, err := build(w)
	unsubscribe()
	summary := events.Collect(ch)
	if err != nil {
		_ = w.Shutdown(ctx)
		if errors.Is(err, usecase.ErrEmptyLayout) {
			return nil, fmt.Errorf("layout %q: %w", name, err)
		}
		return nil, err
	}

	p := &Preview{Name: name, Window: w, Events: summary}
	if report != nil {
		p.Report = *report
	}
	return p, nil
}

// Render draws the preview tree followed by any substitutions.
func (p *Preview) Render(theme *styles.Theme) string {
	w := p.Window
	out := theme.Title.Render(p.Name)
	if title := w.Title(); title != "" {
		out += " " + theme.Subtle.Render(title)
	}
	out += "\n" + theme.RenderTree(w.Root(), styles.TreeOptions{
		Focused: w.Focused(),
		Zoomed:  w.Zoom().LeafID,
		Groups:  w.Groups(),
		States:  visualStates(w),
	})
	if warn := theme.RenderWarnings("substitutions", p.Report.Strings()); warn != "" {
		out += "\n\n" + warn
	}
	return out
}

func visualStates(w *coordinator.WindowCoordinator) map[entity.LeafID]entity.VisualState {
	states := make(map[entity.LeafID]entity.VisualState)
	for _, s := range w.VisualStates() {
		states[s.LeafID] = s.State
	}
	return states
}
