package coordinator

import (
	"context"
	"fmt"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
	"golang.org/x/sync/errgroup"
)

// SendInput writes data to every session the send mode targets from the
// focused leaf. Writes run concurrently; the first error is returned after
// all of them finished.
func (c *WindowCoordinator) SendInput(ctx context.Context, data []byte) (int, error) {
	type target struct {
		id     entity.LeafID
		handle port.SessionHandle
	}

	c.mu.Lock()
	if c.window.Root == nil || c.window.Focused == "" {
		c.mu.Unlock()
		return 0, fmt.Errorf("no focused leaf")
	}
	ids := c.groups.ResolveSendTargets(c.window.Root, c.window.Focused)
	targets := make([]target, 0, len(ids))
	for _, id := range ids {
		if s, ok := c.sessions[id]; ok {
			targets = append(targets, target{id: id, handle: s.handle})
		}
	}
	c.mu.Unlock()

	logging.FromContext(ctx).Trace().
		Int("bytes", len(data)).
		Int("targets", len(targets)).
		Msg("sending input")

	var g errgroup.Group
	for _, t := range targets {
		g.Go(func() error {
			if _, err := t.handle.Write(data); err != nil {
				return fmt.Errorf("write to %s: %w", t.id, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return len(targets), err
	}
	return len(targets), nil
}
