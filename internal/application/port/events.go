package port

import (
	"context"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

// EventPublisher delivers structural change events to the presentation layer.
// Publish is never called while the coordinator holds its lock.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.Event)
}
