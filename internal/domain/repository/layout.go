package repository

import (
	"context"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

// LayoutRepository persists named layout descriptions.
type LayoutRepository interface {
	// Save inserts or replaces the layout stored under desc.Name.
	Save(ctx context.Context, desc *entity.LayoutDescription) error

	// Get returns the named layout, or nil if it does not exist.
	Get(ctx context.Context, name string) (*entity.LayoutDescription, error)

	// List returns the names of every stored layout.
	List(ctx context.Context) ([]string, error)

	// Delete removes a layout. Deleting a missing layout is not an error.
	Delete(ctx context.Context, name string) error
}
