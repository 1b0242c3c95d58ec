package port

import (
	"context"
	"errors"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

// ErrLayoutNotFound is returned when a named layout does not exist.
var ErrLayoutNotFound = errors.New("layout not found")

// ConfigStore gives the engine access to profiles and named layouts.
type ConfigStore interface {
	// GetLayout returns the named layout or ErrLayoutNotFound.
	GetLayout(ctx context.Context, name string) (*entity.LayoutDescription, error)
	SaveLayout(ctx context.Context, name string, desc *entity.LayoutDescription) error
	ListLayouts(ctx context.Context) ([]string, error)
	DeleteLayout(ctx context.Context, name string) error

	// ListProfiles returns every configured profile name.
	ListProfiles(ctx context.Context) ([]string, error)
	// DefaultProfile returns the profile used when none is given.
	DefaultProfile(ctx context.Context) string
}
