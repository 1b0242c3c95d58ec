package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the layout database connection.
// Commands that never touch stored layouts never open it.
type DatabaseProvider interface {
	// DB returns the connection, opening and migrating it on first use.
	DB(ctx context.Context) (*sql.DB, error)

	Close() error

	// IsInitialized reports whether DB has opened the connection.
	IsInitialized() bool
}
