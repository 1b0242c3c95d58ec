package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError through errors.Is.
var ErrNotFound = errors.New("leaf not found")

// NotFoundError reports an operation on a leaf that is no longer in the tree.
// Session notifications can race with user closes, so callers usually treat
// it as a no-op.
type NotFoundError struct {
	ID LeafID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("leaf not found: %s", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
