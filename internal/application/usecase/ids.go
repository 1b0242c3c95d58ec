package usecase

import "github.com/google/uuid"

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// NewUUIDGenerator returns the generator used for leaf ids outside of tests.
func NewUUIDGenerator() IDGenerator {
	return uuid.NewString
}
