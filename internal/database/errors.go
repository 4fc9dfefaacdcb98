package database

import (
	"errors"
	"fmt"
)

// Common storage errors
var (
	// ErrNotFound is returned when an item does not exist. Callers treat
	// this as a normal outcome, not necessarily a failure.
	ErrNotFound = errors.New("item not found")

	// ErrConflict is returned when a conditional write is rejected by the
	// store, e.g. a uniqueness condition on insert.
	ErrConflict = errors.New("conditional check failed")
)

// StoreError wraps a storage-layer error with the operation and table that
// produced it. Anything not classified as not-found or conflict propagates
// as an unclassified failure.
type StoreError struct {
	Op    string
	Table string
	Err   error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s on table %s failed: %v", e.Op, e.Table, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is an "item not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a rejected conditional write
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
