package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNotInitialized  = errors.New("catalog not initialized")
	ErrNotFound        = errors.New("no results returned")
	ErrInvalidSector   = errors.New("invalid sector filter")
	ErrReadOnlyCatalog = errors.New("catalog is read-only")
)

// InitializationError reports a startup data or schema problem. It aborts
// listening entirely; nothing else is allowed to.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("catalog initialization failed: %v", e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// ValidationError wraps a persistence-layer rejection, e.g. a constraint
// violation on insert or update.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
