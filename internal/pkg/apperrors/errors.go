package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotFound means zero rows matched a lookup by identifier.
	ErrNotFound = errors.New("resource not found")
)

// NotFoundError carries the name of the resource that was looked up so
// transports can render "<Resource> not found" messages.
type NotFoundError struct {
	Resource string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is makes errors.Is(err, ErrNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFound creates a NotFoundError for the given resource name.
func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ResourceName extracts the resource name from a NotFoundError chain,
// falling back to the given default.
func ResourceName(err error, fallback string) string {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Resource
	}
	return fallback
}
