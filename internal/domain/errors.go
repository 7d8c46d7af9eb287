package domain

import "errors"

// Domain-specific errors. Callers wrap them with context and match with errors.Is.
var (
	// ErrTaskNotFound is returned when a task id does not exist in the store.
	ErrTaskNotFound = errors.New("task not found")

	// ErrValidation is returned for malformed input before any store mutation.
	ErrValidation = errors.New("validation error")

	// ErrStoreUnavailable wraps infrastructure failures of a store backend.
	ErrStoreUnavailable = errors.New("store unavailable")
)
