package domain

import "errors"

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
	// ErrNotPersisted means the store did not acknowledge a write.
	ErrNotPersisted = errors.New("write not acknowledged")
	ErrDuplicateID  = errors.New("duplicate id")
)
