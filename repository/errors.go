package repository

import "errors"

// Sentinel errors the controllers translate into envelope failures.
var (
	// ErrNotFound is returned when a user or item does not exist, or a
	// delete matched zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)
