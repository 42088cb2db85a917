package storage

import "errors"

// Common storage errors
var (
	// ErrEntryNotFound indicates that history entry was not found
	ErrEntryNotFound = errors.New("entry not found")
)
