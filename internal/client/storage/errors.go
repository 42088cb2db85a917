package storage

import "errors"

// Common client storage errors
var (
	// ErrEntryNotFound запись истории не найдена
	ErrEntryNotFound = errors.New("history entry not found")

	// ErrStorageClosed хранилище уже закрыто
	ErrStorageClosed = errors.New("storage is closed")
)
