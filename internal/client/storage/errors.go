package storage

import "errors"

// Common client storage errors
var (
	// ErrKeyNotFound indicates that the key doesn't exist in local storage
	ErrKeyNotFound = errors.New("key not found")

	// ErrSessionNotFound indicates that no saved session exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
