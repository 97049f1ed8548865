package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no login session is stored
	ErrSessionNotFound = errors.New("session not found")

	// ErrBookNotFound indicates that book was not found in local cache
	ErrBookNotFound = errors.New("book not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
