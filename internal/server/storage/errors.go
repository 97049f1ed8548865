package storage

import "errors"

// Common storage errors
var (
	// ErrBookNotFound indicates that book with this id was not found
	ErrBookNotFound = errors.New("book not found")

	// ErrBookExists indicates that book with this id already exists
	ErrBookExists = errors.New("book already exists")

	// ErrUserNotFound indicates that user was not found in the directory
	ErrUserNotFound = errors.New("user not found")
)
