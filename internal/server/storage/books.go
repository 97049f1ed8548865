package storage

import (
	"context"

	"github.com/iudanet/bookkeeper/internal/models"
)

//go:generate moq -out books_mock.go . BookStorage

// BookStorage defines interface for server side book persistence
type BookStorage interface {
	// ListBooks returns books ordered by id
	// Non-empty title filters by exact title match
	ListBooks(ctx context.Context, title string) ([]models.Book, error)

	// GetBook retrieves book by id
	// Returns ErrBookNotFound if book doesn't exist
	GetBook(ctx context.Context, id int64) (*models.Book, error)

	// CreateBook inserts a book and returns the stored record
	// book.ID == 0 lets the storage assign an id
	// Returns ErrBookExists if book.ID is already taken
	CreateBook(ctx context.Context, book models.Book) (*models.Book, error)

	// UpdateBook replaces the book with book.ID
	// Returns ErrBookNotFound if book doesn't exist
	UpdateBook(ctx context.Context, book models.Book) (*models.Book, error)

	// DeleteBook removes the book and returns the removed record
	// Returns ErrBookNotFound if book doesn't exist
	DeleteBook(ctx context.Context, id int64) (*models.Book, error)

	// Ping checks that the storage is reachable
	Ping(ctx context.Context) error

	Close() error
}
