package storage

import (
	"context"

	"github.com/iudanet/bookkeeper/internal/models"
)

//go:generate moq -out bookcache_mock.go . BookCache

// WriteResult результат вставки строки в локальный кэш
type WriteResult struct {
	ID           int64 // сгенерированный auto-increment id
	RowsAffected int64
}

// BookCache defines interface for the on-device book table.
// Все ошибки записи имеют вид models.KindStorageWrite,
// ошибки открытия и работы с закрытым хранилищем - models.KindStorageInit.
type BookCache interface {
	// ListBooks returns all rows of the book table
	ListBooks(ctx context.Context) ([]models.Book, error)

	// FindBookByTitle returns the first row with exactly this title
	// Returns ErrBookNotFound if there is none
	FindBookByTitle(ctx context.Context, title string) (*models.Book, error)

	// InsertBook validates required fields and inserts a new row.
	// book.ID is ignored, the table assigns its own id.
	InsertBook(ctx context.Context, book *models.Book) (*WriteResult, error)

	// UpdateBook replaces title, description, price and image of the row with book.ID
	UpdateBook(ctx context.Context, book *models.Book) error

	// DeleteBook removes the row with the given id
	DeleteBook(ctx context.Context, id int64) error

	// ReassignID changes the id of the row carrying title to newID.
	// Used after the server assigned its own id to a pushed book.
	ReassignID(ctx context.Context, title string, newID int64) error
}
