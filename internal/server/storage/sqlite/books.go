package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/server/storage"
)

const selectBooks = `SELECT id, title, description, price, image FROM books`

// ListBooks returns books ordered by id, optionally filtered by exact title
func (s *Storage) ListBooks(ctx context.Context, title string) ([]models.Book, error) {
	query := selectBooks + ` ORDER BY id`
	args := []any{}
	if title != "" {
		query = selectBooks + ` WHERE title = ? ORDER BY id`
		args = append(args, title)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Price, &b.Image); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

// GetBook retrieves book by id
func (s *Storage) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	return getBook(ctx, s.db, id)
}

// CreateBook inserts a book. Занятый id возвращает ErrBookExists.
func (s *Storage) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var res sql.Result
	if book.ID > 0 {
		if _, err := getBook(ctx, tx, book.ID); err == nil {
			return nil, storage.ErrBookExists
		} else if !errors.Is(err, storage.ErrBookNotFound) {
			return nil, err
		}

		res, err = tx.ExecContext(ctx, `
			INSERT INTO books (id, title, description, price, image)
			VALUES (?, ?, ?, ?, ?)
		`, book.ID, book.Title, book.Description, book.Price, book.Image)
	} else {
		res, err = tx.ExecContext(ctx, `
			INSERT INTO books (title, description, price, image)
			VALUES (?, ?, ?, ?)
		`, book.Title, book.Description, book.Price, book.Image)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	book.ID = id
	return &book, nil
}

// UpdateBook replaces all fields of the book with book.ID
func (s *Storage) UpdateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE books
		SET title = ?, description = ?, price = ?, image = ?
		WHERE id = ?
	`, book.Title, book.Description, book.Price, book.Image, book.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return nil, storage.ErrBookNotFound
	}

	return &book, nil
}

// DeleteBook removes the book and returns the removed record
func (s *Storage) DeleteBook(ctx context.Context, id int64) (*models.Book, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	book, err := getBook(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return book, nil
}

// queryRower *sql.DB или *sql.Tx
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getBook(ctx context.Context, q queryRower, id int64) (*models.Book, error) {
	var b models.Book
	err := q.QueryRowContext(ctx, selectBooks+` WHERE id = ?`, id).
		Scan(&b.ID, &b.Title, &b.Description, &b.Price, &b.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &b, nil
}
