package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/server/storage"
)

const selectBooks = `SELECT id, title, description, price, image FROM books`

// ListBooks returns books ordered by id, optionally filtered by exact title
func (s *Storage) ListBooks(ctx context.Context, title string) ([]models.Book, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := selectBooks + ` ORDER BY id`
	args := []any{}
	if title != "" {
		query = selectBooks + ` WHERE title = $1 ORDER BY id`
		args = append(args, title)
	}

	rows, err := s.pool.Query(ctx, query, args...)
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
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return scanBook(s.pool.QueryRow(ctx, selectBooks+` WHERE id = $1`, id))
}

// CreateBook inserts a book. Занятый id возвращает ErrBookExists.
// После вставки с явным id последовательность сдвигается за максимум.
func (s *Storage) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if book.ID <= 0 {
		err := s.pool.QueryRow(ctx, `
			INSERT INTO books (title, description, price, image)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, book.Title, book.Description, book.Price, book.Image).Scan(&book.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert book: %w", err)
		}
		return &book, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO books (id, title, description, price, image)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`, book.ID, book.Title, book.Description, book.Price, book.Image).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrBookExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		SELECT setval(pg_get_serial_sequence('books', 'id'), (SELECT MAX(id) FROM books))
	`); err != nil {
		return nil, fmt.Errorf("failed to advance id sequence: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &book, nil
}

// UpdateBook replaces all fields of the book with book.ID
func (s *Storage) UpdateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `
		UPDATE books
		SET title = $1, description = $2, price = $3, image = $4
		WHERE id = $5
	`, book.Title, book.Description, book.Price, book.Image, book.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, storage.ErrBookNotFound
	}

	return &book, nil
}

// DeleteBook removes the book and returns the removed record
func (s *Storage) DeleteBook(ctx context.Context, id int64) (*models.Book, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return scanBook(s.pool.QueryRow(ctx, `
		DELETE FROM books
		WHERE id = $1
		RETURNING id, title, description, price, image
	`, id))
}

func scanBook(row pgx.Row) (*models.Book, error) {
	var b models.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Description, &b.Price, &b.Image); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to scan book: %w", err)
	}
	return &b, nil
}
