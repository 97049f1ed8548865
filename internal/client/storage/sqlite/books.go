package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
)

// ListBooks returns all rows of the book table ordered by id
func (s *Storage) ListBooks(ctx context.Context) ([]models.Book, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, price, image
		FROM book
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

// FindBookByTitle returns the first row with exactly this title
func (s *Storage) FindBookByTitle(ctx context.Context, title string) (*models.Book, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, price, image
		FROM book
		WHERE title = ?
		ORDER BY id
		LIMIT 1
	`, title)

	book, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	return book, nil
}

// InsertBook validates the book and inserts a new row.
// book.ID is ignored: auto-increment assigns the local id.
func (s *Storage) InsertBook(ctx context.Context, book *models.Book) (*storage.WriteResult, error) {
	// Проверяем обязательные поля до обращения к БД
	if err := book.Validate(); err != nil {
		return nil, err
	}

	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO book (title, description, price, image)
		VALUES (?, ?, ?, ?)
	`, book.Title, book.Description, book.Price, book.Image)
	if err != nil {
		return nil, models.NewKindError(models.KindStorageWrite, "failed to insert book", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, models.NewKindError(models.KindStorageWrite, "failed to get inserted id", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, models.NewKindError(models.KindStorageWrite, "failed to get rows affected", err)
	}

	return &storage.WriteResult{ID: id, RowsAffected: affected}, nil
}

// UpdateBook replaces all fields of the row with book.ID.
// Отсутствие строки не ошибка: обновляется ноль строк.
func (s *Storage) UpdateBook(ctx context.Context, book *models.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	_, err = s.db.ExecContext(ctx, `
		UPDATE book
		SET title = ?, description = ?, price = ?, image = ?
		WHERE id = ?
	`, book.Title, book.Description, book.Price, book.Image, book.ID)
	if err != nil {
		return models.NewKindError(models.KindStorageWrite, "failed to update book", err)
	}

	return nil
}

// DeleteBook removes the row with the given id
func (s *Storage) DeleteBook(ctx context.Context, id int64) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM book WHERE id = ?`, id); err != nil {
		return models.NewKindError(models.KindStorageWrite, "failed to delete book", err)
	}

	return nil
}

// ReassignID changes the id of the row carrying title to newID
func (s *Storage) ReassignID(ctx context.Context, title string, newID int64) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	res, err := s.db.ExecContext(ctx, `UPDATE book SET id = ? WHERE title = ?`, newID, title)
	if err != nil {
		return models.NewKindError(models.KindStorageWrite, "failed to reassign book id", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.NewKindError(models.KindStorageWrite, "failed to get rows affected", err)
	}
	if affected == 0 {
		return models.NewKindError(models.KindStorageWrite, "failed to reassign book id", storage.ErrBookNotFound)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanBook читает строку; NULL-колонки превращаются в нулевые значения
func scanBook(row scanner) (*models.Book, error) {
	var (
		book        models.Book
		description sql.NullString
		price       sql.NullFloat64
		image       sql.NullString
	)

	if err := row.Scan(&book.ID, &book.Title, &description, &price, &image); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan book: %w", err)
	}

	book.Description = description.String
	book.Price = price.Float64
	book.Image = image.String

	return &book, nil
}
