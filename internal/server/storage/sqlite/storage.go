package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/iudanet/bookkeeper/internal/server/storage"
	"github.com/iudanet/bookkeeper/internal/sqldb"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Storage represents SQLite storage implementation
type Storage struct {
	db *sql.DB
}

var _ storage.BookStorage = (*Storage)(nil)

// New открывает серверную базу SQLite и применяет миграции таблицы books.
// Use ":memory:" for in-memory database (useful for testing).
// Одно соединение: проверка id и вставка в CreateBook не гоняются.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sqldb.OpenSQLite(ctx, dbPath, embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open book storage: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ping checks the database connection
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DB returns the underlying database connection for testing purposes
func (s *Storage) DB() *sql.DB {
	return s.db
}
