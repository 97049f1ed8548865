package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"sync"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/sqldb"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Storage is the on-device book cache backed by SQLite
type Storage struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

var _ storage.BookCache = (*Storage)(nil)

// New opens (or creates) the local cache and applies migrations.
// Use ":memory:" for in-memory database (useful for testing).
// Повторный вызов на том же файле безопасен: миграции идемпотентны.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sqldb.OpenSQLite(ctx, dbPath, embedMigrations, "migrations")
	if err != nil {
		return nil, models.NewKindError(models.KindStorageInit, "failed to open book cache", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// acquire блокирует Close на время операции.
// После закрытия возвращает ошибку вида StorageInitError.
func (s *Storage) acquire() (func(), error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, models.NewKindError(models.KindStorageInit, "book cache", storage.ErrStorageClosed)
	}
	return s.mu.RUnlock, nil
}

// DB returns the underlying database connection for testing purposes
func (s *Storage) DB() *sql.DB {
	return s.db
}
