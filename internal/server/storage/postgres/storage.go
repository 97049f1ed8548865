package postgres

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/iudanet/bookkeeper/internal/server/storage"
	"github.com/iudanet/bookkeeper/internal/sqldb"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// DefaultQueryTimeout ограничение на один запрос к базе
const DefaultQueryTimeout = 5 * time.Second

// Storage represents PostgreSQL storage implementation
type Storage struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

var _ storage.BookStorage = (*Storage)(nil)

// New connects to PostgreSQL by dsn and applies migrations
func New(ctx context.Context, dsn string, timeout time.Duration) (*Storage, error) {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Storage{pool: pool, timeout: timeout}, nil
}

// Close closes the connection pool
func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

// Ping checks the database connection
func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.pool.Ping(ctx)
}

func (s *Storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// runMigrations goose работает через database/sql поверх того же пула
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return sqldb.Migrate(ctx, goose.DialectPostgres, db, embedMigrations, "migrations")
}
