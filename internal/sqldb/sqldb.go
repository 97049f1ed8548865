// Package sqldb открывает базы database/sql и применяет встроенные goose миграции.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

// sqlitePragmas применяются к каждому открытому файлу SQLite
var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA synchronous = NORMAL;",
	"PRAGMA busy_timeout = 5000;",
}

// OpenSQLite открывает (или создает) файл SQLite с одним соединением
// и применяет миграции из каталога dir внутри migrations.
// Use ":memory:" for in-memory database (useful for testing).
func OpenSQLite(ctx context.Context, path string, migrations fs.FS, dir string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Одно соединение: записи сериализуются, :memory: не распадается на несколько баз
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range sqlitePragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if err := Migrate(ctx, goose.DialectSQLite3, db, migrations, dir); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate применяет все новые миграции. Используется goose.Provider,
// поэтому глобальное состояние goose не затрагивается.
func Migrate(ctx context.Context, dialect goose.Dialect, db *sql.DB, migrations fs.FS, dir string) error {
	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations dir %q: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}
