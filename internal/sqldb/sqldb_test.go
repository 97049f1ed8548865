package sqldb

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMigrations(sql string) fstest.MapFS {
	return fstest.MapFS{
		"migrations/00001_create_shelf.sql": &fstest.MapFile{Data: []byte(sql)},
	}
}

const shelfMigration = `-- +goose Up
CREATE TABLE shelf (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL);

-- +goose Down
DROP TABLE shelf;
`

func TestOpenSQLite_Memory(t *testing.T) {
	ctx := context.Background()

	db, err := OpenSQLite(ctx, ":memory:", testMigrations(shelfMigration), "migrations")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `INSERT INTO shelf (name) VALUES ('fiction')`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shelf`).Scan(&count))
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestOpenSQLite_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shelf.db")
	migrations := testMigrations(shelfMigration)

	db, err := OpenSQLite(ctx, path, migrations, "migrations")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO shelf (name) VALUES ('poetry')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Повторное открытие не применяет миграцию второй раз
	db, err = OpenSQLite(ctx, path, migrations, "migrations")
	require.NoError(t, err)
	defer db.Close()

	var name string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT name FROM shelf`).Scan(&name))
	assert.Equal(t, "poetry", name)
}

func TestOpenSQLite_BadMigration(t *testing.T) {
	_, err := OpenSQLite(context.Background(), ":memory:", testMigrations("-- +goose Up\nCREATE TABLE;\n"), "migrations")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goose up failed")
}

func TestOpenSQLite_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "shelf.db")

	_, err := OpenSQLite(context.Background(), path, testMigrations(shelfMigration), "migrations")
	assert.Error(t, err)
}
