package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookkeeper/internal/models"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestNew_CreatesTable(t *testing.T) {
	s := setupTestStorage(t)

	var name string
	err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'book'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "book", name)
}

func TestNew_Idempotent(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	_, err = s.InsertBook(ctx, &models.Book{Title: "Dune", Description: "sand", Price: 9.5, Image: "dune.png"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Повторная инициализация не пересоздает таблицу
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer s.Close()

	books, err := s.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestNew_InvalidPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing", "dir", "cache.db")

	s, err := New(context.Background(), dbPath)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.True(t, models.IsKind(err, models.KindStorageInit))
}

func TestClose_ThenUse(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	require.NoError(t, s.Close())
	// Повторный Close безопасен
	require.NoError(t, s.Close())

	_, err = s.InsertBook(ctx, &models.Book{Title: "a", Description: "b", Price: 1, Image: "c"})
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindStorageInit))

	_, err = s.ListBooks(ctx)
	assert.True(t, models.IsKind(err, models.KindStorageInit))

	err = s.DeleteBook(ctx, 1)
	assert.True(t, models.IsKind(err, models.KindStorageInit))
}
