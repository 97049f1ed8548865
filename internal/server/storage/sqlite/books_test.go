package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/server/storage"
)

func testBook(title string) models.Book {
	return models.Book{
		Title:       title,
		Description: "About " + title,
		Price:       10.5,
		Image:       "http://img/" + title,
	}
}

func TestCreateBook_AssignsID(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	first, err := s.CreateBook(ctx, testBook("Dune"))
	require.NoError(t, err)
	second, err := s.CreateBook(ctx, testBook("Emma"))
	require.NoError(t, err)

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	got, err := s.GetBook(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, *second, *got)
}

func TestCreateBook_ClientID(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	book := testBook("Dune")
	book.ID = 42

	created, err := s.CreateBook(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)

	_, err = s.CreateBook(ctx, book)
	assert.ErrorIs(t, err, storage.ErrBookExists)

	// следующий автоматический id больше занятого
	next, err := s.CreateBook(ctx, testBook("Emma"))
	require.NoError(t, err)
	assert.Greater(t, next.ID, int64(42))
}

func TestListBooks_TitleFilter(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	for _, title := range []string{"Dune", "Emma", "Dune"} {
		_, err := s.CreateBook(ctx, testBook(title))
		require.NoError(t, err)
	}

	all, err := s.ListBooks(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Less(t, all[0].ID, all[1].ID)

	dunes, err := s.ListBooks(ctx, "Dune")
	require.NoError(t, err)
	assert.Len(t, dunes, 2)

	none, err := s.ListBooks(ctx, "dune")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateBook(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateBook(ctx, testBook("Dune"))
	require.NoError(t, err)

	changed := *created
	changed.Price = 0
	changed.Description = "New"

	updated, err := s.UpdateBook(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, changed, *updated)

	got, err := s.GetBook(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Price)
	assert.Equal(t, "New", got.Description)

	changed.ID = 999
	_, err = s.UpdateBook(ctx, changed)
	assert.ErrorIs(t, err, storage.ErrBookNotFound)
}

func TestDeleteBook(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateBook(ctx, testBook("Dune"))
	require.NoError(t, err)

	deleted, err := s.DeleteBook(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *deleted)

	_, err = s.GetBook(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrBookNotFound)

	_, err = s.DeleteBook(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrBookNotFound)
}
