package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
)

func testBook(title string, price float64) *models.Book {
	return &models.Book{
		Title:       title,
		Description: title + " description",
		Price:       price,
		Image:       title + ".png",
	}
}

func TestInsertBook(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	res, err := s.InsertBook(ctx, testBook("Dune", 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, int64(1), res.RowsAffected)

	// ID из записи игнорируется, назначается auto-increment
	b := testBook("Emma", 5)
	b.ID = 100
	res, err = s.InsertBook(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.ID)

	books, err := s.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, models.Book{ID: 1, Title: "Dune", Description: "Dune description", Price: 10, Image: "Dune.png"}, books[0])
	assert.Equal(t, int64(2), books[1].ID)
}

func TestInsertBook_Validation(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	tests := []struct {
		book *models.Book
		name string
	}{
		{name: "nil", book: nil},
		{name: "empty title", book: &models.Book{Description: "d", Price: 1, Image: "i"}},
		{name: "empty description", book: &models.Book{Title: "t", Price: 1, Image: "i"}},
		{name: "empty image", book: &models.Book{Title: "t", Description: "d", Price: 1}},
		{name: "negative price", book: &models.Book{Title: "t", Description: "d", Price: -1, Image: "i"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.InsertBook(ctx, tt.book)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, models.IsKind(err, models.KindStorageWrite))
		})
	}

	// Ни одна строка не вставлена
	books, err := s.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestListBooks_Empty(t *testing.T) {
	s := setupTestStorage(t)

	books, err := s.ListBooks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestListBooks_NullColumns(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	// Строки, записанные в обход валидации, читаются с нулевыми значениями
	_, err := s.DB().ExecContext(ctx, `INSERT INTO book (title) VALUES ('bare')`)
	require.NoError(t, err)

	books, err := s.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "bare", books[0].Title)
	assert.Empty(t, books[0].Description)
	assert.Zero(t, books[0].Price)
}

func TestFindBookByTitle(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.InsertBook(ctx, testBook("Dune", 10))
	require.NoError(t, err)

	got, err := s.FindBookByTitle(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, 10.0, got.Price)

	_, err = s.FindBookByTitle(ctx, "dune")
	assert.ErrorIs(t, err, storage.ErrBookNotFound)
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	res, err := s.InsertBook(ctx, testBook("Dune", 10))
	require.NoError(t, err)

	upd := testBook("Dune", 12.5)
	upd.ID = res.ID
	upd.Description = "new"
	require.NoError(t, s.UpdateBook(ctx, upd))

	got, err := s.FindBookByTitle(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, 12.5, got.Price)
	assert.Equal(t, "new", got.Description)

	// Несуществующий id: ноль строк, без ошибки
	missing := testBook("Ghost", 1)
	missing.ID = 999
	require.NoError(t, s.UpdateBook(ctx, missing))

	err = s.UpdateBook(ctx, &models.Book{ID: res.ID})
	assert.True(t, models.IsKind(err, models.KindStorageWrite))
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	res, err := s.InsertBook(ctx, testBook("Dune", 10))
	require.NoError(t, err)
	_, err = s.InsertBook(ctx, testBook("Emma", 5))
	require.NoError(t, err)

	require.NoError(t, s.DeleteBook(ctx, res.ID))
	// Повторное удаление ничего не делает
	require.NoError(t, s.DeleteBook(ctx, res.ID))

	books, err := s.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Emma", books[0].Title)
}

func TestReassignID(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.InsertBook(ctx, testBook("Dune", 10))
	require.NoError(t, err)
	_, err = s.InsertBook(ctx, testBook("Emma", 5))
	require.NoError(t, err)

	require.NoError(t, s.ReassignID(ctx, "Dune", 42))

	got, err := s.FindBookByTitle(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)

	// Занятый id: ошибка записи
	err = s.ReassignID(ctx, "Emma", 42)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindStorageWrite))

	// Нет строки с таким title
	err = s.ReassignID(ctx, "Ghost", 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrBookNotFound)

	// Следующая вставка продолжает после максимального id
	res, err := s.InsertBook(ctx, testBook("Faust", 3))
	require.NoError(t, err)
	assert.Equal(t, int64(43), res.ID)
}
