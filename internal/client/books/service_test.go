package books

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/bookkeeper/internal/client/api"
	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/client/storage/sqlite"
	"github.com/iudanet/bookkeeper/internal/client/sync"
	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/validation"
)

var duneForm = validation.BookForm{
	Title:       "Dune",
	Description: "sand",
	Price:       "9.5",
	Image:       "dune.png",
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCache(t *testing.T) *sqlite.Storage {
	t.Helper()

	cache, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache
}

// echoAPI сервер без книг, который сохраняет присланный id
func echoAPI() *httpClient.BookAPIMock {
	return &httpClient.BookAPIMock{
		FindBookByTitleFunc: func(ctx context.Context, title string) *models.Book {
			return nil
		},
		CreateBookFunc: func(ctx context.Context, book models.Book) (*models.Book, error) {
			return &book, nil
		},
		UpdateBookFunc: func(ctx context.Context, book models.Book) (*models.Book, error) {
			return &book, nil
		},
		DeleteBookFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}
}

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	apiMock := echoAPI()

	svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

	created, err := svc.Create(ctx, duneForm)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 9.5, created.Price)

	// На сервер отправлен локальный id
	require.Len(t, apiMock.CreateBookCalls(), 1)
	assert.Equal(t, int64(1), apiMock.CreateBookCalls()[0].Book.ID)

	local, err := cache.FindBookByTitle(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, int64(1), local.ID)
}

func TestCreate_BackPatchesServerID(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	apiMock := echoAPI()
	apiMock.CreateBookFunc = func(ctx context.Context, book models.Book) (*models.Book, error) {
		book.ID = 77
		return &book, nil
	}

	svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

	created, err := svc.Create(ctx, duneForm)
	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)

	local, err := cache.FindBookByTitle(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, int64(77), local.ID)
}

func TestCreate_ConflictRetriesWithoutID(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	apiMock := echoAPI()
	apiMock.CreateBookFunc = func(ctx context.Context, book models.Book) (*models.Book, error) {
		if book.ID != 0 {
			return nil, models.NewKindError(models.KindRemoteWrite, "create book",
				&httpClient.StatusError{StatusCode: http.StatusConflict, Message: "book id already exists"})
		}
		book.ID = 12
		return &book, nil
	}

	svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

	created, err := svc.Create(ctx, duneForm)
	require.NoError(t, err)
	assert.Equal(t, int64(12), created.ID)
	assert.Len(t, apiMock.CreateBookCalls(), 2)

	local, err := cache.FindBookByTitle(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, int64(12), local.ID)
}

func TestCreate_ValidationError(t *testing.T) {
	cache := &storage.BookCacheMock{}
	apiMock := &httpClient.BookAPIMock{}

	svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

	_, err := svc.Create(context.Background(), validation.BookForm{Title: "Dune", Price: "abc"})
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrInvalidInput)

	// Ни одно хранилище не затронуто
	assert.Empty(t, cache.FindBookByTitleCalls())
	assert.Empty(t, apiMock.CreateBookCalls())
}

func TestCreate_DuplicateLocal(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	_, err := cache.InsertBook(ctx, &models.Book{Title: "Dune", Description: "d", Price: 1, Image: "i"})
	require.NoError(t, err)

	apiMock := echoAPI()
	svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

	_, err = svc.Create(ctx, duneForm)
	assert.ErrorIs(t, err, ErrDuplicateTitle)
	assert.Empty(t, apiMock.FindBookByTitleCalls())
	assert.Empty(t, apiMock.CreateBookCalls())
}

func TestCreate_DuplicateRemote(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	apiMock := echoAPI()
	apiMock.FindBookByTitleFunc = func(ctx context.Context, title string) *models.Book {
		return &models.Book{ID: 3, Title: title}
	}

	svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

	_, err := svc.Create(ctx, duneForm)
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	books, err := cache.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestCreate_LocalLookupError(t *testing.T) {
	cache := &storage.BookCacheMock{
		FindBookByTitleFunc: func(ctx context.Context, title string) (*models.Book, error) {
			return nil, errors.New("disk error")
		},
	}

	svc := NewService(echoAPI(), cache, &sync.ServiceMock{}, newTestLogger())

	_, err := svc.Create(context.Background(), duneForm)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateTitle)
}

func TestCreate_RemoteFailureKeepsLocal(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	apiMock := echoAPI()
	apiMock.CreateBookFunc = func(ctx context.Context, book models.Book) (*models.Book, error) {
		return nil, models.NewKindError(models.KindRemoteWrite, "create book", errors.New("500"))
	}

	svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

	_, err := svc.Create(ctx, duneForm)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindRemoteWrite))

	// Компенсации нет: строка осталась в кэше
	_, err = cache.FindBookByTitle(ctx, "Dune")
	assert.NoError(t, err)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	res, err := cache.InsertBook(ctx, &models.Book{Title: "Dune", Description: "old", Price: 1, Image: "i"})
	require.NoError(t, err)

	apiMock := echoAPI()
	svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

	updated, err := svc.Update(ctx, res.ID, duneForm)
	require.NoError(t, err)
	assert.Equal(t, res.ID, updated.ID)

	local, err := cache.FindBookByTitle(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, "sand", local.Description)
	assert.Equal(t, 9.5, local.Price)

	require.Len(t, apiMock.UpdateBookCalls(), 1)
	assert.Equal(t, res.ID, apiMock.UpdateBookCalls()[0].Book.ID)
}

func TestUpdate_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		cache := &storage.BookCacheMock{}
		svc := NewService(echoAPI(), cache, &sync.ServiceMock{}, newTestLogger())

		_, err := svc.Update(ctx, 1, validation.BookForm{})
		assert.ErrorIs(t, err, validation.ErrInvalidInput)
		assert.Empty(t, cache.UpdateBookCalls())
	})

	t.Run("local write", func(t *testing.T) {
		cache := &storage.BookCacheMock{
			UpdateBookFunc: func(ctx context.Context, book *models.Book) error {
				return models.NewKindError(models.KindStorageWrite, "failed to update book", errors.New("locked"))
			},
		}
		apiMock := echoAPI()
		svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

		_, err := svc.Update(ctx, 1, duneForm)
		assert.True(t, models.IsKind(err, models.KindStorageWrite))
		assert.Empty(t, apiMock.UpdateBookCalls())
	})

	t.Run("remote write", func(t *testing.T) {
		cache := &storage.BookCacheMock{
			UpdateBookFunc: func(ctx context.Context, book *models.Book) error {
				return nil
			},
		}
		apiMock := echoAPI()
		apiMock.UpdateBookFunc = func(ctx context.Context, book models.Book) (*models.Book, error) {
			return nil, models.NewKindError(models.KindRemoteWrite, "update book", errors.New("404"))
		}
		svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

		_, err := svc.Update(ctx, 1, duneForm)
		assert.True(t, models.IsKind(err, models.KindRemoteWrite))
		assert.Len(t, cache.UpdateBookCalls(), 1)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	res, err := cache.InsertBook(ctx, &models.Book{Title: "Dune", Description: "d", Price: 1, Image: "i"})
	require.NoError(t, err)

	apiMock := echoAPI()
	svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

	require.NoError(t, svc.Delete(ctx, res.ID))

	books, err := cache.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
	require.Len(t, apiMock.DeleteBookCalls(), 1)
	assert.Equal(t, res.ID, apiMock.DeleteBookCalls()[0].Id)
}

func TestDelete_RemoteFailureKeepsLocalDeletion(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	res, err := cache.InsertBook(ctx, &models.Book{Title: "Dune", Description: "d", Price: 1, Image: "i"})
	require.NoError(t, err)

	apiMock := echoAPI()
	apiMock.DeleteBookFunc = func(ctx context.Context, id int64) error {
		return models.NewKindError(models.KindRemoteWrite, "delete book", errors.New("status 500"))
	}
	svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

	err = svc.Delete(ctx, res.ID)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindRemoteWrite))

	books, err := cache.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestDelete_LocalFailureSkipsRemote(t *testing.T) {
	cache := &storage.BookCacheMock{
		DeleteBookFunc: func(ctx context.Context, id int64) error {
			return models.NewKindError(models.KindStorageInit, "book cache", storage.ErrStorageClosed)
		},
	}
	apiMock := echoAPI()
	svc := NewService(apiMock, cache, &sync.ServiceMock{}, newTestLogger())

	err := svc.Delete(context.Background(), 1)
	assert.True(t, models.IsKind(err, models.KindStorageInit))
	assert.Empty(t, apiMock.DeleteBookCalls())
}

func TestListAndGet(t *testing.T) {
	ctx := context.Background()
	reconciler := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context) (*sync.Result, error) {
			return &sync.Result{Books: []models.Book{
				{ID: 7, Title: "Dune"},
				{ID: 9, Title: "Emma"},
			}}, nil
		},
	}

	svc := NewService(echoAPI(), &storage.BookCacheMock{}, reconciler, newTestLogger())

	books, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 2)

	got, err := svc.Get(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Emma", got.Title)

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrBookNotFound)

	assert.Len(t, reconciler.SyncCalls(), 3)
}

func TestList_Error(t *testing.T) {
	reconciler := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context) (*sync.Result, error) {
			return nil, sync.ErrPassInProgress
		},
	}

	svc := NewService(echoAPI(), &storage.BookCacheMock{}, reconciler, newTestLogger())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, sync.ErrPassInProgress)
}
