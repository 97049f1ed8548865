package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/server/storage"
	"github.com/iudanet/bookkeeper/pkg/api"
)

const duneJSON = `{"title":"Dune","description":"Spice","price":9.5,"image":"http://img"}`

func decodeBook(t *testing.T, w *httptest.ResponseRecorder) api.Book {
	t.Helper()
	var b api.Book
	require.NoError(t, json.NewDecoder(w.Body).Decode(&b))
	return b
}

func TestBooksHandler_List(t *testing.T) {
	store := &storage.BookStorageMock{
		ListBooksFunc: func(ctx context.Context, title string) ([]models.Book, error) {
			if title == "Dune" {
				return []models.Book{{ID: 1, Title: "Dune"}}, nil
			}
			return []models.Book{}, nil
		},
	}
	h := NewBooksHandler(setupTestLogger(), store)

	req := httptest.NewRequest(http.MethodGet, "/books?title=Dune", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var books []api.Book
	require.NoError(t, json.NewDecoder(w.Body).Decode(&books))
	require.Len(t, books, 1)
	assert.Equal(t, api.BookID(1), books[0].ID)

	req = httptest.NewRequest(http.MethodGet, "/books", nil)
	w = httptest.NewRecorder()
	h.List(w, req)
	assert.Equal(t, "[]\n", w.Body.String())

	calls := store.ListBooksCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "", calls[1].Title)
}

func TestBooksHandler_List_StorageError(t *testing.T) {
	store := &storage.BookStorageMock{
		ListBooksFunc: func(ctx context.Context, title string) ([]models.Book, error) {
			return nil, errors.New("db down")
		},
	}
	h := NewBooksHandler(setupTestLogger(), store)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/books", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBooksHandler_Get(t *testing.T) {
	store := &storage.BookStorageMock{
		GetBookFunc: func(ctx context.Context, id int64) (*models.Book, error) {
			if id == 5 {
				return &models.Book{ID: 5, Title: "Dune"}, nil
			}
			return nil, storage.ErrBookNotFound
		},
	}
	h := NewBooksHandler(setupTestLogger(), store)

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"found", "5", http.StatusOK},
		{"missing", "6", http.StatusNotFound},
		{"not a number", "abc", http.StatusBadRequest},
		{"zero", "0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/books/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			h.Get(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestBooksHandler_Create(t *testing.T) {
	store := &storage.BookStorageMock{
		CreateBookFunc: func(ctx context.Context, book models.Book) (*models.Book, error) {
			if book.ID == 7 {
				return nil, storage.ErrBookExists
			}
			if book.ID == 0 {
				book.ID = 100
			}
			return &book, nil
		},
	}
	h := NewBooksHandler(setupTestLogger(), store)

	t.Run("server assigns id", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Create(w, httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(duneJSON)))

		assert.Equal(t, http.StatusCreated, w.Code)
		b := decodeBook(t, w)
		assert.Equal(t, api.BookID(100), b.ID)
		assert.Equal(t, 9.5, b.Price)
	})

	t.Run("client id as string", func(t *testing.T) {
		body := `{"id":"12","title":"Dune","description":"Spice","price":0,"image":"http://img"}`
		w := httptest.NewRecorder()
		h.Create(w, httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, api.BookID(12), decodeBook(t, w).ID)
	})

	t.Run("id taken", func(t *testing.T) {
		body := `{"id":7,"title":"Dune","description":"Spice","price":1,"image":"http://img"}`
		w := httptest.NewRecorder()
		h.Create(w, httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body)))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Create(w, httptest.NewRequest(http.MethodPost, "/books", strings.NewReader("{")))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Create(w, httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":"Dune"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Contains(t, resp.Message, "description")
	})

	t.Run("negative price", func(t *testing.T) {
		body := `{"title":"Dune","description":"Spice","price":-1,"image":"http://img"}`
		w := httptest.NewRecorder()
		h.Create(w, httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBooksHandler_Update(t *testing.T) {
	store := &storage.BookStorageMock{
		UpdateBookFunc: func(ctx context.Context, book models.Book) (*models.Book, error) {
			if book.ID != 3 {
				return nil, storage.ErrBookNotFound
			}
			return &book, nil
		},
	}
	h := NewBooksHandler(setupTestLogger(), store)

	// id в теле игнорируется
	body := `{"id":99,"title":"Dune","description":"Spice","price":9.5,"image":"http://img"}`
	req := httptest.NewRequest(http.MethodPut, "/books/3", strings.NewReader(body))
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()
	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, api.BookID(3), decodeBook(t, w).ID)

	req = httptest.NewRequest(http.MethodPut, "/books/4", strings.NewReader(duneJSON))
	req.SetPathValue("id", "4")
	w = httptest.NewRecorder()
	h.Update(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooksHandler_Delete(t *testing.T) {
	store := &storage.BookStorageMock{
		DeleteBookFunc: func(ctx context.Context, id int64) (*models.Book, error) {
			if id != 3 {
				return nil, storage.ErrBookNotFound
			}
			return &models.Book{ID: 3, Title: "Dune"}, nil
		},
	}
	h := NewBooksHandler(setupTestLogger(), store)

	req := httptest.NewRequest(http.MethodDelete, "/books/3", nil)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()
	h.Delete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dune", decodeBook(t, w).Title)

	req = httptest.NewRequest(http.MethodDelete, "/books/4", nil)
	req.SetPathValue("id", "4")
	w = httptest.NewRecorder()
	h.Delete(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
