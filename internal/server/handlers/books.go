package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/server/storage"
	"github.com/iudanet/bookkeeper/pkg/api"
)

// maxBodySize ограничение тела запроса с книгой
const maxBodySize = 1 << 20

// BooksHandler обрабатывает запросы к /books
type BooksHandler struct {
	logger  *slog.Logger
	storage storage.BookStorage
}

// NewBooksHandler создает новый handler для книг
func NewBooksHandler(logger *slog.Logger, bookStorage storage.BookStorage) *BooksHandler {
	return &BooksHandler{
		logger:  logger,
		storage: bookStorage,
	}
}

// List обрабатывает GET /books[?title=]
func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	title := r.URL.Query().Get("title")

	books, err := h.storage.ListBooks(ctx, title)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list books", slog.Any("error", err))
		SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.Book, 0, len(books))
	for _, b := range books {
		resp = append(resp, api.BookFromModel(b))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /books/{id}
func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	book, err := h.storage.GetBook(ctx, id)
	if err != nil {
		h.storageError(w, r, "get", id, err)
		return
	}

	sendJSON(h.logger, w, api.BookFromModel(*book), http.StatusOK)
}

// Create обрабатывает POST /books.
// id из тела используется, если задан; иначе его назначает хранилище.
func (h *BooksHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	book, ok := h.decodeBook(w, r)
	if !ok {
		return
	}
	if book.ID < 0 {
		SendError(h.logger, w, "id must be positive", http.StatusBadRequest)
		return
	}

	created, err := h.storage.CreateBook(ctx, book)
	if errors.Is(err, storage.ErrBookExists) {
		h.logger.WarnContext(ctx, "book id already taken", slog.Int64("id", book.ID))
		SendError(h.logger, w, "book with this id already exists", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create book", slog.Any("error", err))
		SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "book created",
		slog.Int64("id", created.ID),
		slog.String("title", created.Title))

	sendJSON(h.logger, w, api.BookFromModel(*created), http.StatusCreated)
}

// Update обрабатывает PUT /books/{id}. id берется из пути.
func (h *BooksHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	book, ok := h.decodeBook(w, r)
	if !ok {
		return
	}
	book.ID = id

	updated, err := h.storage.UpdateBook(ctx, book)
	if err != nil {
		h.storageError(w, r, "update", id, err)
		return
	}

	h.logger.InfoContext(ctx, "book updated", slog.Int64("id", id))
	sendJSON(h.logger, w, api.BookFromModel(*updated), http.StatusOK)
}

// Delete обрабатывает DELETE /books/{id} и возвращает удаленную запись
func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.storage.DeleteBook(ctx, id)
	if err != nil {
		h.storageError(w, r, "delete", id, err)
		return
	}

	h.logger.InfoContext(ctx, "book deleted", slog.Int64("id", id))
	sendJSON(h.logger, w, api.BookFromModel(*deleted), http.StatusOK)
}

func (h *BooksHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		SendError(h.logger, w, "invalid book id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *BooksHandler) decodeBook(w http.ResponseWriter, r *http.Request) (models.Book, bool) {
	var req api.Book
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode book", slog.Any("error", err))
		SendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return models.Book{}, false
	}

	book := req.ToModel()
	if err := book.Validate(); err != nil {
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return models.Book{}, false
	}

	return book, true
}

func (h *BooksHandler) storageError(w http.ResponseWriter, r *http.Request, op string, id int64, err error) {
	if errors.Is(err, storage.ErrBookNotFound) {
		SendError(h.logger, w, "book not found", http.StatusNotFound)
		return
	}

	h.logger.ErrorContext(r.Context(), "failed to "+op+" book",
		slog.Int64("id", id),
		slog.Any("error", err))
	SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}
