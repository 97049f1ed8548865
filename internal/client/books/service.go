package books

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	httpClient "github.com/iudanet/bookkeeper/internal/client/api"
	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/client/sync"
	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/validation"
)

//go:generate moq -out service_mock.go . Service

// Service операции над книгами, затрагивающие оба хранилища.
// Сначала изменяется локальный кэш, затем сервер; компенсации нет.
type Service interface {
	// List выполняет проход сверки и возвращает объединенный список
	List(ctx context.Context) ([]models.Book, error)

	// Get ищет книгу по id в объединенном списке
	Get(ctx context.Context, id int64) (*models.Book, error)

	// Create добавляет книгу локально и на сервере
	Create(ctx context.Context, form validation.BookForm) (*models.Book, error)

	// Update заменяет книгу локально и на сервере
	Update(ctx context.Context, id int64, form validation.BookForm) (*models.Book, error)

	// Delete удаляет книгу локально, затем на сервере
	Delete(ctx context.Context, id int64) error
}

type service struct {
	apiClient  httpClient.BookAPI
	cache      storage.BookCache
	reconciler sync.Service
	logger     *slog.Logger
}

// NewService creates a new books service
func NewService(apiClient httpClient.BookAPI, cache storage.BookCache, reconciler sync.Service, logger *slog.Logger) Service {
	return &service{
		apiClient:  apiClient,
		cache:      cache,
		reconciler: reconciler,
		logger:     logger,
	}
}

// List runs one reconciliation pass and returns merged books
func (s *service) List(ctx context.Context) ([]models.Book, error) {
	result, err := s.reconciler.Sync(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile books: %w", err)
	}
	return result.Books, nil
}

// Get returns a book from the merged view
func (s *service) Get(ctx context.Context, id int64) (*models.Book, error) {
	books, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range books {
		if b.ID == id {
			return &b, nil
		}
	}

	return nil, fmt.Errorf("book %d: %w", id, storage.ErrBookNotFound)
}

// Create validates the form and writes the book to both stores.
// Локальный id отправляется на сервер; если сервер назначил другой,
// локальная строка получает id сервера.
func (s *service) Create(ctx context.Context, form validation.BookForm) (*models.Book, error) {
	book, err := validation.ParseBookForm(form)
	if err != nil {
		return nil, err
	}

	// Проверяем title локально
	if _, err := s.cache.FindBookByTitle(ctx, book.Title); err == nil {
		return nil, fmt.Errorf("%q in local cache: %w", book.Title, ErrDuplicateTitle)
	} else if !errors.Is(err, storage.ErrBookNotFound) {
		return nil, fmt.Errorf("failed to check local cache: %w", err)
	}

	// Проверяем title на сервере
	if existing := s.apiClient.FindBookByTitle(ctx, book.Title); existing != nil {
		return nil, fmt.Errorf("%q on server: %w", book.Title, ErrDuplicateTitle)
	}

	res, err := s.cache.InsertBook(ctx, &book)
	if err != nil {
		return nil, err
	}
	book.ID = res.ID

	created, err := s.apiClient.CreateBook(ctx, book)
	if isConflict(err) {
		// id занят на сервере: пусть сервер назначит свой
		s.logger.Info("Local id is taken on server, retrying without id", "title", book.Title, "local_id", book.ID)
		retry := book
		retry.ID = 0
		created, err = s.apiClient.CreateBook(ctx, retry)
	}
	if err != nil {
		return nil, err
	}

	if created.ID != 0 && created.ID != book.ID {
		if err := s.cache.ReassignID(ctx, book.Title, created.ID); err != nil {
			return nil, fmt.Errorf("book created on server with id %d: %w", created.ID, err)
		}
	}

	s.logger.Info("Book created", "title", created.Title, "id", created.ID)
	return created, nil
}

// Update validates the form and replaces the book in both stores
func (s *service) Update(ctx context.Context, id int64, form validation.BookForm) (*models.Book, error) {
	book, err := validation.ParseBookForm(form)
	if err != nil {
		return nil, err
	}
	book.ID = id

	if err := s.cache.UpdateBook(ctx, &book); err != nil {
		return nil, err
	}

	updated, err := s.apiClient.UpdateBook(ctx, book)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Book updated", "title", updated.Title, "id", updated.ID)
	return updated, nil
}

// Delete removes the book locally, then on server.
// Ошибка сервера возвращается, локальное удаление при этом сохраняется.
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.cache.DeleteBook(ctx, id); err != nil {
		return err
	}

	if err := s.apiClient.DeleteBook(ctx, id); err != nil {
		s.logger.Warn("Book deleted locally but not on server", "id", id, "error", err)
		return err
	}

	s.logger.Info("Book deleted", "id", id)
	return nil
}

func isConflict(err error) bool {
	var statusErr *httpClient.StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusConflict
}
