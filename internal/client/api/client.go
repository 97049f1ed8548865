package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/pkg/api"
)

const (
	// DefaultTimeout таймаут HTTP запроса по умолчанию
	DefaultTimeout = 30 * time.Second

	// HeaderRequestID заголовок для корреляции логов клиента и сервера
	HeaderRequestID = "X-Request-ID"

	booksPath = "/books"
	loginPath = "/auth/login"
)

//go:generate moq -out bookapi_mock.go . BookAPI

// BookAPI удаленная коллекция книг.
// Чтение работает в режиме fail-soft (ошибка логируется, возвращается пустой результат),
// запись в режиме fail-loud (ошибка вида models.KindRemoteWrite).
type BookAPI interface {
	// ListBooks возвращает все книги сервера или пустой список при ошибке
	ListBooks(ctx context.Context) []models.Book

	// FindBookByTitle возвращает первую книгу с таким title или nil
	FindBookByTitle(ctx context.Context, title string) *models.Book

	// CreateBook создает книгу. ID отправляется, только если он не нулевой.
	CreateBook(ctx context.Context, book models.Book) (*models.Book, error)

	// UpdateBook полностью заменяет книгу с book.ID
	UpdateBook(ctx context.Context, book models.Book) (*models.Book, error)

	// DeleteBook удаляет книгу. Успех только при 200 или 204.
	DeleteBook(ctx context.Context, id int64) error
}

// StatusError неуспешный HTTP ответ сервера
type StatusError struct {
	Message    string
	StatusCode int
}

// Error реализует интерфейс error
func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Config параметры HTTP клиента
type Config struct {
	BaseURL   string
	Timeout   time.Duration // 0 означает DefaultTimeout
	RateLimit float64       // запросов в секунду, 0 без ограничения
}

// Client представляет HTTP клиент для взаимодействия с сервером книг
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	baseURL    string
	token      string
	mu         sync.RWMutex
}

var _ BookAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
		limiter: rate.NewLimiter(limit, 1),
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAccessToken задает bearer токен для последующих запросов.
// Пустая строка отключает заголовок Authorization.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ListBooks получает все книги сервера.
// Записи с нечисловым id остаются в списке с ID 0, чтобы их title был известен сверке.
func (c *Client) ListBooks(ctx context.Context) []models.Book {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, booksPath, nil, &raw); err != nil {
		c.logger.Warn("Failed to list remote books", "error", err)
		return []models.Book{}
	}

	books, err := c.decodeList(raw)
	if err != nil {
		c.logger.Warn("Failed to list remote books", "error", err)
		return []models.Book{}
	}
	return books
}

// FindBookByTitle ищет книгу по точному совпадению title
func (c *Client) FindBookByTitle(ctx context.Context, title string) *models.Book {
	var raw json.RawMessage
	path := booksPath + "?title=" + url.QueryEscape(title)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &raw); err != nil {
		c.logger.Warn("Failed to find remote book", "title", title, "error", err)
		return nil
	}

	books, err := c.decodeList(raw)
	if err != nil {
		c.logger.Warn("Failed to find remote book", "title", title, "error", err)
		return nil
	}
	if len(books) == 0 {
		return nil
	}

	return &books[0]
}

// CreateBook создает книгу на сервере и возвращает сохраненную запись
func (c *Client) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodPost, booksPath, api.BookFromModel(book), &raw); err != nil {
		return nil, models.NewKindError(models.KindRemoteWrite, "create book "+strconv.Quote(book.Title), err)
	}

	created, err := c.decodeRecord(raw)
	if err != nil {
		return nil, models.NewKindError(models.KindRemoteWrite, "create book "+strconv.Quote(book.Title), err)
	}
	return created, nil
}

// UpdateBook заменяет книгу на сервере
func (c *Client) UpdateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	if book.ID == 0 {
		return nil, models.NewKindError(models.KindRemoteWrite, "update book "+strconv.Quote(book.Title), errors.New("book id is required"))
	}

	var raw json.RawMessage
	path := booksPath + "/" + strconv.FormatInt(book.ID, 10)
	if err := c.doRequest(ctx, http.MethodPut, path, api.BookFromModel(book), &raw); err != nil {
		return nil, models.NewKindError(models.KindRemoteWrite, "update book "+strconv.Quote(book.Title), err)
	}

	updated, err := c.decodeRecord(raw)
	if err != nil {
		return nil, models.NewKindError(models.KindRemoteWrite, "update book "+strconv.Quote(book.Title), err)
	}
	return updated, nil
}

// decodeList разбирает список книг; пустое тело дает пустой список
func (c *Client) decodeList(raw json.RawMessage) ([]models.Book, error) {
	if len(raw) == 0 {
		return []models.Book{}, nil
	}

	list, report, err := api.DecodeBookList(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if report.NonNumericID > 0 || report.Malformed > 0 {
		c.logger.Warn("Remote list has records without a numeric id",
			"non_numeric_id", report.NonNumericID,
			"malformed", report.Malformed)
	}

	books := make([]models.Book, 0, len(list))
	for _, b := range list {
		books = append(books, b.ToModel())
	}
	return books, nil
}

// decodeRecord разбирает одну запись. Нечисловой id дает ID 0, а не ошибку:
// запись на сервере уже сохранена.
func (c *Client) decodeRecord(raw json.RawMessage) (*models.Book, error) {
	if len(raw) == 0 {
		return &models.Book{}, nil
	}

	b, err := api.DecodeBook(raw)
	if errors.Is(err, api.ErrNonNumericID) {
		c.logger.Warn("Server returned a non-numeric book id", "title", b.Title, "error", err)
	} else if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	book := b.ToModel()
	return &book, nil
}

// DeleteBook удаляет книгу на сервере
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	path := booksPath + "/" + strconv.FormatInt(id, 10)
	msg := "delete book " + strconv.FormatInt(id, 10)

	status, body, err := c.send(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return models.NewKindError(models.KindRemoteWrite, msg, err)
	}

	// Только 200 и 204 считаются успехом
	if status != http.StatusOK && status != http.StatusNoContent {
		return models.NewKindError(models.KindRemoteWrite, msg, statusError(status, body))
	}

	return nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, email, password string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	req := api.LoginRequest{Email: email, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, loginPath, req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос и декодирует успешный (2xx) ответ в result
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	status, respBody, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}

	// Проверяем статус код
	if status < 200 || status >= 300 {
		return statusError(status, respBody)
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// send отправляет запрос и возвращает статус и тело ответа
func (c *Client) send(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("Remote request",
		"request_id", requestID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	return resp.StatusCode, respBody, nil
}

// statusError формирует ошибку из тела неуспешного ответа
func statusError(status int, body []byte) error {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		return &StatusError{StatusCode: status, Message: msg}
	}
	return &StatusError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}
