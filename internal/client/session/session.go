package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	httpClient "github.com/iudanet/bookkeeper/internal/client/api"
	"github.com/iudanet/bookkeeper/internal/client/auth"
	"github.com/iudanet/bookkeeper/internal/client/books"
	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/bookkeeper/internal/client/storage/sqlite"
	"github.com/iudanet/bookkeeper/internal/client/sync"
)

// Config параметры клиентской сессии
type Config struct {
	ServerURL   string
	CachePath   string        // файл SQLite кэша книг
	StatePath   string        // файл BoltDB с сессией и метаданными
	Timeout     time.Duration // таймаут HTTP запроса
	Concurrency int           // параллельность фаз сверки
	RateLimit   float64       // запросов к серверу в секунду, 0 без ограничения
}

// Session связывает хранилища, HTTP клиент и сервисы одного запуска клиента.
// Создается явно и передается дальше, глобального состояния нет.
type Session struct {
	API        *httpClient.Client
	Cache      *sqlite.Storage
	State      *boltdb.Storage
	Auth       auth.Service
	Books      books.Service
	Reconciler sync.Service
}

// Open открывает хранилища и собирает сервисы
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Session, error) {
	for _, path := range []string{cfg.CachePath, cfg.StatePath} {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0700); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	cache, err := sqlite.New(ctx, cfg.CachePath)
	if err != nil {
		return nil, err
	}

	state, err := boltdb.New(ctx, cfg.StatePath)
	if err != nil {
		_ = cache.Close()
		return nil, fmt.Errorf("failed to open state storage: %w", err)
	}

	apiClient := httpClient.NewClient(httpClient.Config{
		BaseURL:   cfg.ServerURL,
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
	}, logger)

	// Восстанавливаем токен из сохраненной сессии
	saved, err := state.GetSession(ctx)
	switch {
	case err == nil && !saved.Expired(time.Now()):
		apiClient.SetAccessToken(saved.AccessToken)
	case err != nil && !errors.Is(err, storage.ErrSessionNotFound):
		logger.Warn("Failed to read saved session", "error", err)
	}

	reconciler := sync.NewService(apiClient, cache, state, cfg.Concurrency, logger)

	return &Session{
		API:        apiClient,
		Cache:      cache,
		State:      state,
		Auth:       auth.NewService(apiClient, state, logger),
		Books:      books.NewService(apiClient, cache, reconciler, logger),
		Reconciler: reconciler,
	}, nil
}

// Close закрывает все хранилища
func (s *Session) Close() error {
	return errors.Join(s.Cache.Close(), s.State.Close())
}
