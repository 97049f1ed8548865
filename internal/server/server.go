package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/server/handlers"
	"github.com/iudanet/bookkeeper/internal/server/jwt"
	"github.com/iudanet/bookkeeper/internal/server/middleware"
	"github.com/iudanet/bookkeeper/internal/server/storage"
)

// Config параметры HTTP сервера
type Config struct {
	Addr    string
	Version string
	// RequireAuth закрывает POST/PUT/DELETE /books токеном администратора
	RequireAuth     bool
	RateLimit       float64
	RateBurst       int
	ShutdownTimeout time.Duration
}

// Server HTTP сервер каталога книг
type Server struct {
	cfg     Config
	logger  *slog.Logger
	books   storage.BookStorage
	users   storage.UserStorage
	tokens  *jwt.Service
	limiter *middleware.RateLimiter
}

// New создает сервер. Rate limit включается при cfg.RateLimit > 0.
func New(cfg Config, logger *slog.Logger, books storage.BookStorage, users storage.UserStorage, tokens *jwt.Service) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		books:  books,
		users:  users,
		tokens: tokens,
	}
	if cfg.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, 0, logger)
	}
	return s
}

// Handler собирает маршруты и цепочку middleware
func (s *Server) Handler() http.Handler {
	booksHandler := handlers.NewBooksHandler(s.logger, s.books)
	authHandler := handlers.NewAuthHandler(s.logger, s.users, s.tokens)
	healthHandler := handlers.NewHealthHandler(s.logger, s.books, s.cfg.Version)

	write := func(h http.HandlerFunc) http.Handler {
		if !s.cfg.RequireAuth {
			return h
		}
		return middleware.AuthMiddleware(s.logger, s.tokens, models.RoleAdmin)(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /books", booksHandler.List)
	mux.HandleFunc("GET /books/{id}", booksHandler.Get)
	mux.Handle("POST /books", write(booksHandler.Create))
	mux.Handle("PUT /books/{id}", write(booksHandler.Update))
	mux.Handle("DELETE /books/{id}", write(booksHandler.Delete))
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("GET /health", healthHandler.Health)

	var h http.Handler = mux
	if s.limiter != nil {
		h = s.limiter.Middleware(h)
	}
	h = middleware.LoggingMiddleware(s.logger, "/health")(h)
	h = middleware.RequestIDMiddleware(h)
	h = middleware.RecoveryMiddleware(s.logger)(h)

	return h
}

// Run слушает cfg.Addr до отмены ctx, затем корректно останавливается
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", ln.Addr().String(), "require_auth", s.cfg.RequireAuth)
		errCh <- httpServer.Serve(ln)
	}()

	defer func() {
		if s.limiter != nil {
			s.limiter.Stop()
		}
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	<-errCh

	return nil
}
