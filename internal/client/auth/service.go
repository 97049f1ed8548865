package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/validation"
)

type service struct {
	apiClient LoginAPI
	sessions  storage.SessionStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(apiClient LoginAPI, sessions storage.SessionStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
		now:       time.Now,
	}
}

// Login выполняет аутентификацию пользователя и сохраняет роль
func (s *service) Login(ctx context.Context, email, password string) (*storage.SessionData, error) {
	email = strings.TrimSpace(email)

	// Валидация входных данных
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	role := models.Role(resp.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("server returned unknown role %q", resp.Role)
	}

	session := &storage.SessionData{
		Email:       email,
		Role:        role,
		AccessToken: resp.AccessToken,
	}
	if resp.ExpiresIn > 0 {
		session.ExpiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.apiClient.SetAccessToken(session.AccessToken)
	s.logger.Info("Logged in", "email", email, "role", role)

	return session, nil
}

// Logout удаляет локальные данные авторизации
func (s *service) Logout(ctx context.Context) error {
	err := s.sessions.DeleteSession(ctx)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return ErrNotAuthenticated
	}
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.apiClient.SetAccessToken("")
	return nil
}

// Current возвращает действующую сессию
func (s *service) Current(ctx context.Context) (*storage.SessionData, error) {
	session, err := s.sessions.GetSession(ctx)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	if session.Expired(s.now()) {
		return nil, fmt.Errorf("session expired: %w", ErrNotAuthenticated)
	}

	return session, nil
}

// RequireAdmin проверяет, что текущая сессия принадлежит администратору
func (s *service) RequireAdmin(ctx context.Context) (*storage.SessionData, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	if session.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	return session, nil
}
