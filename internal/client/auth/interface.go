package auth

import (
	"context"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/pkg/api"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out loginapi_mock.go . LoginAPI

// Service defines the main interface for authentication operations.
// Сессия (email, роль, токен) хранится в storage.SessionStorage.
type Service interface {
	// Login выполняет вход и сохраняет сессию
	Login(ctx context.Context, email, password string) (*storage.SessionData, error)

	// Logout удаляет сохраненную сессию
	Logout(ctx context.Context) error

	// Current возвращает действующую сессию или ErrNotAuthenticated
	Current(ctx context.Context) (*storage.SessionData, error)

	// RequireAdmin возвращает сессию администратора или ErrForbidden
	RequireAdmin(ctx context.Context) (*storage.SessionData, error)
}

// LoginAPI часть HTTP клиента, нужная для входа
type LoginAPI interface {
	Login(ctx context.Context, email, password string) (*api.TokenResponse, error)
	SetAccessToken(token string)
}
