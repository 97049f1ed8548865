package storage

import (
	"context"
	"time"

	"github.com/iudanet/bookkeeper/internal/models"
)

//go:generate moq -out sessionstorage_mock.go . SessionStorage

// SessionStorage defines interface for storing the login session on client.
// Заменяет глобальный флаг роли: сессия явно читается и передается дальше.
type SessionStorage interface {
	// SaveSession stores session data, replacing the previous one
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves stored session
	// Returns ErrSessionNotFound if nobody is logged in
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes stored session (logout)
	// Returns ErrSessionNotFound if nobody is logged in
	DeleteSession(ctx context.Context) error
}

// SessionData represents the persisted login state
type SessionData struct {
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	AccessToken string      `json:"access_token"`
	ExpiresAt   int64       `json:"expires_at"` // unix seconds
}

// Expired reports whether the access token is past its expiry at now
func (s *SessionData) Expired(now time.Time) bool {
	return s.ExpiresAt > 0 && now.Unix() >= s.ExpiresAt
}
