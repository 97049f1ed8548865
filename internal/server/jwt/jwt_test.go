package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookkeeper/internal/models"
)

func TestService_RoundTrip(t *testing.T) {
	s := NewService("test-secret", 15*time.Minute)

	token, expiresIn, err := s.GenerateAccessToken("admin@gmail.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(900), expiresIn)

	claims, err := s.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@gmail.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestService_WrongSecret(t *testing.T) {
	token, _, err := NewService("secret-a", time.Minute).GenerateAccessToken("user@gmail.com", models.RoleUser)
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Minute).ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Expired(t *testing.T) {
	s := NewService("test-secret", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := s.GenerateAccessToken("user@gmail.com", models.RoleUser)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Garbage(t *testing.T) {
	s := NewService("test-secret", time.Minute)

	for _, token := range []string{"", "abc", "a.b.c"} {
		_, err := s.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}
