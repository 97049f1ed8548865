package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/bookkeeper/internal/models"
)

const issuer = "bookkeeper"

// ErrInvalidToken токен не прошел проверку подписи, срока или claims
var ErrInvalidToken = errors.New("invalid token")

// Service provides JWT token generation and validation
type Service struct {
	secret         []byte
	accessTokenTTL time.Duration
	now            func() time.Time
}

// Claims represents JWT claims
type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// NewService creates a new JWT service
// secret should be a cryptographically secure random string
func NewService(secret string, accessTokenTTL time.Duration) *Service {
	return &Service{
		secret:         []byte(secret),
		accessTokenTTL: accessTokenTTL,
		now:            time.Now,
	}
}

// GenerateAccessToken creates a new HS256 access token.
// Возвращает токен и срок жизни в секундах.
func (s *Service) GenerateAccessToken(email string, role models.Role) (string, int64, error) {
	now := s.now()

	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, int64(s.accessTokenTTL.Seconds()), nil
}

// ValidateAccessToken validates and parses JWT access token
func (s *Service) ValidateAccessToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return claims, nil
}
