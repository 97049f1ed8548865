package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/server/handlers"
	"github.com/iudanet/bookkeeper/internal/server/jwt"
)

// TokenValidator проверяет access token
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware создает middleware для проверки JWT токена.
// Пустой roles пропускает любую валидную роль.
func AuthMiddleware(logger *slog.Logger, validator TokenValidator, roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Ожидаем формат: "Bearer <token>"
			authHeader := r.Header.Get("Authorization")
			scheme, token, found := strings.Cut(authHeader, " ")
			if authHeader == "" || !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				logger.Warn("Missing or malformed Authorization header", "path", r.URL.Path)
				handlers.SendError(logger, w, "missing or malformed token", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateAccessToken(token)
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				handlers.SendError(logger, w, "invalid token", http.StatusUnauthorized)
				return
			}

			if !hasRole(claims.Role, roles) {
				logger.Warn("Forbidden", "email", claims.Email, "role", claims.Role, "path", r.URL.Path)
				handlers.SendError(logger, w, "insufficient role", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), handlers.EmailKey, claims.Email)
			ctx = context.WithValue(ctx, handlers.RoleKey, claims.Role)

			logger.Debug("User authenticated", "email", claims.Email, "role", claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func hasRole(role models.Role, allowed []models.Role) bool {
	return len(allowed) == 0 || slices.Contains(allowed, role)
}
