package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/server/storage"
	"github.com/iudanet/bookkeeper/internal/validation"
	"github.com/iudanet/bookkeeper/pkg/api"
)

// TokenIssuer выпускает access token для пользователя
type TokenIssuer interface {
	GenerateAccessToken(email string, role models.Role) (string, int64, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	tokens      TokenIssuer
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		tokens:      tokens,
	}
}

// Login обрабатывает POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		SendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		SendError(h.logger, w, "password is required", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, storage.ErrUserNotFound) {
		h.logger.WarnContext(ctx, "login for unknown user", slog.String("email", req.Email))
		SendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "invalid password", slog.String("email", user.Email))
		SendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, expiresIn, err := h.tokens.GenerateAccessToken(user.Email, user.Role)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("email", user.Email),
		slog.String("role", string(user.Role)))

	sendJSON(h.logger, w, api.TokenResponse{
		AccessToken: token,
		Role:        string(user.Role),
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}
