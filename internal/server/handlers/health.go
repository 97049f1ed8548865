package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/bookkeeper/pkg/api"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	storage Pinger
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, storage Pinger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		storage: storage,
		version: version,
	}
}

// Health обрабатывает GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
	defer cancel()

	resp := api.HealthResponse{
		Status:  "ok",
		Version: h.version,
		Storage: "ok",
	}
	status := http.StatusOK

	if err := h.storage.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "storage is not reachable", slog.Any("error", err))
		resp.Status = "degraded"
		resp.Storage = "unavailable"
		status = http.StatusServiceUnavailable
	}

	sendJSON(h.logger, w, resp, status)
}
