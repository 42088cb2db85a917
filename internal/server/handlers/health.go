package handlers

import (
	"log/slog"
	"net/http"
)

// Pinger проверка живости хранилища
type Pinger interface {
	Ping() error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	db      Pinger
	version string
}

// NewHealthHandler создает новый handler для health check.
// db может быть nil: тогда проверяется только живость процесса.
func NewHealthHandler(logger *slog.Logger, db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		db:      db,
		version: version,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health обрабатывает GET /api/v1/health
// Health check endpoint для мониторинга
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			h.logger.Error("database ping failed", "error", err)
			writeJSON(w, h.logger, http.StatusServiceUnavailable, HealthResponse{Status: "degraded"})
			return
		}
	}

	writeJSON(w, h.logger, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}
