package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/qrbox/pkg/api"
)

// writeJSON сериализует ответ с заданным статусом
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeError сериализует ответ с ошибкой
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeJSON(w, logger, status, api.ErrorResponse{Error: message})
}
