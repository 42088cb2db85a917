package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iudanet/qrbox/internal/server/handlers"
	"github.com/iudanet/qrbox/internal/server/middleware"
	"github.com/iudanet/qrbox/internal/server/storage"
)

// Config параметры HTTP gateway
type Config struct {
	Version      string
	ScanLimit    int
	GenLimit     int
	MaxFileSize  int64
	DedupeWindow time.Duration
	RateLimit    int
	RateWindow   time.Duration
}

// Deps зависимости gateway: remote codec и хранилище истории
type Deps struct {
	Decoder handlers.Decoder
	Builder handlers.URLBuilder
	Scans   storage.ScanStorage
	Gens    storage.GenStorage
	DB      handlers.Pinger
}

// NewRouter собирает маршруты gateway и навешивает middleware.
// Decode и encode проксируют remote codec, поэтому на них распространяется
// rate limit: gateway не должен превращаться в открытый ретранслятор.
func NewRouter(logger *slog.Logger, cfg Config, deps Deps) http.Handler {
	r := mux.NewRouter()

	decodeHandler := handlers.NewDecodeHandler(logger, deps.Decoder, deps.Scans, handlers.DecodeConfig{
		MaxFileSize:  cfg.MaxFileSize,
		ScanLimit:    cfg.ScanLimit,
		DedupeWindow: cfg.DedupeWindow,
	})
	encodeHandler := handlers.NewEncodeHandler(logger, deps.Builder, deps.Gens, cfg.GenLimit)
	historyHandler := handlers.NewHistoryHandler(logger, deps.Scans, deps.Gens, cfg.ScanLimit, cfg.GenLimit)
	healthHandler := handlers.NewHealthHandler(logger, deps.DB, cfg.Version)

	apiRouter := r.PathPrefix("/api/v1").Subrouter()
	apiRouter.HandleFunc("/decode", decodeHandler.Decode).Methods(http.MethodPost)
	apiRouter.HandleFunc("/encode", encodeHandler.Encode).Methods(http.MethodPost)
	apiRouter.HandleFunc("/history/scans", historyHandler.ListScans).Methods(http.MethodGet)
	apiRouter.HandleFunc("/history/scans", historyHandler.ClearScans).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/history/scans/{id}", historyHandler.DeleteScan).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/history/generations", historyHandler.ListGenerations).Methods(http.MethodGet)
	apiRouter.HandleFunc("/history/generations", historyHandler.RecordGeneration).Methods(http.MethodPost)
	apiRouter.HandleFunc("/history/generations", historyHandler.ClearGenerations).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/history/generations/{id}", historyHandler.DeleteGeneration).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	var handler http.Handler = r
	handler = middleware.RateLimitMiddleware(cfg.RateLimit, cfg.RateWindow, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}
