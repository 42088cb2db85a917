package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/internal/server/storage"
	"github.com/iudanet/qrbox/pkg/api"
)

// HistoryHandler отдает и правит серверные истории сканирований и генераций
type HistoryHandler struct {
	logger    *slog.Logger
	scans     storage.ScanStorage
	gens      storage.GenStorage
	scanLimit int
	genLimit  int
}

// NewHistoryHandler создает handler истории
func NewHistoryHandler(logger *slog.Logger, scans storage.ScanStorage, gens storage.GenStorage, scanLimit, genLimit int) *HistoryHandler {
	return &HistoryHandler{
		logger:    logger,
		scans:     scans,
		gens:      gens,
		scanLimit: scanLimit,
		genLimit:  genLimit,
	}
}

// ListScans обрабатывает GET /api/v1/history/scans
func (h *HistoryHandler) ListScans(w http.ResponseWriter, r *http.Request) {
	entries, err := h.scans.ListScans(r.Context(), h.scanLimit)
	if err != nil {
		h.logger.Error("failed to list scans", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to load scan history")
		return
	}

	resp := api.HistoryResponse{Count: len(entries)}
	for _, entry := range entries {
		resp.Scans = append(resp.Scans, toScanResponse(entry))
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// ListGenerations обрабатывает GET /api/v1/history/generations
func (h *HistoryHandler) ListGenerations(w http.ResponseWriter, r *http.Request) {
	entries, err := h.gens.ListGenerations(r.Context(), h.genLimit)
	if err != nil {
		h.logger.Error("failed to list generations", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to load generator history")
		return
	}

	resp := api.HistoryResponse{Count: len(entries)}
	for _, entry := range entries {
		resp.Generations = append(resp.Generations, toGenResponse(entry))
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// RecordGeneration обрабатывает POST /api/v1/history/generations.
// Принимает генерацию, построенную на стороне клиента, и записывает ее
// в историю как есть.
func (h *HistoryHandler) RecordGeneration(w http.ResponseWriter, r *http.Request) {
	var req api.GenRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid JSON body")
		return
	}

	kind := models.GenKind(req.Kind)
	switch kind {
	case models.KindLink, models.KindText, models.KindEmail, models.KindWifi, models.KindData:
	default:
		writeError(w, h.logger, http.StatusBadRequest, "unknown kind")
		return
	}
	if req.Data == "" || req.QRURL == "" {
		writeError(w, h.logger, http.StatusBadRequest, "data and qr_url are required")
		return
	}

	size := req.Size
	if size == "" {
		size = "270"
	}

	entry := models.NewGenEntry(kind, req.Data, size, req.QRURL, models.DefaultCustomization(), req.Details)
	if err := h.gens.SaveGeneration(r.Context(), entry, h.genLimit); err != nil {
		h.logger.Error("failed to save generation entry", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to save history entry")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, toGenResponse(entry))
}

// DeleteScan обрабатывает DELETE /api/v1/history/scans/{id}
func (h *HistoryHandler) DeleteScan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.scans.DeleteScan(r.Context(), id)
	if errors.Is(err, storage.ErrEntryNotFound) {
		writeError(w, h.logger, http.StatusNotFound, "history entry not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete scan entry", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to delete history entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteGeneration обрабатывает DELETE /api/v1/history/generations/{id}
func (h *HistoryHandler) DeleteGeneration(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.gens.DeleteGeneration(r.Context(), id)
	if errors.Is(err, storage.ErrEntryNotFound) {
		writeError(w, h.logger, http.StatusNotFound, "history entry not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete generation entry", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to delete history entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearScans обрабатывает DELETE /api/v1/history/scans
func (h *HistoryHandler) ClearScans(w http.ResponseWriter, r *http.Request) {
	if err := h.scans.ClearScans(r.Context()); err != nil {
		h.logger.Error("failed to clear scan history", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to clear history")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearGenerations обрабатывает DELETE /api/v1/history/generations
func (h *HistoryHandler) ClearGenerations(w http.ResponseWriter, r *http.Request) {
	if err := h.gens.ClearGenerations(r.Context()); err != nil {
		h.logger.Error("failed to clear generator history", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to clear history")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
