package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/internal/qrapi"
	"github.com/iudanet/qrbox/internal/server/storage"
)

// Decoder определяет декодирующую часть remote codec клиента
type Decoder interface {
	Decode(ctx context.Context, imageData []byte) (string, error)
}

// DecodeConfig параметры обработки загрузки
type DecodeConfig struct {
	MaxFileSize  int64
	ScanLimit    int
	DedupeWindow time.Duration
}

// DecodeHandler принимает изображение, декодирует его через remote codec
// и пишет результат в серверную историю сканирований
type DecodeHandler struct {
	logger  *slog.Logger
	decoder Decoder
	scans   storage.ScanStorage
	cfg     DecodeConfig
}

// NewDecodeHandler создает handler загрузки изображения для декодирования
func NewDecodeHandler(logger *slog.Logger, decoder Decoder, scans storage.ScanStorage, cfg DecodeConfig) *DecodeHandler {
	return &DecodeHandler{
		logger:  logger,
		decoder: decoder,
		scans:   scans,
		cfg:     cfg,
	}
}

// Decode обрабатывает POST /api/v1/decode.
// Изображение приходит multipart полем file, лимит размера применяется
// до чтения тела целиком.
func (h *DecodeHandler) Decode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxFileSize)

	file, _, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("invalid upload", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "missing or oversized file field")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	imageData, err := io.ReadAll(file)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	if contentType := http.DetectContentType(imageData); len(contentType) < 6 || contentType[:6] != "image/" {
		writeError(w, h.logger, http.StatusUnsupportedMediaType, "uploaded file is not an image")
		return
	}

	data, err := h.decoder.Decode(ctx, imageData)
	if err != nil {
		if errors.Is(err, qrapi.ErrNoQRFound) {
			writeError(w, h.logger, http.StatusNotFound, "no QR code found in image")
			return
		}
		h.logger.Error("remote decode failed", "error", err)
		writeError(w, h.logger, http.StatusBadGateway, "decode service unavailable")
		return
	}

	entry := models.NewScanEntry(data)

	if h.isDuplicate(ctx, data, entry.Timestamp) {
		h.logger.Info("duplicate scan ignored", "type", entry.Type)
	} else if err := h.scans.SaveScan(ctx, entry, h.cfg.ScanLimit); err != nil {
		// История вторична: результат декодирования все равно отдаем
		h.logger.Error("failed to save scan entry", "error", err)
	}

	writeJSON(w, h.logger, http.StatusOK, toDecodeResponse(entry))
}

// isDuplicate проверяет окно подавления дубликатов
func (h *DecodeHandler) isDuplicate(ctx context.Context, data string, now time.Time) bool {
	existing, err := h.scans.LatestScanByData(ctx, data)
	if errors.Is(err, storage.ErrEntryNotFound) {
		return false
	}
	if err != nil {
		h.logger.Error("failed to check duplicate scan", "error", err)
		return false
	}
	return existing.Timestamp.After(now.Add(-h.cfg.DedupeWindow))
}
