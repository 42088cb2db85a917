package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/internal/server/storage"
	"github.com/iudanet/qrbox/internal/validation"
	"github.com/iudanet/qrbox/pkg/api"
)

// URLBuilder определяет кодирующую часть remote codec клиента
type URLBuilder interface {
	BuildEncodeURL(data, size string, cust models.Customization) string
	Download(ctx context.Context, url string) ([]byte, error)
}

// defaultImageSize размер изображения, если форма его не задала
const defaultImageSize = "270"

// EncodeHandler строит URL QR изображения по полям формы
// и пишет результат в серверную историю генераций
type EncodeHandler struct {
	logger   *slog.Logger
	builder  URLBuilder
	gens     storage.GenStorage
	genLimit int
}

// NewEncodeHandler создает handler построения QR изображения
func NewEncodeHandler(logger *slog.Logger, builder URLBuilder, gens storage.GenStorage, genLimit int) *EncodeHandler {
	return &EncodeHandler{
		logger:   logger,
		builder:  builder,
		gens:     gens,
		genLimit: genLimit,
	}
}

// Encode обрабатывает POST /api/v1/encode
func (h *EncodeHandler) Encode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid JSON body")
		return
	}

	kind, data, details, err := buildPayload(req)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	cust, size, err := buildCustomization(req)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	qrURL := h.builder.BuildEncodeURL(data, size, cust)

	entry := models.NewGenEntry(kind, data, size, qrURL, cust, details)
	if err := h.gens.SaveGeneration(ctx, entry, h.genLimit); err != nil {
		// История вторична: построенный URL все равно отдаем
		h.logger.Error("failed to save generation entry", "error", err)
	}

	// ?download=1 — проксируем байты изображения вместо JSON с URL
	if r.URL.Query().Get("download") == "1" {
		imageData, err := h.builder.Download(ctx, qrURL)
		if err != nil {
			h.logger.Error("failed to download QR image", "error", err)
			writeError(w, h.logger, http.StatusBadGateway, "encode service unavailable")
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(imageData); err != nil {
			h.logger.Error("failed to write image response", "error", err)
		}
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.EncodeResponse{
		QRURL: qrURL,
		Data:  data,
	})
}

// buildPayload собирает кодируемую строку из полей формы
func buildPayload(req api.EncodeRequest) (models.GenKind, string, map[string]string, error) {
	switch models.GenKind(req.Kind) {
	case models.KindLink, models.KindText, models.KindData:
		data, err := models.BuildTextPayload(req.Data)
		return models.GenKind(req.Kind), data, nil, err

	case models.KindEmail:
		data, err := models.BuildEmailPayload(req.EmailTo, req.EmailSubject, req.EmailBody)
		if err != nil {
			return "", "", nil, err
		}
		details := map[string]string{"to": req.EmailTo}
		if req.EmailSubject != "" {
			details["subject"] = req.EmailSubject
		}
		if req.EmailBody != "" {
			details["body"] = req.EmailBody
		}
		return models.KindEmail, data, details, nil

	case models.KindWifi:
		encryption := req.WifiEncryption
		if encryption == "" {
			encryption = "WPA"
		}
		data, err := models.BuildWifiPayload(req.WifiSSID, req.WifiPassword, encryption)
		if err != nil {
			return "", "", nil, err
		}
		details := map[string]string{"ssid": req.WifiSSID, "encryption": encryption}
		return models.KindWifi, data, details, nil

	default:
		return "", "", nil, fmt.Errorf("unknown kind: %q", req.Kind)
	}
}

// buildCustomization собирает настройки внешнего вида из полей формы,
// недостающие поля получают значения по умолчанию
func buildCustomization(req api.EncodeRequest) (models.Customization, string, error) {
	cust := models.DefaultCustomization()

	if req.ForegroundColor != "" {
		if err := validation.ValidateColor(req.ForegroundColor); err != nil {
			return cust, "", fmt.Errorf("foreground: %w", err)
		}
		cust.ForegroundColor = req.ForegroundColor
	}

	if req.BackgroundColor != "" {
		if err := validation.ValidateColor(req.BackgroundColor); err != nil {
			return cust, "", fmt.Errorf("background: %w", err)
		}
		cust.BackgroundColor = req.BackgroundColor
	}

	if req.Margin != "" {
		if err := validation.ValidateMargin(req.Margin); err != nil {
			return cust, "", err
		}
		cust.SetMargin(req.Margin)
	}

	cust.IsTransparent = req.IsTransparent

	size := req.Size
	if size == "" {
		size = defaultImageSize
	}
	if err := validation.ValidateSize(size); err != nil {
		return cust, "", err
	}

	return cust, size, nil
}
