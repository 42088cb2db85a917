package qrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/pkg/api"
)

//go:generate moq -out client_mock.go . Codec

// Codec определяет интерфейс remote codec клиента
type Codec interface {
	// Decode отправляет изображение на decode endpoint и возвращает
	// декодированный текст. Возвращает ErrNoQRFound если QR не найден.
	Decode(ctx context.Context, imageData []byte) (string, error)

	// Download скачивает байты готового QR изображения по построенному URL
	Download(ctx context.Context, imageURL string) ([]byte, error)

	// BuildEncodeURL строит URL encode endpoint для заданных данных,
	// размера и кастомизации. Сетевых вызовов не делает.
	BuildEncodeURL(data, size string, cust models.Customization) string
}

// Client представляет HTTP клиент стороннего QR сервиса.
// Оба направления (encode и decode) делегируются api.qrserver.com:
// собственных QR алгоритмов в этом репозитории нет.
type Client struct {
	httpClient     *http.Client
	decodeEndpoint string
	encodeEndpoint string
}

// NewClient создает новый клиент remote codec сервиса
func NewClient(decodeEndpoint, encodeEndpoint string) *Client {
	return &Client{
		decodeEndpoint: decodeEndpoint,
		encodeEndpoint: encodeEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Decode отправляет изображение на decode endpoint одним запросом.
// Без повторов: неудачный запрос — терминальный для этой операции,
// восстановление — повторное действие пользователя (или следующий tick).
func (c *Client) Decode(ctx context.Context, imageData []byte) (string, error) {
	// Собираем multipart тело с полем file
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "scan.png")
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return "", fmt.Errorf("failed to write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.decodeEndpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrDecodeFailed, resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	var results []api.ReadResult
	if err := json.Unmarshal(respBody, &results); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	// Отсутствие данных по пути [0].symbol[0].data означает "QR не найден"
	data, ok := api.DecodedData(results)
	if !ok {
		return "", ErrNoQRFound
	}

	return data, nil
}

// Download скачивает байты изображения по построенному encode URL
func (c *Client) Download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrDownloadFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	return data, nil
}

// BuildEncodeURL строит URL encode endpoint с параметрами кастомизации.
// Чистая функция, сетевых вызовов нет: сам URL — конечный артефакт,
// его забирает как изображение потребитель вроде <img>.
func (c *Client) BuildEncodeURL(data, size string, cust models.Customization) string {
	params := url.Values{}
	params.Set("size", fmt.Sprintf("%sx%s", size, size))
	params.Set("data", data)
	params.Set("format", "png")
	params.Set("color", strings.TrimPrefix(cust.ForegroundColor, "#"))

	if cust.IsTransparent {
		params.Set("bgcolor", "transparent")
	} else {
		params.Set("bgcolor", strings.TrimPrefix(cust.BackgroundColor, "#"))
	}

	margin := "0"
	if cust.HasMargin {
		margin = cust.Margin
	}
	params.Set("margin", margin)
	params.Set("qzone", "1")

	return c.encodeEndpoint + "?" + params.Encode()
}
