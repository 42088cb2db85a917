package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContentType классификация содержимого отсканированного QR кода.
// Определяется по префиксу декодированного текста.
type ContentType string

const (
	ContentURL     ContentType = "URL"
	ContentWiFi    ContentType = "WiFi"
	ContentEmail   ContentType = "Email"
	ContentPhone   ContentType = "Phone"
	ContentContact ContentType = "Contact"
	ContentText    ContentType = "Text"
)

// GenKind тип генерируемого QR кода (вкладка формы в оригинальном UI)
type GenKind string

const (
	KindLink  GenKind = "LINK"
	KindText  GenKind = "TEXT"
	KindEmail GenKind = "EMAIL"
	KindWifi  GenKind = "WIFI"
	KindData  GenKind = "DATA"
)

// DetectContentType определяет тип содержимого по префиксу данных
func DetectContentType(data string) ContentType {
	switch {
	case strings.HasPrefix(data, "http://"), strings.HasPrefix(data, "https://"):
		return ContentURL
	case strings.HasPrefix(data, "WIFI:"):
		return ContentWiFi
	case strings.HasPrefix(data, "mailto:"):
		return ContentEmail
	case strings.HasPrefix(data, "tel:"):
		return ContentPhone
	case strings.HasPrefix(data, "BEGIN:VCARD"):
		return ContentContact
	default:
		return ContentText
	}
}

// ScanEntry представляет одну запись истории сканирований.
// Записи неизменяемы после создания: их можно только удалить.
type ScanEntry struct {
	ID        string      `json:"id"`        // ID уникальный идентификатор записи (UUID)
	Data      string      `json:"data"`      // Data декодированный текст QR кода
	Type      ContentType `json:"type"`      // Type классификация содержимого
	Timestamp time.Time   `json:"timestamp"` // Timestamp время создания (ISO-8601 в JSON)
}

// NewScanEntry создает запись истории для декодированного текста.
// Тип содержимого выводится из префикса данных.
func NewScanEntry(data string) ScanEntry {
	return ScanEntry{
		ID:        uuid.New().String(),
		Data:      data,
		Type:      DetectContentType(data),
		Timestamp: time.Now().UTC(),
	}
}

// Valid проверяет что запись содержит обязательные поля.
// Записи без id/data/timestamp молча отбрасываются при загрузке из хранилища.
func (e ScanEntry) Valid() bool {
	return e.ID != "" && e.Data != "" && !e.Timestamp.IsZero()
}

// GenEntry представляет одну запись истории генераций
type GenEntry struct {
	Details       map[string]string `json:"details,omitempty"` // Details снимок полей формы для последующего показа
	ID            string            `json:"id"`                // ID уникальный идентификатор записи (UUID)
	Type          GenKind           `json:"type"`              // Type тип генерации (LINK, TEXT, EMAIL, WIFI, DATA)
	Data          string            `json:"data"`              // Data точная строка, закодированная в QR
	Size          string            `json:"size"`              // Size размер изображения в пикселях (строка как в форме)
	QRURL         string            `json:"qr_url"`            // QRURL полный построенный URL remote endpoint
	Customization Customization     `json:"customization"`     // Customization снимок настроек внешнего вида
	Timestamp     time.Time         `json:"timestamp"`         // Timestamp время создания
}

// NewGenEntry создает запись истории генераций
func NewGenEntry(kind GenKind, data, size, qrURL string, cust Customization, details map[string]string) GenEntry {
	return GenEntry{
		ID:            uuid.New().String(),
		Timestamp:     time.Now().UTC(),
		Type:          kind,
		Data:          data,
		Size:          size,
		QRURL:         qrURL,
		Customization: cust,
		Details:       details,
	}
}

// Valid проверяет обязательные поля записи генерации
func (e GenEntry) Valid() bool {
	return e.ID != "" && e.Data != "" && !e.Timestamp.IsZero()
}
