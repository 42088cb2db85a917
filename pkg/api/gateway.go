package api

// DTO локального gateway (REST API для браузерного UI).

// DecodeResponse представляет ответ на загрузку изображения для декодирования
type DecodeResponse struct {
	Data string `json:"data"` // декодированный текст QR кода
	Type string `json:"type"` // классификация содержимого (URL, WiFi, Email, Phone, Contact, Text)
}

// EncodeRequest представляет запрос на построение URL QR изображения
type EncodeRequest struct {
	Kind            string `json:"kind"`             // LINK, TEXT, EMAIL, WIFI или DATA
	Data            string `json:"data"`             // payload для LINK/TEXT/DATA
	EmailTo         string `json:"email_to"`         // адрес получателя (EMAIL)
	EmailSubject    string `json:"email_subject"`    // тема письма (EMAIL, опционально)
	EmailBody       string `json:"email_body"`       // текст письма (EMAIL, опционально)
	WifiSSID        string `json:"wifi_ssid"`        // имя сети (WIFI)
	WifiPassword    string `json:"wifi_password"`    // пароль сети (WIFI, опционально)
	WifiEncryption  string `json:"wifi_encryption"`  // WPA, WEP или nopass (WIFI)
	Size            string `json:"size"`             // размер в пикселях, строка как в форме
	ForegroundColor string `json:"foreground_color"` // цвет модулей, hex с #
	BackgroundColor string `json:"background_color"` // цвет фона, hex с #
	Margin          string `json:"margin"`           // "0", "1", "4" или "8"
	IsTransparent   bool   `json:"is_transparent"`   // прозрачный фон вместо BackgroundColor
}

// EncodeResponse представляет ответ с построенным URL изображения
type EncodeResponse struct {
	QRURL string `json:"qr_url"` // полный URL remote encode endpoint
	Data  string `json:"data"`   // итоговый закодированный payload
}

// GenRecordRequest представляет запрос на запись уже построенной генерации
// в историю (UI, который собрал URL на своей стороне)
type GenRecordRequest struct {
	Details map[string]string `json:"details,omitempty"` // снимок полей формы
	Kind    string            `json:"kind"`              // LINK, TEXT, EMAIL, WIFI или DATA
	Data    string            `json:"data"`              // закодированный payload
	Size    string            `json:"size"`              // размер изображения в пикселях
	QRURL   string            `json:"qr_url"`            // полный URL изображения
}

// ScanEntryResponse представляет одну запись истории сканирований
type ScanEntryResponse struct {
	ID        string `json:"id"`
	Data      string `json:"data"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"` // ISO-8601
}

// GenEntryResponse представляет одну запись истории генераций
type GenEntryResponse struct {
	ID        string            `json:"id"`
	Timestamp string            `json:"timestamp"` // ISO-8601
	Type      string            `json:"type"`
	Data      string            `json:"data"`
	Size      string            `json:"size"`
	QRURL     string            `json:"qr_url"`
	Details   map[string]string `json:"details,omitempty"`
}

// HistoryResponse представляет список записей истории
type HistoryResponse struct {
	Scans       []ScanEntryResponse `json:"scans,omitempty"`
	Generations []GenEntryResponse  `json:"generations,omitempty"`
	Count       int                 `json:"count"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
