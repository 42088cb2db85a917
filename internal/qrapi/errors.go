package qrapi

import "errors"

// Ошибки remote codec клиента
var (
	// ErrNoQRFound в изображении не найден QR код.
	// Это не ошибка транспорта: для периодического сканирования такой
	// результат молча перевзводит следующий tick.
	ErrNoQRFound = errors.New("no QR code found in the image")

	// ErrDecodeFailed запрос к decode endpoint не удался
	ErrDecodeFailed = errors.New("failed to read QR code")

	// ErrDownloadFailed скачивание готового изображения не удалось
	ErrDownloadFailed = errors.New("failed to download QR code")
)
