package capture

import (
	"context"
	"errors"
	"image"
)

//go:generate moq -out source_mock.go . FrameSource

// Ошибки источников кадров
var (
	// ErrNotImage файл не является изображением
	ErrNotImage = errors.New("file is not a valid image")

	// ErrTooLarge размер файла превышает лимит
	ErrTooLarge = errors.New("file size exceeds the limit")

	// ErrNoFrame источник пока не выдал ни одного пригодного кадра.
	// Аналог видео без стабильных размеров: tick просто пропускается.
	ErrNoFrame = errors.New("no frame available yet")

	// ErrSourceClosed источник уже остановлен
	ErrSourceClosed = errors.New("frame source is closed")
)

// FrameSource абстрагирует происхождение изображения: живой поток кадров
// или выбранный пользователем файл. Выдает один кадр на запрос.
type FrameSource interface {
	// Frame возвращает текущий кадр источника.
	// Возвращает ErrNoFrame если пригодного кадра еще нет.
	Frame(ctx context.Context) (image.Image, error)

	// Close освобождает ресурсы источника.
	// Идемпотентен: повторный вызов и вызов без старта безопасны.
	Close() error
}
