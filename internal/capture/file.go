package capture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"
	"sync"

	// Регистрируем декодеры форматов, которые принимает форма загрузки
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ReadImageFile читает файл изображения с проверками формы загрузки:
// содержимое должно быть изображением, размер — в пределах лимита.
// Возвращает сырые байты файла: для одиночной загрузки они отправляются
// на decode endpoint как есть, без перекодирования.
func ReadImageFile(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if info.Size() > maxSize {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Определяем media type по содержимому, а не по расширению
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, contentType)
	}

	return data, nil
}

// FileSource источник ровно одного кадра из файла изображения.
// Используется когда файловый путь участвует в сканирующей сессии:
// первый запрос кадра возвращает изображение, остальные — ErrNoFrame.
type FileSource struct {
	img    image.Image
	mu     sync.Mutex
	served bool
	closed bool
}

// NewFileSource создает источник кадра из файла с проверками загрузки
func NewFileSource(path string, maxSize int64) (*FileSource, error) {
	data, err := ReadImageFile(path, maxSize)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotImage, err)
	}

	return &FileSource{img: img}, nil
}

// Frame возвращает кадр один раз, затем ErrNoFrame
func (s *FileSource) Frame(ctx context.Context) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSourceClosed
	}
	if s.served {
		return nil, ErrNoFrame
	}

	s.served = true
	return s.img, nil
}

// Close помечает источник закрытым. Идемпотентен.
func (s *FileSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
