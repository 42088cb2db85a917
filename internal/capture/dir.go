package capture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// DirSource источник кадров из каталога, в который внешний инструмент захвата
// (например ffmpeg с камеры) пишет снимки. Frame возвращает самый свежий файл.
// Это "камера" для headless клиента: открыть источник — startCamera,
// Close — stopCamera с освобождением ресурса.
type DirSource struct {
	dir     string
	maxSize int64
	mu      sync.Mutex
	closed  bool
}

// NewDirSource создает источник кадров поверх каталога снимков.
// Каталог должен существовать: отсутствие каталога — аналог отказа в доступе
// к камере, состояние источника при этом не меняется.
func NewDirSource(dir string, maxSize int64) (*DirSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("capture directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("capture path is not a directory: %s", dir)
	}

	return &DirSource{dir: dir, maxSize: maxSize}, nil
}

// Frame возвращает самый свежий кадр каталога.
// Пустой каталог — ErrNoFrame: сессия пропускает tick и ждет следующего.
func (s *DirSource) Frame(ctx context.Context) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSourceClosed
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.newestFrame()
	if err != nil {
		return nil, err
	}

	data, err := ReadImageFile(path, s.maxSize)
	if err != nil {
		// Недописанный или посторонний файл: ждем следующий tick
		return nil, ErrNoFrame
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNoFrame
	}

	return img, nil
}

// newestFrame находит последний по времени модификации файл изображения
func (s *DirSource) newestFrame() (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", fmt.Errorf("failed to read capture directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime int64
	}

	var candidates []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg", ".gif":
		default:
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{
			path:    filepath.Join(s.dir, entry.Name()),
			modTime: info.ModTime().UnixNano(),
		})
	}

	if len(candidates) == 0 {
		return "", ErrNoFrame
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime > candidates[j].modTime
	})

	return candidates[0].path, nil
}

// Close останавливает источник. Идемпотентен: повторный вызов безопасен.
func (s *DirSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
