package storage

import (
	"context"

	"github.com/iudanet/qrbox/internal/models"
)

//go:generate moq -out history_mock.go . HistoryStorage

// HistoryStorage определяет интерфейс персистентного хранилища историй.
// Каждая история хранится целиком под своим фиксированным ключом:
// Save перезаписывает весь список, Load возвращает его как есть,
// Delete удаляет ключ (пустой список не хранится).
type HistoryStorage interface {
	// SaveScans сохраняет полный список истории сканирований
	SaveScans(ctx context.Context, entries []models.ScanEntry) error

	// LoadScans загружает историю сканирований.
	// Записи без обязательных полей молча отбрасываются.
	// Поврежденный blob уничтожается, возвращается пустая история.
	LoadScans(ctx context.Context) ([]models.ScanEntry, error)

	// DeleteScans удаляет ключ истории сканирований
	DeleteScans(ctx context.Context) error

	// SaveGenerations сохраняет полный список истории генераций
	SaveGenerations(ctx context.Context, entries []models.GenEntry) error

	// LoadGenerations загружает историю генераций с теми же правилами
	LoadGenerations(ctx context.Context) ([]models.GenEntry, error)

	// DeleteGenerations удаляет ключ истории генераций
	DeleteGenerations(ctx context.Context) error

	// Close закрывает хранилище
	Close() error
}
