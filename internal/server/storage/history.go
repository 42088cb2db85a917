package storage

import (
	"context"

	"github.com/iudanet/qrbox/internal/models"
)

// ScanStorage определяет интерфейс серверной истории сканирований
type ScanStorage interface {
	// SaveScan сохраняет запись и усекает историю до limit записей
	SaveScan(ctx context.Context, entry models.ScanEntry, limit int) error

	// ListScans возвращает записи newest-first, не больше limit
	ListScans(ctx context.Context, limit int) ([]models.ScanEntry, error)

	// LatestScanByData возвращает самую свежую запись с данным текстом.
	// Возвращает ErrEntryNotFound если такой записи нет.
	LatestScanByData(ctx context.Context, data string) (*models.ScanEntry, error)

	// DeleteScan удаляет запись по ID. ErrEntryNotFound если записи нет.
	DeleteScan(ctx context.Context, id string) error

	// ClearScans удаляет всю историю сканирований
	ClearScans(ctx context.Context) error
}

// GenStorage определяет интерфейс серверной истории генераций
type GenStorage interface {
	// SaveGeneration сохраняет запись и усекает историю до limit записей
	SaveGeneration(ctx context.Context, entry models.GenEntry, limit int) error

	// ListGenerations возвращает записи newest-first, не больше limit
	ListGenerations(ctx context.Context, limit int) ([]models.GenEntry, error)

	// DeleteGeneration удаляет запись по ID. ErrEntryNotFound если записи нет.
	DeleteGeneration(ctx context.Context, id string) error

	// ClearGenerations удаляет всю историю генераций
	ClearGenerations(ctx context.Context) error
}
