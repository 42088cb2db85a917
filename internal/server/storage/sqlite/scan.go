package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/internal/server/storage"
)

// SaveScan сохраняет запись истории сканирований и усекает историю
// до limit записей (старейшие выпадают)
func (s *Storage) SaveScan(ctx context.Context, entry models.ScanEntry, limit int) error {
	query := `
		INSERT INTO scan_history (id, data, type, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.Data,
		string(entry.Type),
		entry.Timestamp.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan entry: %w", err)
	}

	return s.trimScans(ctx, limit)
}

// trimScans удаляет записи сверх limit, начиная со старейших
func (s *Storage) trimScans(ctx context.Context, limit int) error {
	if limit <= 0 {
		return nil
	}

	query := `
		DELETE FROM scan_history
		WHERE id NOT IN (
			SELECT id FROM scan_history
			ORDER BY created_at DESC
			LIMIT ?
		)
	`

	if _, err := s.db.ExecContext(ctx, query, limit); err != nil {
		return fmt.Errorf("failed to trim scan history: %w", err)
	}

	return nil
}

// ListScans возвращает записи истории сканирований newest-first
func (s *Storage) ListScans(ctx context.Context, limit int) ([]models.ScanEntry, error) {
	query := `
		SELECT id, data, type, created_at
		FROM scan_history
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan history: %w", err)
	}
	defer rows.Close()

	var entries []models.ScanEntry
	for rows.Next() {
		entry, err := scanScanRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scan history: %w", err)
	}

	return entries, nil
}

// LatestScanByData возвращает самую свежую запись с данным текстом.
// Нужна для окна подавления дубликатов на стороне gateway.
func (s *Storage) LatestScanByData(ctx context.Context, data string) (*models.ScanEntry, error) {
	query := `
		SELECT id, data, type, created_at
		FROM scan_history
		WHERE data = ?
		ORDER BY created_at DESC
		LIMIT 1
	`

	row := s.db.QueryRowContext(ctx, query, data)

	var (
		entry     models.ScanEntry
		entryType string
		createdAt int64
	)
	err := row.Scan(&entry.ID, &entry.Data, &entryType, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query scan entry: %w", err)
	}

	entry.Type = models.ContentType(entryType)
	entry.Timestamp = time.UnixMilli(createdAt).UTC()
	return &entry, nil
}

// DeleteScan удаляет запись по ID
func (s *Storage) DeleteScan(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM scan_history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scan entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrEntryNotFound
	}

	return nil
}

// ClearScans удаляет всю историю сканирований
func (s *Storage) ClearScans(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scan_history`); err != nil {
		return fmt.Errorf("failed to clear scan history: %w", err)
	}
	return nil
}

// scanScanRow читает одну строку scan_history
func scanScanRow(rows *sql.Rows) (models.ScanEntry, error) {
	var (
		entry     models.ScanEntry
		entryType string
		createdAt int64
	)

	if err := rows.Scan(&entry.ID, &entry.Data, &entryType, &createdAt); err != nil {
		return models.ScanEntry{}, fmt.Errorf("failed to scan row: %w", err)
	}

	entry.Type = models.ContentType(entryType)
	entry.Timestamp = time.UnixMilli(createdAt).UTC()
	return entry, nil
}
