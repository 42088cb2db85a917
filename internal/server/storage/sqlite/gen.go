package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/internal/server/storage"
)

// SaveGeneration сохраняет запись истории генераций и усекает историю
// до limit записей. Кастомизация и детали формы хранятся JSON блобами:
// сервер их не интерпретирует, только отдает обратно.
func (s *Storage) SaveGeneration(ctx context.Context, entry models.GenEntry, limit int) error {
	custBlob, err := json.Marshal(entry.Customization)
	if err != nil {
		return fmt.Errorf("failed to marshal customization: %w", err)
	}

	var detailsBlob []byte
	if entry.Details != nil {
		detailsBlob, err = json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal details: %w", err)
		}
	}

	query := `
		INSERT INTO gen_history (id, kind, data, size, qr_url, customization, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		entry.ID,
		string(entry.Type),
		entry.Data,
		entry.Size,
		entry.QRURL,
		string(custBlob),
		nullableString(detailsBlob),
		entry.Timestamp.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert generation entry: %w", err)
	}

	return s.trimGenerations(ctx, limit)
}

// trimGenerations удаляет записи сверх limit, начиная со старейших
func (s *Storage) trimGenerations(ctx context.Context, limit int) error {
	if limit <= 0 {
		return nil
	}

	query := `
		DELETE FROM gen_history
		WHERE id NOT IN (
			SELECT id FROM gen_history
			ORDER BY created_at DESC
			LIMIT ?
		)
	`

	if _, err := s.db.ExecContext(ctx, query, limit); err != nil {
		return fmt.Errorf("failed to trim generation history: %w", err)
	}

	return nil
}

// ListGenerations возвращает записи истории генераций newest-first
func (s *Storage) ListGenerations(ctx context.Context, limit int) ([]models.GenEntry, error) {
	query := `
		SELECT id, kind, data, size, qr_url, customization, details, created_at
		FROM gen_history
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query generation history: %w", err)
	}
	defer rows.Close()

	var entries []models.GenEntry
	for rows.Next() {
		entry, err := scanGenRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate generation history: %w", err)
	}

	return entries, nil
}

// DeleteGeneration удаляет запись по ID
func (s *Storage) DeleteGeneration(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM gen_history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete generation entry: %w", err)
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

// ClearGenerations удаляет всю историю генераций
func (s *Storage) ClearGenerations(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM gen_history`); err != nil {
		return fmt.Errorf("failed to clear generation history: %w", err)
	}
	return nil
}

// scanGenRow читает одну строку gen_history
func scanGenRow(rows *sql.Rows) (models.GenEntry, error) {
	var (
		entry     models.GenEntry
		kind      string
		custBlob  string
		details   sql.NullString
		createdAt int64
	)

	err := rows.Scan(&entry.ID, &kind, &entry.Data, &entry.Size, &entry.QRURL, &custBlob, &details, &createdAt)
	if err != nil {
		return models.GenEntry{}, fmt.Errorf("failed to scan row: %w", err)
	}

	if err := json.Unmarshal([]byte(custBlob), &entry.Customization); err != nil {
		return models.GenEntry{}, fmt.Errorf("failed to unmarshal customization: %w", err)
	}

	if details.Valid && details.String != "" {
		if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
			return models.GenEntry{}, fmt.Errorf("failed to unmarshal details: %w", err)
		}
	}

	entry.Type = models.GenKind(kind)
	entry.Timestamp = time.UnixMilli(createdAt).UTC()
	return entry, nil
}

// nullableString возвращает NULL для пустого блоба
func nullableString(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
