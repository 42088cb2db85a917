package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/qrbox/internal/models"
)

// SaveScans сохраняет полный список истории сканирований одним JSON blob
func (s *Storage) SaveScans(ctx context.Context, entries []models.ScanEntry) error {
	return s.saveBlob(keyScanHistory, entries)
}

// LoadScans загружает историю сканирований.
// Записи без обязательных полей отбрасываются молча; полностью
// поврежденный blob уничтожается (fail-safe, приложение продолжает
// работать с пустой историей).
func (s *Storage) LoadScans(ctx context.Context) ([]models.ScanEntry, error) {
	var entries []models.ScanEntry

	corrupt, err := s.loadBlob(keyScanHistory, &entries)
	if err != nil {
		return nil, err
	}
	if corrupt {
		if err := s.DeleteScans(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	// Фильтруем записи с отсутствующими полями
	valid := entries[:0]
	for _, e := range entries {
		if e.Valid() {
			valid = append(valid, e)
		}
	}

	return valid, nil
}

// DeleteScans удаляет ключ истории сканирований
func (s *Storage) DeleteScans(ctx context.Context) error {
	return s.deleteKey(keyScanHistory)
}

// SaveGenerations сохраняет полный список истории генераций
func (s *Storage) SaveGenerations(ctx context.Context, entries []models.GenEntry) error {
	return s.saveBlob(keyGenHistory, entries)
}

// LoadGenerations загружает историю генераций
func (s *Storage) LoadGenerations(ctx context.Context) ([]models.GenEntry, error) {
	var entries []models.GenEntry

	corrupt, err := s.loadBlob(keyGenHistory, &entries)
	if err != nil {
		return nil, err
	}
	if corrupt {
		if err := s.DeleteGenerations(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	valid := entries[:0]
	for _, e := range entries {
		if e.Valid() {
			valid = append(valid, e)
		}
	}

	return valid, nil
}

// DeleteGenerations удаляет ключ истории генераций
func (s *Storage) DeleteGenerations(ctx context.Context) error {
	return s.deleteKey(keyGenHistory)
}

// saveBlob сериализует список в JSON и кладет под ключ
func (s *Storage) saveBlob(key []byte, value any) error {
	if err := s.guard(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHistory)
		if bucket == nil {
			return fmt.Errorf("history bucket not found")
		}

		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}

		return nil
	})
}

// loadBlob читает и десериализует blob под ключом.
// Возвращает corrupt=true если blob есть, но не разбирается как JSON.
func (s *Storage) loadBlob(key []byte, out any) (corrupt bool, err error) {
	if err := s.guard(); err != nil {
		return false, err
	}

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHistory)
		if bucket == nil {
			return fmt.Errorf("history bucket not found")
		}

		data := bucket.Get(key)
		if data == nil {
			// Ключа нет — пустая история, не ошибка
			return nil
		}

		if jsonErr := json.Unmarshal(data, out); jsonErr != nil {
			corrupt = true
		}

		return nil
	})

	return corrupt, err
}

// deleteKey удаляет ключ из history bucket
func (s *Storage) deleteKey(key []byte) error {
	if err := s.guard(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHistory)
		if bucket == nil {
			return fmt.Errorf("history bucket not found")
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete history: %w", err)
		}

		return nil
	})
}
