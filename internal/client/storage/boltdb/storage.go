package boltdb

import (
	"context"
	"fmt"
	"sync"

	"go.etcd.io/bbolt"

	"github.com/iudanet/qrbox/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketHistory = []byte("history")

	// Фиксированные ключи историй внутри bucket
	keyScanHistory = []byte("scan_history")
	keyGenHistory  = []byte("generator_history")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db     *bbolt.DB
	mu     sync.Mutex
	closed bool
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection. Идемпотентен: повторный вызов
// возвращает nil, а операции после Close — ErrStorageClosed.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.db == nil {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// guard возвращает ErrStorageClosed если хранилище уже закрыто
func (s *Storage) guard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	return nil
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketHistory); err != nil {
			return fmt.Errorf("failed to create history bucket: %w", err)
		}
		return nil
	})
}
