package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/qrbox/internal/client/storage"
	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/internal/notify"
)

// Config параметры сервиса истории.
// Конкретные лимиты и окна — настройка, а не инварианты предметной области.
type Config struct {
	// ScanLimit максимум записей в истории сканирований
	ScanLimit int

	// GenLimit максимум записей в истории генераций
	GenLimit int

	// DedupeWindow окно подавления дубликатов сканирований:
	// повторный скан тех же данных внутри окна молча отбрасывается
	DedupeWindow time.Duration

	// PersistDelay задержка отложенной записи истории сканирований.
	// Аналог idle-планирования: запись не блокирует поток взаимодействия.
	PersistDelay time.Duration
}

// DefaultConfig лимиты и окна оригинального приложения
func DefaultConfig() Config {
	return Config{
		ScanLimit:    20,
		GenLimit:     50,
		DedupeWindow: 60 * time.Second,
		PersistDelay: 200 * time.Millisecond,
	}
}

// Service владеет обеими историями: упорядоченными newest-first списками
// с ограничением емкости, персистентными между запусками.
// Все мутации последовательны, записи никогда не изменяются после создания.
type Service struct {
	store         storage.HistoryStorage
	logger        *slog.Logger
	notifications *notify.Queue
	now           func() time.Time
	cfg           Config

	mu         sync.Mutex
	scans      []models.ScanEntry
	gens       []models.GenEntry
	scanTimer  *time.Timer
	scansDirty bool
}

// NewService создает сервис истории поверх хранилища.
// notifications может быть nil: тогда события не публикуются.
func NewService(store storage.HistoryStorage, cfg Config, logger *slog.Logger, notifications *notify.Queue) *Service {
	if cfg.ScanLimit <= 0 {
		cfg.ScanLimit = DefaultConfig().ScanLimit
	}
	if cfg.GenLimit <= 0 {
		cfg.GenLimit = DefaultConfig().GenLimit
	}
	if cfg.PersistDelay <= 0 {
		cfg.PersistDelay = DefaultConfig().PersistDelay
	}

	return &Service{
		store:         store,
		cfg:           cfg,
		logger:        logger,
		notifications: notifications,
		now:           time.Now,
	}
}

// Load загружает обе истории из хранилища.
// Вызывается один раз при старте приложения.
func (s *Service) Load(ctx context.Context) error {
	scans, err := s.store.LoadScans(ctx)
	if err != nil {
		return fmt.Errorf("failed to load scan history: %w", err)
	}

	gens, err := s.store.LoadGenerations(ctx)
	if err != nil {
		return fmt.Errorf("failed to load generator history: %w", err)
	}

	s.mu.Lock()
	s.scans = scans
	s.gens = gens
	s.mu.Unlock()

	return nil
}

// AddScan добавляет результат сканирования в историю.
// Дубликат (те же данные внутри окна подавления) молча отбрасывается:
// возвращается added == false. Список усечется до лимита, старейшие
// записи выпадают.
func (s *Service) AddScan(ctx context.Context, data string) (models.ScanEntry, bool) {
	if data == "" {
		return models.ScanEntry{}, false
	}

	entry := models.NewScanEntry(data)

	s.mu.Lock()

	// Проверяем окно подавления дубликатов
	cutoff := s.now().Add(-s.cfg.DedupeWindow)
	for _, existing := range s.scans {
		if existing.Data == data && existing.Timestamp.After(cutoff) {
			s.mu.Unlock()
			s.notify("Duplicate scan ignored", notify.KindWarning)
			return models.ScanEntry{}, false
		}
	}

	s.scans = prepend(s.scans, entry, s.cfg.ScanLimit)
	s.scansDirty = true
	s.schedulePersistLocked()
	s.mu.Unlock()

	s.notify("QR Code saved to history", notify.KindSuccess)
	return entry, true
}

// Scans возвращает копию истории сканирований (newest-first)
func (s *Service) Scans() []models.ScanEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ScanEntry, len(s.scans))
	copy(out, s.scans)
	return out
}

// RemoveScan удаляет одну запись истории сканирований
func (s *Service) RemoveScan(ctx context.Context, id string) error {
	s.mu.Lock()

	idx := -1
	for i, e := range s.scans {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return storage.ErrEntryNotFound
	}

	s.scans = append(s.scans[:idx], s.scans[idx+1:]...)
	s.scansDirty = true
	s.schedulePersistLocked()
	s.mu.Unlock()

	s.notify("Item removed from history", notify.KindInfo)
	return nil
}

// ClearScans очищает историю сканирований и удаляет ее ключ из хранилища
func (s *Service) ClearScans(ctx context.Context) error {
	s.mu.Lock()
	s.scans = nil
	s.scansDirty = false
	s.stopScanTimerLocked()
	s.mu.Unlock()

	if err := s.store.DeleteScans(ctx); err != nil {
		return fmt.Errorf("failed to clear scan history: %w", err)
	}
	return nil
}

// AddGeneration добавляет запись в историю генераций.
// Дубликаты не подавляются: каждое действие генерации попадает в историю.
// В отличие от сканирований, запись в хранилище происходит сразу.
func (s *Service) AddGeneration(ctx context.Context, entry models.GenEntry) error {
	s.mu.Lock()
	s.gens = prepend(s.gens, entry, s.cfg.GenLimit)
	gens := make([]models.GenEntry, len(s.gens))
	copy(gens, s.gens)
	s.mu.Unlock()

	if err := s.store.SaveGenerations(ctx, gens); err != nil {
		return fmt.Errorf("failed to persist generator history: %w", err)
	}
	return nil
}

// Generations возвращает копию истории генераций (newest-first)
func (s *Service) Generations() []models.GenEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.GenEntry, len(s.gens))
	copy(out, s.gens)
	return out
}

// RemoveGeneration удаляет одну запись истории генераций
func (s *Service) RemoveGeneration(ctx context.Context, id string) error {
	s.mu.Lock()

	idx := -1
	for i, e := range s.gens {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return storage.ErrEntryNotFound
	}

	s.gens = append(s.gens[:idx], s.gens[idx+1:]...)
	gens := make([]models.GenEntry, len(s.gens))
	copy(gens, s.gens)
	empty := len(gens) == 0
	s.mu.Unlock()

	var err error
	if empty {
		err = s.store.DeleteGenerations(ctx)
	} else {
		err = s.store.SaveGenerations(ctx, gens)
	}
	if err != nil {
		return fmt.Errorf("failed to persist generator history: %w", err)
	}

	s.notify("History item deleted", notify.KindInfo)
	return nil
}

// ClearGenerations очищает историю генераций и удаляет ее ключ
func (s *Service) ClearGenerations(ctx context.Context) error {
	s.mu.Lock()
	s.gens = nil
	s.mu.Unlock()

	if err := s.store.DeleteGenerations(ctx); err != nil {
		return fmt.Errorf("failed to clear generator history: %w", err)
	}
	return nil
}

// Flush немедленно записывает отложенные изменения истории сканирований
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	s.stopScanTimerLocked()
	dirty := s.scansDirty
	s.scansDirty = false
	scans := make([]models.ScanEntry, len(s.scans))
	copy(scans, s.scans)
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	return s.persistScans(ctx, scans)
}

// Close сбрасывает отложенные изменения и останавливает таймеры.
// Само хранилище закрывает его владелец.
func (s *Service) Close() error {
	return s.Flush(context.Background())
}

// schedulePersistLocked перевзводит таймер отложенной записи.
// Предыдущий таймер всегда гасится перед выдачей нового.
func (s *Service) schedulePersistLocked() {
	s.stopScanTimerLocked()
	s.scanTimer = time.AfterFunc(s.cfg.PersistDelay, func() {
		if err := s.Flush(context.Background()); err != nil {
			s.logger.Warn("failed to persist scan history", "error", err)
		}
	})
}

// stopScanTimerLocked гасит таймер отложенной записи если он взведен
func (s *Service) stopScanTimerLocked() {
	if s.scanTimer != nil {
		s.scanTimer.Stop()
		s.scanTimer = nil
	}
}

// persistScans пишет историю сканирований; пустой список удаляет ключ
func (s *Service) persistScans(ctx context.Context, scans []models.ScanEntry) error {
	if len(scans) == 0 {
		if err := s.store.DeleteScans(ctx); err != nil {
			return fmt.Errorf("failed to delete scan history: %w", err)
		}
		return nil
	}

	if err := s.store.SaveScans(ctx, scans); err != nil {
		return fmt.Errorf("failed to persist scan history: %w", err)
	}
	return nil
}

// notify публикует событие в очередь уведомлений если она подключена
func (s *Service) notify(message string, kind notify.Kind) {
	if s.notifications != nil {
		s.notifications.Push(message, kind)
	}
}

// prepend добавляет запись в начало списка и усекает его до лимита
func prepend[T any](list []T, entry T, limit int) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, entry)
	out = append(out, list...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
