package history

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/qrbox/internal/client/storage"
	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/internal/notify"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newMockStorage хранилище-заглушка, помнящая последние сохраненные списки
func newMockStorage() *storage.HistoryStorageMock {
	return &storage.HistoryStorageMock{
		LoadScansFunc:         func(ctx context.Context) ([]models.ScanEntry, error) { return nil, nil },
		LoadGenerationsFunc:   func(ctx context.Context) ([]models.GenEntry, error) { return nil, nil },
		SaveScansFunc:         func(ctx context.Context, entries []models.ScanEntry) error { return nil },
		SaveGenerationsFunc:   func(ctx context.Context, entries []models.GenEntry) error { return nil },
		DeleteScansFunc:       func(ctx context.Context) error { return nil },
		DeleteGenerationsFunc: func(ctx context.Context) error { return nil },
		CloseFunc:             func() error { return nil },
	}
}

func newTestService(store storage.HistoryStorage) *Service {
	cfg := DefaultConfig()
	cfg.PersistDelay = 10 * time.Millisecond
	return NewService(store, cfg, testLogger(), nil)
}

func TestService_AddScan(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMockStorage())

	entry, added := svc.AddScan(ctx, "https://example.com")
	require.True(t, added)
	assert.Equal(t, models.ContentURL, entry.Type)

	scans := svc.Scans()
	require.Len(t, scans, 1)
	assert.Equal(t, "https://example.com", scans[0].Data)
}

func TestService_AddScan_DedupeWindow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMockStorage())

	current := time.Now()
	svc.now = func() time.Time { return current }

	_, added := svc.AddScan(ctx, "same-data")
	require.True(t, added)

	// Повтор внутри окна (60с) отбрасывается
	current = current.Add(30 * time.Second)
	_, added = svc.AddScan(ctx, "same-data")
	assert.False(t, added)
	assert.Len(t, svc.Scans(), 1)

	// Спустя 61 секунду — уже не дубликат
	current = current.Add(31 * time.Second)
	_, added = svc.AddScan(ctx, "same-data")
	assert.True(t, added)
	assert.Len(t, svc.Scans(), 2)
}

func TestService_AddScan_DedupeNotifies(t *testing.T) {
	ctx := context.Background()
	q := notify.NewQueue(time.Minute)
	cfg := DefaultConfig()
	svc := NewService(newMockStorage(), cfg, testLogger(), q)

	svc.AddScan(ctx, "data")
	svc.AddScan(ctx, "data")

	pending := q.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, notify.KindSuccess, pending[0].Kind)
	assert.Equal(t, notify.KindWarning, pending[1].Kind)
}

func TestService_ScanCapacityBound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMockStorage())

	for i := 0; i < 25; i++ {
		_, added := svc.AddScan(ctx, fmt.Sprintf("data-%d", i))
		require.True(t, added)
	}

	scans := svc.Scans()
	require.Len(t, scans, 20)

	// Новейшие впереди, старейшие выпали
	assert.Equal(t, "data-24", scans[0].Data)
	assert.Equal(t, "data-5", scans[19].Data)
}

func TestService_AddScan_EmptyData(t *testing.T) {
	svc := newTestService(newMockStorage())

	_, added := svc.AddScan(context.Background(), "")
	assert.False(t, added)
	assert.Empty(t, svc.Scans())
}

func TestService_DebouncedPersist(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()
	svc := newTestService(store)

	svc.AddScan(ctx, "one")
	svc.AddScan(ctx, "two")

	// Запись отложена: сразу после мутаций ее еще не было
	assert.Empty(t, store.SaveScansCalls())

	// После паузы — ровно одна запись с полным списком
	require.Eventually(t, func() bool {
		return len(store.SaveScansCalls()) == 1
	}, time.Second, 5*time.Millisecond)

	saved := store.SaveScansCalls()[0].Entries
	require.Len(t, saved, 2)
	assert.Equal(t, "two", saved[0].Data)
}

func TestService_Flush(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()

	cfg := DefaultConfig()
	cfg.PersistDelay = time.Hour // отложенная запись не успеет сама
	svc := NewService(store, cfg, testLogger(), nil)

	svc.AddScan(ctx, "data")
	require.NoError(t, svc.Flush(ctx))

	require.Len(t, store.SaveScansCalls(), 1)

	// Повторный Flush без изменений ничего не пишет
	require.NoError(t, svc.Flush(ctx))
	assert.Len(t, store.SaveScansCalls(), 1)
}

func TestService_RemoveScan(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMockStorage())

	entry, _ := svc.AddScan(ctx, "keep")
	target, _ := svc.AddScan(ctx, "remove")

	require.NoError(t, svc.RemoveScan(ctx, target.ID))

	scans := svc.Scans()
	require.Len(t, scans, 1)
	assert.Equal(t, entry.ID, scans[0].ID)
}

func TestService_RemoveScan_NotFound(t *testing.T) {
	svc := newTestService(newMockStorage())

	err := svc.RemoveScan(context.Background(), "missing")
	require.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestService_EmptyHistoryDeletesStoredKey(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()
	svc := newTestService(store)

	entry, _ := svc.AddScan(ctx, "only")
	require.NoError(t, svc.RemoveScan(ctx, entry.ID))

	require.NoError(t, svc.Flush(ctx))

	// Пустой список не сохраняется, ключ удаляется
	assert.Empty(t, store.SaveScansCalls())
	assert.NotEmpty(t, store.DeleteScansCalls())
}

func TestService_ClearScans(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()
	svc := newTestService(store)

	svc.AddScan(ctx, "one")
	svc.AddScan(ctx, "two")

	require.NoError(t, svc.ClearScans(ctx))

	assert.Empty(t, svc.Scans())
	assert.NotEmpty(t, store.DeleteScansCalls())
}

func TestService_AddGeneration(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()
	svc := newTestService(store)

	entry := models.NewGenEntry(models.KindText, "hello", "270", "url", models.DefaultCustomization(), nil)
	require.NoError(t, svc.AddGeneration(ctx, entry))

	// Генерации пишутся в хранилище сразу, без задержки
	require.Len(t, store.SaveGenerationsCalls(), 1)
	assert.Len(t, svc.Generations(), 1)
}

func TestService_GenerationNoDedupe(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMockStorage())

	// Одинаковые данные подряд — обе записи сохраняются
	for i := 0; i < 2; i++ {
		entry := models.NewGenEntry(models.KindText, "same", "270", "url", models.DefaultCustomization(), nil)
		require.NoError(t, svc.AddGeneration(ctx, entry))
	}

	assert.Len(t, svc.Generations(), 2)
}

func TestService_GenerationCapacityBound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMockStorage())

	for i := 0; i < 55; i++ {
		entry := models.NewGenEntry(models.KindText, fmt.Sprintf("data-%d", i), "270", "url", models.DefaultCustomization(), nil)
		require.NoError(t, svc.AddGeneration(ctx, entry))
	}

	gens := svc.Generations()
	require.Len(t, gens, 50)
	assert.Equal(t, "data-54", gens[0].Data)
	assert.Equal(t, "data-5", gens[49].Data)
}

func TestService_RemoveGeneration_LastEntryDeletesKey(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()
	svc := newTestService(store)

	entry := models.NewGenEntry(models.KindText, "only", "270", "url", models.DefaultCustomization(), nil)
	require.NoError(t, svc.AddGeneration(ctx, entry))
	require.NoError(t, svc.RemoveGeneration(ctx, entry.ID))

	assert.Empty(t, svc.Generations())
	assert.NotEmpty(t, store.DeleteGenerationsCalls())
}

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()

	stored := []models.ScanEntry{models.NewScanEntry("persisted")}
	store.LoadScansFunc = func(ctx context.Context) ([]models.ScanEntry, error) {
		return stored, nil
	}

	svc := newTestService(store)
	require.NoError(t, svc.Load(ctx))

	scans := svc.Scans()
	require.Len(t, scans, 1)
	assert.Equal(t, "persisted", scans[0].Data)
}
