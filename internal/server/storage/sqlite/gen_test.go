package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/internal/server/storage"
)

func newGenEntryAt(data string, ts time.Time) models.GenEntry {
	entry := models.NewGenEntry(models.KindText, data, "270", "https://example.com/qr", models.DefaultCustomization(), nil)
	entry.Timestamp = ts
	return entry
}

func TestGenStorage_SaveAndList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	cust := models.DefaultCustomization()
	cust.ForegroundColor = "#112233"
	cust.IsTransparent = true

	entry := models.NewGenEntry(models.KindWifi, "WIFI:S:MyNet;T:WPA;P:secret;;", "500",
		"https://api.qrserver.com/v1/create-qr-code/?data=x", cust,
		map[string]string{"ssid": "MyNet", "encryption": "WPA"})

	require.NoError(t, s.SaveGeneration(ctx, entry, 50))

	entries, err := s.ListGenerations(ctx, 50)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, models.KindWifi, got.Type)
	assert.Equal(t, "500", got.Size)
	assert.Equal(t, "#112233", got.Customization.ForegroundColor)
	assert.True(t, got.Customization.IsTransparent)
	assert.Equal(t, "MyNet", got.Details["ssid"])
}

func TestGenStorage_NilDetails(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	entry := newGenEntryAt("plain text", time.Now().UTC())
	require.NoError(t, s.SaveGeneration(ctx, entry, 50))

	entries, err := s.ListGenerations(ctx, 50)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Details)
}

func TestGenStorage_TrimOnSave(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Now().UTC()
	for i := 0; i < 6; i++ {
		entry := newGenEntryAt(fmt.Sprintf("data-%d", i), base.Add(time.Duration(i)*time.Second))
		require.NoError(t, s.SaveGeneration(ctx, entry, 4))
	}

	entries, err := s.ListGenerations(ctx, 50)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "data-5", entries[0].Data)
	assert.Equal(t, "data-2", entries[3].Data)
}

func TestGenStorage_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	entry := newGenEntryAt("to-delete", time.Now().UTC())
	require.NoError(t, s.SaveGeneration(ctx, entry, 50))

	require.NoError(t, s.DeleteGeneration(ctx, entry.ID))
	require.ErrorIs(t, s.DeleteGeneration(ctx, entry.ID), storage.ErrEntryNotFound)

	require.NoError(t, s.SaveGeneration(ctx, newGenEntryAt("a", time.Now().UTC()), 50))
	require.NoError(t, s.ClearGenerations(ctx))

	entries, err := s.ListGenerations(ctx, 50)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
