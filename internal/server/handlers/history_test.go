package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/pkg/api"
)

// deletableScanStorage как mockScanStorage, но с рабочим удалением по id
type deletableScanStorage struct {
	mockScanStorage
}

func (m *deletableScanStorage) DeleteScan(ctx context.Context, id string) error {
	for i, entry := range m.saved {
		if entry.ID == id {
			m.saved = append(m.saved[:i], m.saved[i+1:]...)
			return nil
		}
	}
	return m.mockScanStorage.DeleteScan(ctx, id)
}

func newHistoryHandler(scans *deletableScanStorage, gens *mockGenStorage) *HistoryHandler {
	return NewHistoryHandler(setupTestLogger(), scans, gens, 20, 50)
}

func TestHistoryHandler_ListScans(t *testing.T) {
	scans := &deletableScanStorage{}
	scans.saved = []models.ScanEntry{
		models.NewScanEntry("https://example.com"),
		models.NewScanEntry("plain text"),
	}
	h := newHistoryHandler(scans, &mockGenStorage{})

	w := httptest.NewRecorder()
	h.ListScans(w, httptest.NewRequest(http.MethodGet, "/api/v1/history/scans", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Scans, 2)
	assert.Equal(t, "https://example.com", resp.Scans[0].Data)
	assert.Equal(t, "URL", resp.Scans[0].Type)
}

func TestHistoryHandler_ListScansEmpty(t *testing.T) {
	h := newHistoryHandler(&deletableScanStorage{}, &mockGenStorage{})

	w := httptest.NewRecorder()
	h.ListScans(w, httptest.NewRequest(http.MethodGet, "/api/v1/history/scans", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Scans)
}

func TestHistoryHandler_ListGenerations(t *testing.T) {
	gens := &mockGenStorage{saved: []models.GenEntry{
		models.NewGenEntry(models.KindLink, "https://example.com", "270", "https://encode.test/x", models.DefaultCustomization(), nil),
	}}
	h := newHistoryHandler(&deletableScanStorage{}, gens)

	w := httptest.NewRecorder()
	h.ListGenerations(w, httptest.NewRequest(http.MethodGet, "/api/v1/history/generations", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Generations, 1)
	assert.Equal(t, "https://encode.test/x", resp.Generations[0].QRURL)
}

func TestHistoryHandler_RecordGeneration(t *testing.T) {
	gens := &mockGenStorage{}
	h := newHistoryHandler(&deletableScanStorage{}, gens)

	body, err := json.Marshal(api.GenRecordRequest{
		Kind:  "LINK",
		Data:  "https://example.com",
		QRURL: "https://encode.test/x",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.RecordGeneration(w, httptest.NewRequest(http.MethodPost, "/api/v1/history/generations", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, gens.saved, 1)
	assert.Equal(t, models.KindLink, gens.saved[0].Type)
	// Размер по умолчанию, когда форма его не прислала
	assert.Equal(t, "270", gens.saved[0].Size)
}

func TestHistoryHandler_RecordGenerationInvalid(t *testing.T) {
	tests := []struct {
		name string
		req  api.GenRecordRequest
	}{
		{name: "unknown kind", req: api.GenRecordRequest{Kind: "PHONE", Data: "x", QRURL: "u"}},
		{name: "missing data", req: api.GenRecordRequest{Kind: "TEXT", QRURL: "u"}},
		{name: "missing url", req: api.GenRecordRequest{Kind: "TEXT", Data: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gens := &mockGenStorage{}
			h := newHistoryHandler(&deletableScanStorage{}, gens)

			body, err := json.Marshal(tt.req)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			h.RecordGeneration(w, httptest.NewRequest(http.MethodPost, "/api/v1/history/generations", bytes.NewReader(body)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, gens.saved)
		})
	}
}

func TestHistoryHandler_DeleteScan(t *testing.T) {
	entry := models.NewScanEntry("https://example.com")
	scans := &deletableScanStorage{}
	scans.saved = []models.ScanEntry{entry}
	h := newHistoryHandler(scans, &mockGenStorage{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/history/scans/"+entry.ID, nil)
	req = mux.SetURLVars(req, map[string]string{"id": entry.ID})

	w := httptest.NewRecorder()
	h.DeleteScan(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, scans.saved)
}

func TestHistoryHandler_DeleteScanNotFound(t *testing.T) {
	h := newHistoryHandler(&deletableScanStorage{}, &mockGenStorage{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/history/scans/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})

	w := httptest.NewRecorder()
	h.DeleteScan(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "history entry not found")
}

func TestHistoryHandler_DeleteGenerationNotFound(t *testing.T) {
	h := newHistoryHandler(&deletableScanStorage{}, &mockGenStorage{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/history/generations/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})

	w := httptest.NewRecorder()
	h.DeleteGeneration(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistoryHandler_ClearScans(t *testing.T) {
	scans := &deletableScanStorage{}
	scans.saved = []models.ScanEntry{models.NewScanEntry("a"), models.NewScanEntry("b")}
	h := newHistoryHandler(scans, &mockGenStorage{})

	w := httptest.NewRecorder()
	h.ClearScans(w, httptest.NewRequest(http.MethodDelete, "/api/v1/history/scans", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, scans.saved)
}

func TestHistoryHandler_ClearGenerations(t *testing.T) {
	gens := &mockGenStorage{saved: []models.GenEntry{
		models.NewGenEntry(models.KindText, "x", "270", "u", models.DefaultCustomization(), nil),
	}}
	h := newHistoryHandler(&deletableScanStorage{}, gens)

	w := httptest.NewRecorder()
	h.ClearGenerations(w, httptest.NewRequest(http.MethodDelete, "/api/v1/history/generations", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, gens.saved)
}
