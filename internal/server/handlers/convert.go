package handlers

import (
	"time"

	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/pkg/api"
)

func toDecodeResponse(entry models.ScanEntry) api.DecodeResponse {
	return api.DecodeResponse{
		Data: entry.Data,
		Type: string(entry.Type),
	}
}

func toScanResponse(entry models.ScanEntry) api.ScanEntryResponse {
	return api.ScanEntryResponse{
		ID:        entry.ID,
		Data:      entry.Data,
		Type:      string(entry.Type),
		Timestamp: entry.Timestamp.Format(time.RFC3339),
	}
}

func toGenResponse(entry models.GenEntry) api.GenEntryResponse {
	return api.GenEntryResponse{
		ID:        entry.ID,
		Timestamp: entry.Timestamp.Format(time.RFC3339),
		Type:      string(entry.Type),
		Data:      entry.Data,
		Size:      entry.Size,
		QRURL:     entry.QRURL,
		Details:   entry.Details,
	}
}
