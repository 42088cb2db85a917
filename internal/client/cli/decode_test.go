package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/qrbox/internal/qrapi"
)

func TestCli_runDecode_Success(t *testing.T) {
	ctx := context.Background()
	path := writeTestPNG(t, t.TempDir())

	mockCodec := &qrapi.CodecMock{
		DecodeFunc: func(ctx context.Context, imageData []byte) (string, error) {
			assert.NotEmpty(t, imageData)
			return "https://example.com", nil
		},
	}

	out := &output{}
	store := newTestStorage()
	cli := newTestCli(newCaptureIO(out), mockCodec, store)

	err := cli.runDecode(ctx, []string{path})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "https://example.com")
	assert.Contains(t, out.String(), "URL")
	assert.Contains(t, out.String(), "QR Code saved to history")

	// Результат сброшен в хранилище до выхода из команды
	require.Len(t, store.SaveScansCalls(), 1)
	assert.Equal(t, "https://example.com", store.SaveScansCalls()[0].Entries[0].Data)
}

func TestCli_runDecode_NoQRFound(t *testing.T) {
	ctx := context.Background()
	path := writeTestPNG(t, t.TempDir())

	mockCodec := &qrapi.CodecMock{
		DecodeFunc: func(ctx context.Context, imageData []byte) (string, error) {
			return "", qrapi.ErrNoQRFound
		},
	}

	out := &output{}
	cli := newTestCli(newCaptureIO(out), mockCodec, newTestStorage())

	err := cli.runDecode(ctx, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no QR code found")
}

func TestCli_runDecode_MissingArgument(t *testing.T) {
	out := &output{}
	cli := newTestCli(newCaptureIO(out), &qrapi.CodecMock{}, newTestStorage())

	err := cli.runDecode(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing image path")
}

func TestCli_runDecode_NotAnImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not an image at all"), 0o600))

	out := &output{}
	cli := newTestCli(newCaptureIO(out), &qrapi.CodecMock{}, newTestStorage())

	err := cli.runDecode(context.Background(), []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an image")
}
