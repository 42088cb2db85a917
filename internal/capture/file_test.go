package capture

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG пишет маленький PNG во временный каталог
func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestReadImageFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "qr.png")

	data, err := ReadImageFile(path, 5*1024*1024)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestReadImageFile_NotImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not an image"), 0o600))

	_, err := ReadImageFile(path, 5*1024*1024)
	require.ErrorIs(t, err, ErrNotImage)
}

func TestReadImageFile_TooLarge(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "qr.png")

	_, err := ReadImageFile(path, 10) // лимит меньше любого PNG
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestReadImageFile_Missing(t *testing.T) {
	_, err := ReadImageFile(filepath.Join(t.TempDir(), "missing.png"), 1024)
	require.Error(t, err)
}

func TestFileSource_ServesExactlyOneFrame(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "qr.png")

	src, err := NewFileSource(path, 5*1024*1024)
	require.NoError(t, err)
	defer src.Close()

	ctx := context.Background()

	frame, err := src.Frame(ctx)
	require.NoError(t, err)
	assert.Equal(t, 16, frame.Bounds().Dx())

	// Файл — ровно один кадр
	_, err = src.Frame(ctx)
	require.ErrorIs(t, err, ErrNoFrame)
}

func TestFileSource_CloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "qr.png")

	src, err := NewFileSource(path, 5*1024*1024)
	require.NoError(t, err)

	require.NoError(t, src.Close())
	require.NoError(t, src.Close())

	_, err = src.Frame(context.Background())
	require.ErrorIs(t, err, ErrSourceClosed)
}
