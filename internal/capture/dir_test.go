package capture

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirSource_MissingDirectory(t *testing.T) {
	_, err := NewDirSource(filepath.Join(t.TempDir(), "missing"), 5*1024*1024)
	require.Error(t, err)
}

func TestNewDirSource_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "qr.png")

	_, err := NewDirSource(path, 5*1024*1024)
	require.Error(t, err)
}

func TestDirSource_EmptyDirectory(t *testing.T) {
	src, err := NewDirSource(t.TempDir(), 5*1024*1024)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Frame(context.Background())
	require.ErrorIs(t, err, ErrNoFrame)
}

func TestDirSource_ReturnsNewestFrame(t *testing.T) {
	dir := t.TempDir()

	old := writeTestPNG(t, dir, "frame-001.png")
	// Свежий кадр отличим по размерам
	newest := filepath.Join(dir, "frame-002.png")
	writeSizedPNG(t, newest, 48, 48)

	past := time.Now().Add(-time.Minute)
	require.NoError(t, os.Chtimes(old, past, past))
	now := time.Now()
	require.NoError(t, os.Chtimes(newest, now, now))

	src, err := NewDirSource(dir, 5*1024*1024)
	require.NoError(t, err)
	defer src.Close()

	frame, err := src.Frame(context.Background())
	require.NoError(t, err)
	require.NotNil(t, frame)
	assert.Equal(t, 48, frame.Bounds().Dx())
}

func TestDirSource_RepeatedFrameSameFile(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "frame.png")

	src, err := NewDirSource(dir, 5*1024*1024)
	require.NoError(t, err)
	defer src.Close()

	// Неизменный кадр выдается повторно: следующий tick имеет право
	// на новую попытку декодирования той же сцены
	for i := 0; i < 3; i++ {
		frame, err := src.Frame(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, frame)
	}
}

// writeSizedPNG пишет PNG заданных размеров
func writeSizedPNG(t *testing.T, path string, w, h int) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
}

func TestDirSource_IgnoresNonImageFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("text"), 0o600))

	src, err := NewDirSource(dir, 5*1024*1024)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Frame(context.Background())
	require.ErrorIs(t, err, ErrNoFrame)
}

func TestDirSource_CloseIdempotent(t *testing.T) {
	src, err := NewDirSource(t.TempDir(), 5*1024*1024)
	require.NoError(t, err)

	require.NoError(t, src.Close())
	require.NoError(t, src.Close())

	_, err = src.Frame(context.Background())
	require.ErrorIs(t, err, ErrSourceClosed)
}
