package capture

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropFraction(t *testing.T) {
	// Широкие экраны используют меньшую относительную рамку
	assert.Equal(t, 0.45, CropFraction(1920))
	assert.Equal(t, 0.45, CropFraction(768))
	assert.Equal(t, 0.65, CropFraction(767))
	assert.Equal(t, 0.65, CropFraction(375))
}

func TestCenterCropRect(t *testing.T) {
	tests := []struct {
		name     string
		bounds   image.Rectangle
		fraction float64
		want     image.Rectangle
	}{
		{
			name:     "landscape frame",
			bounds:   image.Rect(0, 0, 1280, 720),
			fraction: 0.5,
			// сторона = 720 * 0.5 = 360, по центру
			want: image.Rect(460, 180, 820, 540),
		},
		{
			name:     "portrait frame",
			bounds:   image.Rect(0, 0, 720, 1280),
			fraction: 0.5,
			want:     image.Rect(180, 460, 540, 820),
		},
		{
			name:     "square frame full fraction",
			bounds:   image.Rect(0, 0, 100, 100),
			fraction: 1.0,
			want:     image.Rect(0, 0, 100, 100),
		},
		{
			name:     "offset bounds",
			bounds:   image.Rect(10, 10, 110, 110),
			fraction: 0.5,
			want:     image.Rect(35, 35, 85, 85),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CenterCropRect(tt.bounds, tt.fraction)
			assert.Equal(t, tt.want, got)
			// Область всегда квадратная
			assert.Equal(t, got.Dx(), got.Dy())
		})
	}
}

func TestCenterCropRect_TinyFrame(t *testing.T) {
	got := CenterCropRect(image.Rect(0, 0, 1, 1), 0.45)
	assert.Equal(t, 1, got.Dx())
	assert.Equal(t, 1, got.Dy())
}

func TestCenterCrop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))

	crop := CenterCrop(img, 0.5)

	assert.Equal(t, 50, crop.Bounds().Dx())
	assert.Equal(t, 50, crop.Bounds().Dy())
	// Вырез начинается с нуля, готов к кодированию
	assert.Equal(t, image.Pt(0, 0), crop.Bounds().Min)
}

func TestEncodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	data, err := EncodePNG(img)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 10, decoded.Bounds().Dx())
}
