package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
)

// Breakpoint ширины отображения: на широких экранах рамка сканера
// занимает меньшую долю кадра.
const wideDisplayWidth = 768

// CropFraction возвращает долю меньшей стороны кадра под квадрат сканера
// для данной ширины отображения.
func CropFraction(displayWidth int) float64 {
	if displayWidth >= wideDisplayWidth {
		return 0.45
	}
	return 0.65
}

// CenterCropRect вычисляет квадратную область в центре кадра.
// Сторона квадрата — fraction от меньшего из измерений кадра.
// Координаты — в нативных пикселях кадра.
func CenterCropRect(bounds image.Rectangle, fraction float64) image.Rectangle {
	w := bounds.Dx()
	h := bounds.Dy()

	smaller := w
	if h < w {
		smaller = h
	}

	size := int(float64(smaller) * fraction)
	if size < 1 {
		size = 1
	}

	sx := bounds.Min.X + (w-size)/2
	sy := bounds.Min.Y + (h-size)/2

	return image.Rect(sx, sy, sx+size, sy+size)
}

// CenterCrop вырезает центральную квадратную область кадра в отдельный bitmap
func CenterCrop(img image.Image, fraction float64) image.Image {
	rect := CenterCropRect(img.Bounds(), fraction)

	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), img, rect.Min, draw.Src)
	return out
}

// EncodePNG кодирует кадр в PNG для отправки на decode endpoint
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	return buf.Bytes(), nil
}
