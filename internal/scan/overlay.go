package scan

import (
	"image"
	"math"
)

// Rect прямоугольник в координатах отображения (CSS пиксели в браузере,
// знакоместа в терминале). Дробные значения сохраняются: округление —
// забота отрисовки.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Line отрезок уголка рамки в координатах отображения
type Line struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Overlay декларативное описание прицельной рамки поверх видимой области.
// Ядро только вычисляет геометрию; слой отрисовки затемняет Viewport,
// очищает Window и обводит рамку с уголками.
type Overlay struct {
	Corners     []Line  `json:"corners"`      // восемь отрезков, по два на уголок
	Viewport    Rect    `json:"viewport"`     // вся видимая область (затемняется)
	Window      Rect    `json:"window"`       // прозрачное окно над областью захвата
	BorderWidth float64 `json:"border_width"` // толщина рамки окна
	CornerWidth float64 `json:"corner_width"` // толщина уголков
	CornerLen   float64 `json:"corner_len"`   // длина уголков
}

// BuildOverlay отображает область захвата из нативных пикселей кадра в
// координаты отображения. Кадр показывается в режиме object-cover:
// масштаб — больший из двух, выступающие края обрезаются, отсюда
// отрицательные offset. Пересчитывается на каждом tick, потому что
// отображаемый размер меняется независимо от нативного разрешения потока.
func BuildOverlay(nativeW, nativeH, displayW, displayH int, crop image.Rectangle) Overlay {
	scaleX := float64(displayW) / float64(nativeW)
	scaleY := float64(displayH) / float64(nativeH)
	scale := math.Max(scaleX, scaleY)

	shownW := float64(nativeW) * scale
	shownH := float64(nativeH) * scale
	offsetX := (float64(displayW) - shownW) / 2
	offsetY := (float64(displayH) - shownH) / 2

	windowSize := float64(crop.Dx()) * scale
	windowX := offsetX + float64(crop.Min.X)*scale
	windowY := offsetY + float64(crop.Min.Y)*scale

	minDisplay := math.Min(float64(displayW), float64(displayH))
	borderWidth := math.Max(3, math.Round(minDisplay*0.004))
	cornerWidth := math.Max(4, math.Round(borderWidth*1.2))
	cornerLen := math.Max(25, windowSize*0.1)

	window := Rect{X: windowX, Y: windowY, W: windowSize, H: windowSize}

	return Overlay{
		Viewport:    Rect{X: 0, Y: 0, W: float64(displayW), H: float64(displayH)},
		Window:      window,
		BorderWidth: borderWidth,
		CornerWidth: cornerWidth,
		CornerLen:   cornerLen,
		Corners:     cornerLines(window, cornerLen),
	}
}

// cornerLines строит четыре уголка рамки: по вертикальному и горизонтальному
// отрезку на каждый угол окна.
func cornerLines(w Rect, l float64) []Line {
	x2 := w.X + w.W
	y2 := w.Y + w.H

	return []Line{
		// верхний левый
		{X1: w.X, Y1: w.Y + l, X2: w.X, Y2: w.Y},
		{X1: w.X, Y1: w.Y, X2: w.X + l, Y2: w.Y},
		// верхний правый
		{X1: x2, Y1: w.Y + l, X2: x2, Y2: w.Y},
		{X1: x2 - l, Y1: w.Y, X2: x2, Y2: w.Y},
		// нижний левый
		{X1: w.X, Y1: y2 - l, X2: w.X, Y2: y2},
		{X1: w.X, Y1: y2, X2: w.X + l, Y2: y2},
		// нижний правый
		{X1: x2, Y1: y2 - l, X2: x2, Y2: y2},
		{X1: x2 - l, Y1: y2, X2: x2, Y2: y2},
	}
}
