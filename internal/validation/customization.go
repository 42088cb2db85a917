package validation

import (
	"fmt"
	"regexp"
	"strconv"
)

// HexColorPattern определяет допустимый формат цвета:
// шесть шестнадцатеричных цифр, ведущий # опционален
var HexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

const (
	// MinImageSize минимальный размер изображения в пикселях
	MinImageSize = 50
	// MaxImageSize максимальный размер изображения в пикселях
	MaxImageSize = 1000
	// MaxMargin максимальный отступ quiet zone в модулях
	MaxMargin = 50
)

// ValidateColor проверяет что цвет задан как шестизначный hex
// (с # или без). Именованные CSS цвета не принимаются: remote
// endpoint ожидает hex.
func ValidateColor(color string) error {
	if color == "" {
		return fmt.Errorf("color cannot be empty")
	}

	if !HexColorPattern.MatchString(color) {
		return fmt.Errorf("color must be a 6-digit hex value like #1A2B3C")
	}

	return nil
}

// ValidateMargin проверяет что отступ — неотрицательное целое в допустимом диапазоне
func ValidateMargin(margin string) error {
	if margin == "" {
		return fmt.Errorf("margin cannot be empty")
	}

	n, err := strconv.Atoi(margin)
	if err != nil {
		return fmt.Errorf("margin must be an integer")
	}

	if n < 0 || n > MaxMargin {
		return fmt.Errorf("margin must be between 0 and %d", MaxMargin)
	}

	return nil
}

// ValidateSize проверяет что размер изображения — целое в диапазоне,
// который принимает remote encode endpoint
func ValidateSize(size string) error {
	if size == "" {
		return fmt.Errorf("size cannot be empty")
	}

	n, err := strconv.Atoi(size)
	if err != nil {
		return fmt.Errorf("size must be an integer")
	}

	if n < MinImageSize || n > MaxImageSize {
		return fmt.Errorf("size must be between %d and %d pixels", MinImageSize, MaxImageSize)
	}

	return nil
}
