package models

// Customization представляет настройки внешнего вида генерируемого QR кода.
// Поля EyeStyle/HasLogo/LogoURL/LogoSize зарезервированы формой оригинального UI,
// но remote encode endpoint их не поддерживает.
type Customization struct {
	ForegroundColor string `json:"foregroundColor"` // цвет модулей, hex с #
	BackgroundColor string `json:"backgroundColor"` // цвет фона, hex с #
	Margin          string `json:"margin"`          // отступ: "0", "1", "4" или "8"
	EyeStyle        string `json:"eyeStyle"`        // placeholder, не передается endpoint
	LogoURL         string `json:"logoUrl"`         // placeholder
	LogoSize        string `json:"logoSize"`        // placeholder
	HasMargin       bool   `json:"hasMargin"`       // производное: Margin != "0"
	IsTransparent   bool   `json:"isTransparent"`   // прозрачный фон вместо BackgroundColor
	HasLogo         bool   `json:"hasLogo"`         // placeholder
}

// DefaultCustomization возвращает настройки по умолчанию
func DefaultCustomization() Customization {
	return Customization{
		ForegroundColor: "#000000",
		BackgroundColor: "#FFFFFF",
		Margin:          "1",
		HasMargin:       true,
		IsTransparent:   false,
		EyeStyle:        "square",
		HasLogo:         false,
		LogoURL:         "",
		LogoSize:        "20",
	}
}

// Reset возвращает настройки к фиксированным значениям сброса.
// Оригинальный UI при сбросе ставит margin "4", а не начальное "1".
func (c *Customization) Reset() {
	*c = DefaultCustomization()
	c.SetMargin("4")
}

// SetMargin устанавливает отступ и пересчитывает производный флаг HasMargin
func (c *Customization) SetMargin(margin string) {
	c.Margin = margin
	c.HasMargin = margin != "0"
}

// ApplyTheme устанавливает цветовую пару и сбрасывает прозрачность
func (c *Customization) ApplyTheme(foreground, background string) {
	c.ForegroundColor = foreground
	c.BackgroundColor = background
	c.IsTransparent = false
}
