// pkg/render/fonts.go
package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// Fonts — набор шрифтов интерфейса.
type Fonts struct {
	HUD   font.Face // счёт, жизни, сообщение о конце игры
	Title font.Face // заставка и пауза
}

// LoadFonts собирает шрифты из встроенного gomono. Если TTF не разобрался,
// возвращает basicfont как запасной вариант вместе с ошибкой.
func LoadFonts(hudSize, titleSize float64) (*Fonts, error) {
	fallback := &Fonts{HUD: basicfont.Face7x13, Title: basicfont.Face7x13}

	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return fallback, fmt.Errorf("failed to parse font: %w", err)
	}
	hud, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    hudSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fallback, fmt.Errorf("failed to create HUD font face: %w", err)
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    titleSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fallback, fmt.Errorf("failed to create title font face: %w", err)
	}
	return &Fonts{HUD: hud, Title: title}, nil
}
