// pkg/render/color.go
package render

import "image/color"

// Palette — цвета, которые рендер берёт не из спрайтов.
type Palette struct {
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	ShadowColor     color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
