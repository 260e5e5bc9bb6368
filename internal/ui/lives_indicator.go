// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LivesIndicator рисует оставшиеся жизни маленькими силуэтами корабля.
type LivesIndicator struct {
	X, Y    float32
	Size    float32 // ширина одного значка
	Spacing float32
	Color   color.RGBA
}

func NewLivesIndicator(x, y, size float32, clr color.RGBA) *LivesIndicator {
	return &LivesIndicator{
		X:       x,
		Y:       y,
		Size:    size,
		Spacing: size / 2,
		Color:   clr,
	}
}

// Draw отрисовывает lives значков слева направо
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives int) {
	for n := 0; n < lives; n++ {
		x := i.X + float32(n)*(i.Size+i.Spacing)
		i.drawIcon(screen, x, i.Y)
	}
}

// Силуэт: пушка сверху, корпус снизу
func (i *LivesIndicator) drawIcon(screen *ebiten.Image, x, y float32) {
	s := i.Size
	vector.DrawFilledRect(screen, x+s*0.4, y, s*0.2, s*0.25, i.Color, false)
	vector.DrawFilledRect(screen, x+s*0.1, y+s*0.25, s*0.8, s*0.1, i.Color, false)
	vector.DrawFilledRect(screen, x, y+s*0.35, s, s*0.25, i.Color, false)
}
