// internal/ui/message_box.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MessageBox — затемнение экрана с заголовком и подсказкой по центру.
// Используется заставкой и паузой.
type MessageBox struct {
	Width, Height int
	Backdrop      color.RGBA
	TextColor     color.RGBA
	titleFace     font.Face
	hintFace      font.Face
}

func NewMessageBox(width, height int, titleFace, hintFace font.Face, backdrop, textColor color.RGBA) *MessageBox {
	return &MessageBox{
		Width:     width,
		Height:    height,
		Backdrop:  backdrop,
		TextColor: textColor,
		titleFace: titleFace,
		hintFace:  hintFace,
	}
}

// Draw рисует title по центру, hint строкой ниже. Пустой hint пропускается.
func (m *MessageBox) Draw(screen *ebiten.Image, title, hint string) {
	if m.Backdrop.A > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(m.Width), float32(m.Height), m.Backdrop, false)
	}

	titleBounds := text.BoundString(m.titleFace, title)
	titleX := (m.Width - titleBounds.Dx()) / 2
	titleY := m.Height / 2
	text.Draw(screen, title, m.titleFace, titleX, titleY, m.TextColor)

	if hint == "" {
		return
	}
	hintBounds := text.BoundString(m.hintFace, hint)
	hintX := (m.Width - hintBounds.Dx()) / 2
	hintY := titleY + m.hintFace.Metrics().Height.Ceil()*2
	text.Draw(screen, hint, m.hintFace, hintX, hintY, m.TextColor)
}
