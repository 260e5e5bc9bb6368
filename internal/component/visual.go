// internal/component/visual.go
package component

import "go-space-invaders/internal/assets"

// Sprite — абстрактный визуальный образ сущности. Ядро меняет только
// координаты и видимость, отрисовкой занимается внешний слой.
type Sprite struct {
	Kind    assets.Kind
	Frame   int
	X, Y    float64
	Width   float64
	Height  float64
	Visible bool
}

// NewSprite создаёт видимый спрайт, размер берётся из битмапа.
func NewSprite(kind assets.Kind, frame int) *Sprite {
	w, h := assets.Size(kind)
	return &Sprite{Kind: kind, Frame: frame, Width: w, Height: h, Visible: true}
}

func (s *Sprite) Show() { s.Visible = true }
func (s *Sprite) Hide() { s.Visible = false }

// Text — текстовый элемент экрана (счёт, жизни, сообщение).
type Text struct {
	Value   string
	X, Y    float64
	Visible bool
}

// NewText создаёт видимый текст в точке (x, y).
func NewText(value string, x, y float64) *Text {
	return &Text{Value: value, X: x, Y: y, Visible: true}
}
