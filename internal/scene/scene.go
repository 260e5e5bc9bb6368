// internal/scene/scene.go
package scene

import "go-space-invaders/internal/component"

// Scene — список визуальных элементов игрового поля в порядке добавления.
// Реализует interfaces.Playfield; оба фронтенда рисуют из него.
type Scene struct {
	Width, Height float64

	sprites []*component.Sprite
	texts   []*component.Text
}

func New(width, height float64) *Scene {
	return &Scene{Width: width, Height: height}
}

func (s *Scene) AddSprite(sp *component.Sprite) {
	if sp == nil {
		return
	}
	s.sprites = append(s.sprites, sp)
}

func (s *Scene) AddText(t *component.Text) {
	if t == nil {
		return
	}
	s.texts = append(s.texts, t)
}

// Sprites возвращает все спрайты, включая скрытые.
func (s *Scene) Sprites() []*component.Sprite { return s.sprites }
func (s *Scene) Texts() []*component.Text     { return s.texts }

// EachVisible вызывает fn для каждого видимого спрайта в порядке добавления.
func (s *Scene) EachVisible(fn func(sp *component.Sprite)) {
	for _, sp := range s.sprites {
		if sp.Visible {
			fn(sp)
		}
	}
}

// Clear убирает всё (перед новой партией).
func (s *Scene) Clear() {
	s.sprites = nil
	s.texts = nil
}
