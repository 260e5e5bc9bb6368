// internal/interfaces/playfield.go
package interfaces

import "go-space-invaders/internal/component"

// Playfield — контейнер визуальных элементов, которым владеет слой
// отображения. Ядро только добавляет туда спрайты и тексты.
type Playfield interface {
	AddSprite(s *component.Sprite)
	AddText(t *component.Text)
}

// Randomizer — источник случайных чисел в диапазоне [0, n).
type Randomizer interface {
	Intn(n int) int
}
