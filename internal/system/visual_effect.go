// internal/system/visual_effect.go
package system

import (
	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/interfaces"
)

type explosion struct {
	sprite *component.Sprite
	ticks  int // осталось тиков
}

// VisualEffectSystem управляет короткими взрывами на месте сбитых кораблей.
// Спрайты переиспользуются: погасший взрыв занимает следующий.
type VisualEffectSystem struct {
	playfield interfaces.Playfield
	effects   []*explosion
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(playfield interfaces.Playfield) *VisualEffectSystem {
	return &VisualEffectSystem{playfield: playfield}
}

// SpawnExplosion показывает взрыв с центром в (centerX, centerY)
func (s *VisualEffectSystem) SpawnExplosion(centerX, centerY float64) {
	e := s.free()
	if e == nil {
		e = &explosion{sprite: component.NewSprite(assets.KindExplosion, 0)}
		s.effects = append(s.effects, e)
		s.playfield.AddSprite(e.sprite)
	}
	e.ticks = config.ExplosionTicks
	e.sprite.Frame = 0
	e.sprite.X = centerX - e.sprite.Width/2
	e.sprite.Y = centerY - e.sprite.Height/2
	e.sprite.Show()
}

func (s *VisualEffectSystem) free() *explosion {
	for _, e := range s.effects {
		if e.ticks <= 0 {
			return e
		}
	}
	return nil
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update() {
	for _, e := range s.effects {
		if e.ticks <= 0 {
			continue
		}
		e.ticks--
		if e.ticks == 0 {
			e.sprite.Hide()
			continue
		}
		if e.ticks <= config.ExplosionTicks/2 {
			e.sprite.Frame = 1
		}
	}
}

// Clear гасит все взрывы сразу
func (s *VisualEffectSystem) Clear() {
	for _, e := range s.effects {
		e.ticks = 0
		e.sprite.Hide()
	}
}

// Active — число горящих взрывов.
func (s *VisualEffectSystem) Active() int {
	n := 0
	for _, e := range s.effects {
		if e.ticks > 0 {
			n++
		}
	}
	return n
}
