// internal/component/enemy.go
package component

import (
	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
)

// EnemyShip — вражеский корабль. Очки и способность стрелять задаются
// уровнем при создании. Два кадра чередуются в Animate.
type EnemyShip struct {
	GameObject
	tier       int
	pointValue int
	canShoot   bool
	frame      int
}

// NewEnemyShip создаёт корабль уровня tier (1 — самый слабый, 4 — самый
// сильный). Неизвестный уровень считается первым.
func NewEnemyShip(tier int) *EnemyShip {
	def := defs.EnemyTier(tier)
	kind := assets.EnemyKind(def.Tier)

	first := NewSprite(kind, 0)
	second := NewSprite(kind, 1)
	second.Hide()

	e := &EnemyShip{
		GameObject: newGameObject(first, second),
		tier:       def.Tier,
		pointValue: def.PointValue,
		canShoot:   def.CanShoot,
	}
	e.SetSpeed(config.EnemyShipSpeedX, config.EnemyShipSpeedY)
	return e
}

func (e *EnemyShip) Tier() int       { return e.tier }
func (e *EnemyShip) PointValue() int { return e.pointValue }
func (e *EnemyShip) CanShoot() bool  { return e.canShoot }

// Frame — индекс видимого сейчас кадра (0 или 1).
func (e *EnemyShip) Frame() int { return e.frame }

// Animate переключает видимый кадр (шаг анимации ходьбы).
func (e *EnemyShip) Animate() {
	sprites := e.Sprites()
	sprites[e.frame].Hide()
	e.frame = 1 - e.frame
	sprites[e.frame].Show()
}

// Hide прячет оба кадра. Вызывается, когда корабль сбит.
func (e *EnemyShip) Hide() {
	for _, s := range e.Sprites() {
		s.Hide()
	}
}
