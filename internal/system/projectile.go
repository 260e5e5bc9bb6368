// internal/system/projectile.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/interfaces"
)

// PlayerBulletSystem — пул снарядов игрока фиксированного размера и
// счётчик перезарядки.
type PlayerBulletSystem struct {
	bullets         []*component.Bullet
	cooldown        int
	eventDispatcher *event.Dispatcher
}

// NewPlayerBulletSystem создаёт size неактивных снарядов и добавляет их на
// playfield. Перезарядка изначально готова.
func NewPlayerBulletSystem(playfield interfaces.Playfield, size int, eventDispatcher *event.Dispatcher) *PlayerBulletSystem {
	s := &PlayerBulletSystem{
		bullets:         make([]*component.Bullet, 0, size),
		cooldown:        config.FireCooldownTicks,
		eventDispatcher: eventDispatcher,
	}
	for i := 0; i < size; i++ {
		b := component.NewBullet(component.OwnerPlayer)
		playfield.AddSprite(b.Sprite())
		s.bullets = append(s.bullets, b)
	}
	return s
}

// Update продвигает летящие снаряды вверх и гасит те, что дошли до
// верхнего края. Счётчик перезарядки растёт на каждый тик.
func (s *PlayerBulletSystem) Update() {
	s.cooldown++
	for _, b := range s.bullets {
		if !b.Active() {
			continue
		}
		b.MoveUp()
		if b.Y() <= 0 {
			b.Deactivate()
		}
	}
}

// Fire выпускает первый свободный снаряд над центром корабля. Ничего не
// делает, пока идёт перезарядка или все слоты заняты.
func (s *PlayerBulletSystem) Fire(ship *component.PlayerShip) bool {
	if s.cooldown < config.FireCooldownTicks {
		return false
	}
	for _, b := range s.bullets {
		if b.Active() {
			continue
		}
		b.Activate(
			ship.X()+0.5*ship.Width()-0.5*b.Width(),
			ship.Y()-b.Height(),
		)
		s.cooldown = 0
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerFired, Data: b})
		return true
	}
	return false
}

// Bullets возвращает слоты пула по порядку.
func (s *PlayerBulletSystem) Bullets() []*component.Bullet {
	return s.bullets
}

// Cooldown — тиков с последнего выстрела.
func (s *PlayerBulletSystem) Cooldown() int {
	return s.cooldown
}
