// internal/component/player.go
package component

import (
	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
)

// PlayerShip — корабль игрока, ходит только по горизонтали. Стрельбой и
// жизнями управляет app.Game.
type PlayerShip struct {
	GameObject
}

func NewPlayerShip() *PlayerShip {
	p := &PlayerShip{GameObject: newGameObject(NewSprite(assets.KindPlayerShip, 0))}
	p.SetSpeed(config.PlayerShipSpeedX, config.PlayerShipSpeedY)
	return p
}

// Hide прячет корабль (после последнего попадания).
func (p *PlayerShip) Hide() { p.Sprite().Hide() }
