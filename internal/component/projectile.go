// internal/component/projectile.go
package component

import (
	"fmt"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
)

// BulletOwner — кто выпустил снаряд.
type BulletOwner int

const (
	OwnerPlayer BulletOwner = iota
	OwnerEnemy
)

// Collider — всё, у чего есть ограничивающий прямоугольник.
type Collider interface {
	Bounds() Rect
}

// Bullet представляет снаряд. Снаряды не уничтожаются: слот пула
// переиспользуется переключением видимости. Направление выбирает
// вызывающий (MoveUp для игрока, MoveDown для врага).
type Bullet struct {
	GameObject
	owner BulletOwner
}

// NewBullet создаёт неактивный снаряд нужного владельца.
func NewBullet(owner BulletOwner) *Bullet {
	kind := assets.KindPlayerBullet
	if owner == OwnerEnemy {
		kind = assets.KindEnemyBullet
	}
	sprite := NewSprite(kind, 0)
	sprite.Hide()

	b := &Bullet{GameObject: newGameObject(sprite), owner: owner}
	b.SetSpeed(config.BulletSpeedX, config.BulletSpeedY)
	return b
}

func (b *Bullet) Owner() BulletOwner { return b.owner }

// Active — снаряд в полёте (его спрайт виден).
func (b *Bullet) Active() bool { return b.Visible() }

// Activate ставит снаряд в (x, y) и делает его видимым.
func (b *Bullet) Activate(x, y float64) {
	b.SetPosition(x, y)
	b.Sprite().Show()
}

// Deactivate прячет снаряд, слот снова свободен.
func (b *Bullet) Deactivate() { b.Sprite().Hide() }

// CheckForCollision проверяет попадание в target. Скрытый снаряд ни во что
// не попадает. При попадании снаряд сразу гасится, поэтому одним снарядом
// можно засчитать только одну цель. Паника на nil target: это ошибка
// вызывающего кода.
func (b *Bullet) CheckForCollision(target Collider) bool {
	if target == nil {
		panic(fmt.Errorf("%w: collision target is nil", ErrInvalidArgument))
	}
	if !b.Active() {
		return false
	}
	if !b.Bounds().Overlaps(target.Bounds()) {
		return false
	}
	b.Deactivate()
	return true
}
