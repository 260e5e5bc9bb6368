package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
)

type fakePlayfield struct {
	sprites []*component.Sprite
	texts   []*component.Text
}

func (p *fakePlayfield) AddSprite(s *component.Sprite) { p.sprites = append(p.sprites, s) }
func (p *fakePlayfield) AddText(t *component.Text)     { p.texts = append(p.texts, t) }

// randFunc — Randomizer из функции; запоминает запрошенные n.
type randFunc struct {
	fn    func(n int) int
	calls []int
}

func (r *randFunc) Intn(n int) int {
	r.calls = append(r.calls, n)
	return r.fn(n)
}

// neverFire никогда не выпадает выстрел.
func neverFire() *randFunc {
	return &randFunc{fn: func(int) int { return 0 }}
}

// alwaysFire выпадает выстрел каждый тик, стрелок — с индексом pick.
func alwaysFire(pick int) *randFunc {
	return &randFunc{fn: func(n int) int {
		if n == config.EnemyShotOdds {
			return config.EnemyShotHit
		}
		return pick
	}}
}

// bulletOver возвращает активный снаряд игрока прямо над target.
func bulletOver(target component.Collider) *component.Bullet {
	b := component.NewBullet(component.OwnerPlayer)
	r := target.Bounds()
	b.Activate(r.X+1, r.Y+1)
	return b
}
