package assets

import (
	"image"
	"image/color"

	"go-space-invaders/internal/config"
)

// Image рисует битмап в RGBA один к одному: пиксель '#' получает цвет clr,
// остальные прозрачные. Масштабирование — забота рендера.
func Image(k Kind, frame int, clr color.Color) *image.RGBA {
	bm := Bitmap(k, frame)
	if len(bm) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	img := image.NewRGBA(image.Rect(0, 0, len(bm[0]), len(bm)))
	for y, row := range bm {
		for x, px := range row {
			if px == '#' {
				img.Set(x, y, clr)
			}
		}
	}
	return img
}

// Color — цвет заливки спрайта вида k.
func Color(k Kind) color.RGBA {
	switch k {
	case KindPlayerShip:
		return config.PlayerShipColor
	case KindPlayerBullet:
		return config.PlayerBulletColor
	case KindEnemyBullet:
		return config.EnemyBulletColor
	case KindEnemyTier1, KindEnemyTier2, KindEnemyTier3, KindEnemyTier4:
		return config.EnemyTierColors[int(k-KindEnemyTier1)]
	case KindExplosion:
		return config.ExplosionColor
	}
	return config.TextLightColor
}
