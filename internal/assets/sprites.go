// internal/assets/sprites.go
package assets

import (
	"fmt"

	"go-space-invaders/internal/config"
)

// Kind — тип визуального образа (спрайта).
type Kind int

const (
	KindPlayerShip Kind = iota
	KindPlayerBullet
	KindEnemyBullet
	KindEnemyTier1
	KindEnemyTier2
	KindEnemyTier3
	KindEnemyTier4
	KindExplosion
)

func (k Kind) String() string {
	switch k {
	case KindPlayerShip:
		return "player_ship"
	case KindPlayerBullet:
		return "player_bullet"
	case KindEnemyBullet:
		return "enemy_bullet"
	case KindEnemyTier1, KindEnemyTier2, KindEnemyTier3, KindEnemyTier4:
		return fmt.Sprintf("enemy_tier%d", int(k-KindEnemyTier1)+1)
	case KindExplosion:
		return "explosion"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// EnemyKind возвращает вид спрайта для уровня врага; неизвестный уровень
// считается первым.
func EnemyKind(tier int) Kind {
	if tier < 1 || tier > 4 {
		tier = 1
	}
	return KindEnemyTier1 + Kind(tier-1)
}

// Битмапы: '#' — закрашенный пиксель, всё остальное — прозрачный.
// У врагов и взрыва два кадра, у остальных один.
var bitmaps = map[Kind][][]string{
	KindPlayerShip: {{
		"......##......",
		".....####.....",
		".....####.....",
		".############.",
		"##############",
		"##############",
		"##############",
		"##############",
	}},
	KindPlayerBullet: {{
		"##",
		"##",
		"##",
		"##",
		"##",
	}},
	KindEnemyBullet: {{
		"#.",
		".#",
		"#.",
		".#",
		"#.",
	}},
	KindEnemyTier1: {{
		"....####....",
		".##########.",
		"############",
		"###..##..###",
		"############",
		"...##..##...",
		"..##.##.##..",
		"##........##",
	}, {
		"....####....",
		".##########.",
		"############",
		"###..##..###",
		"############",
		"..###..###..",
		".##..##..##.",
		"..##....##..",
	}},
	KindEnemyTier2: {{
		"..#......#..",
		"...#....#...",
		"..########..",
		".##.####.##.",
		"############",
		"#.########.#",
		"#.#......#.#",
		"...##..##...",
	}, {
		"..#......#..",
		"#..#....#..#",
		"#.########.#",
		"###.####.###",
		"############",
		".##########.",
		"..#......#..",
		".#........#.",
	}},
	KindEnemyTier3: {{
		".....##.....",
		"....####....",
		"...######...",
		"..##.##.##..",
		"..########..",
		"....#..#....",
		"...#.##.#...",
		"..#.#..#.#..",
	}, {
		".....##.....",
		"....####....",
		"...######...",
		"..##.##.##..",
		"..########..",
		".....##.....",
		"....#..#....",
		".....#.#....",
	}},
	KindEnemyTier4: {{
		"...######...",
		".##########.",
		"###.####.###",
		"############",
		"..###..###..",
		".##..##..##.",
		"##........##",
		".#........#.",
	}, {
		"...######...",
		".##########.",
		"###.####.###",
		"############",
		"..###..###..",
		"..#.####.#..",
		".#........#.",
		"#..........#",
	}},
	KindExplosion: {{
		"....#..#....",
		".#..#..#..#.",
		"..#......#..",
		"...#.##.#...",
		"##..####..##",
		"...#.##.#...",
		"..#......#..",
		".#..#..#..#.",
	}, {
		"#....#.....#",
		"..#......#..",
		"...........#",
		"#...........",
		"..........#.",
		".#..........",
		"..#...#..#..",
		"#.....#....#",
	}},
}

// Bitmap возвращает битмап кадра frame для вида k. Кадр берётся по модулю
// числа кадров.
func Bitmap(k Kind, frame int) []string {
	frames, ok := bitmaps[k]
	if !ok || len(frames) == 0 {
		return nil
	}
	if frame < 0 {
		frame = -frame
	}
	return frames[frame%len(frames)]
}

// Frames — число кадров анимации вида k.
func Frames(k Kind) int {
	return len(bitmaps[k])
}

// Size — размер спрайта в единицах игрового поля, выводится из битмапа.
func Size(k Kind) (width, height float64) {
	bm := Bitmap(k, 0)
	if len(bm) == 0 {
		return 0, 0
	}
	return float64(len(bm[0])) * config.PixelScale, float64(len(bm)) * config.PixelScale
}
