// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480

	TickInterval = 10 * time.Millisecond // один шаг симуляции
	MaxDeltaTime = 0.06                  // секунды, больше за кадр не догоняем

	StartingLives        = 3
	FireCooldownTicks    = 10 // тиков между выстрелами игрока
	PlayerBulletPoolSize = 3
	PlayerShipBottomGap  = 30.0

	FormationReversalSteps = 20
	FormationInitialSteps  = 10 // первый проход вдвое короче, строй качается вокруг центра
	FormationRowSpacing    = 20.0
	EnemyShotOdds          = 101 // выстрел, когда rng.Intn(EnemyShotOdds) == EnemyShotHit
	EnemyShotHit           = 1
	ExplosionTicks         = 24 // сколько тиков держится взрыв, кадр меняется на середине

	BulletSpeedX     = 0.0
	BulletSpeedY     = 12.0
	EnemyShipSpeedX  = 3.0
	EnemyShipSpeedY  = 0.0
	PlayerShipSpeedX = 5.0
	PlayerShipSpeedY = 0.0

	PixelScale = 2.0 // один пиксель битмапа спрайта в единицах игрового поля

	ScoreTextX        = 25.0
	ScoreTextY        = 4.0
	LivesTextY        = 4.0
	LivesTextRightGap = 90.0

	MessageWon  = "GAME OVER!\nYou won!\n"
	MessageLost = "GAME OVER!\nYou lost!\n"
)

// TicksPerSecond — частота обновления для ebiten.SetTPS.
func TicksPerSecond() int {
	return int(time.Second / TickInterval)
}

var (
	BackgroundColor   = color.RGBA{8, 8, 20, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	PlayerShipColor   = color.RGBA{60, 220, 90, 255}
	PlayerBulletColor = color.RGBA{250, 250, 120, 255}
	EnemyBulletColor  = color.RGBA{255, 90, 60, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
	LivesIconColor    = color.RGBA{60, 220, 90, 255}
	ExplosionColor    = color.RGBA{255, 220, 120, 255}

	// Цвета врагов по уровню (индекс = tier-1)
	EnemyTierColors = []color.RGBA{
		{200, 200, 255, 255}, // tier 1
		{120, 200, 255, 255}, // tier 2
		{255, 170, 60, 255},  // tier 3
		{240, 60, 200, 255},  // tier 4
	}
)
