// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"strconv"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/utils"
)

// Game holds the whole match: player ship, bullet pool, enemy formation,
// score, lives and the per-tick update. All methods run on the single
// thread that drives the tick.
type Game struct {
	EventDispatcher *event.Dispatcher
	Rng             interfaces.Randomizer

	height, width float64
	logger        *log.Logger

	enemyManager  *system.EnemyManager
	playerBullets *system.PlayerBulletSystem
	playerShip    *component.PlayerShip
	effects       *system.VisualEffectSystem

	score     int
	lives     int
	phase     component.Phase
	playerWon bool
	ticks     int

	scoreDisplay   *component.Text
	livesDisplay   *component.Text
	messageDisplay *component.Text
}

// Option настраивает Game при создании.
type Option func(*Game)

// WithRandomizer подменяет источник случайности (по умолчанию PRNGService со случайным сидом).
func WithRandomizer(r interfaces.Randomizer) Option {
	return func(g *Game) { g.Rng = r }
}

// WithLogger задаёт логгер (по умолчанию log.Default()).
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithDispatcher задаёт общий диспетчер событий.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// NewGame creates a game for a playfield of the given size. Both sizes must
// be positive.
func NewGame(height, width float64, opts ...Option) (*Game, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: playfield height %v must be positive", component.ErrInvalidArgument, height)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: playfield width %v must be positive", component.ErrInvalidArgument, width)
	}

	g := &Game{
		height: height,
		width:  width,
		phase:  component.Playing,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(0)
	}
	if g.EventDispatcher == nil {
		g.EventDispatcher = event.NewDispatcher()
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	return g, nil
}

// InitializeGame places every entity and display element on playfield and
// resets score and lives.
func (g *Game) InitializeGame(playfield interfaces.Playfield) error {
	if playfield == nil {
		return fmt.Errorf("%w: playfield is nil", component.ErrInvalidArgument)
	}

	enemyManager, err := system.NewEnemyManager(playfield, g.height, g.width, g.Rng, g.EventDispatcher)
	if err != nil {
		return fmt.Errorf("failed to create enemy formation: %w", err)
	}
	g.enemyManager = enemyManager

	g.score = 0
	g.lives = config.StartingLives
	g.phase = component.Playing
	g.playerWon = false
	g.ticks = 0

	g.createAndPlacePlayerShip(playfield)
	g.playerBullets = system.NewPlayerBulletSystem(playfield, config.PlayerBulletPoolSize, g.EventDispatcher)
	g.effects = system.NewVisualEffectSystem(playfield)

	g.scoreDisplay = component.NewText(strconv.Itoa(g.score), config.ScoreTextX, config.ScoreTextY)
	playfield.AddText(g.scoreDisplay)

	g.livesDisplay = component.NewText(livesText(g.lives), g.width-config.LivesTextRightGap, config.LivesTextY)
	playfield.AddText(g.livesDisplay)

	g.messageDisplay = component.NewText("", g.width/3, g.height/2)
	g.messageDisplay.Visible = false
	playfield.AddText(g.messageDisplay)

	g.logger.Printf("game initialized: %d enemies, %d lives", len(g.enemyManager.Ships()), g.lives)
	return nil
}

func (g *Game) createAndPlacePlayerShip(playfield interfaces.Playfield) {
	g.playerShip = component.NewPlayerShip()
	playfield.AddSprite(g.playerShip.Sprite())

	g.playerShip.SetPosition(
		g.width/2-g.playerShip.Width()/2,
		g.height-g.playerShip.Height()-config.PlayerShipBottomGap,
	)
}

// Tick advances the simulation by one fixed step. Does nothing before
// InitializeGame and after game over.
func (g *Game) Tick() {
	if !g.running() {
		return
	}
	g.ticks++

	g.playerBullets.Update()
	g.effects.Update()
	g.enemyManager.OnTick()
	g.didPlayerBulletHitEnemy()

	if !g.enemyManager.EnemiesRemain() {
		g.gameOver(true)
		return
	}

	if g.enemyManager.EnemyBullet().CheckForCollision(g.playerShip) {
		g.playerHit()
	}
}

func (g *Game) running() bool {
	return g.enemyManager != nil && g.phase == component.Playing
}

func (g *Game) didPlayerBulletHitEnemy() {
	for _, bullet := range g.playerBullets.Bullets() {
		if points := g.enemyManager.DidPlayerBulletHitEnemy(bullet); points > 0 {
			// снаряд гаснет в точке попадания
			g.effects.SpawnExplosion(bullet.X()+bullet.Width()/2, bullet.Y())
			g.scoreChanged(points)
		}
	}
}

func (g *Game) scoreChanged(pointsToAdd int) {
	g.score += pointsToAdd
	g.scoreDisplay.Value = strconv.Itoa(g.score)
	g.EventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: g.score})
}

func (g *Game) playerHit() {
	g.lives--
	g.livesDisplay.Value = livesText(g.lives)
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: g.lives})

	if g.lives <= 0 {
		g.playerShip.Hide()
		g.gameOver(false)
	}
}

func (g *Game) gameOver(playerWon bool) {
	g.phase = component.GameOver
	g.playerWon = playerWon
	g.effects.Clear()

	message := config.MessageLost
	if playerWon {
		message = config.MessageWon
	}
	g.messageDisplay.Value = message
	g.messageDisplay.Visible = true

	g.logger.Printf("game over after %d ticks: won=%v score=%d lives=%d", g.ticks, playerWon, g.score, g.lives)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: playerWon})
}

// MovePlayerShipLeft сдвигает корабль влево, не дальше левого края.
func (g *Game) MovePlayerShipLeft() {
	if !g.running() {
		return
	}
	if g.playerShip.X() > 0 {
		g.playerShip.MoveLeft()
		if g.playerShip.X() < 0 {
			g.playerShip.SetX(0)
		}
	}
}

// MovePlayerShipRight сдвигает корабль вправо, не дальше правого края.
func (g *Game) MovePlayerShipRight() {
	if !g.running() {
		return
	}
	right := g.width - g.playerShip.Width()
	if g.playerShip.X() < right {
		g.playerShip.MoveRight()
		if g.playerShip.X() > right {
			g.playerShip.SetX(right)
		}
	}
}

// ShootPlayerBullet выпускает снаряд, если перезарядка прошла и есть
// свободный слот. Возвращает true, если выстрел состоялся.
func (g *Game) ShootPlayerBullet() bool {
	if !g.running() {
		return false
	}
	return g.playerBullets.Fire(g.playerShip)
}

func livesText(lives int) string {
	return "Lives: " + strconv.Itoa(lives)
}

func (g *Game) Score() int                         { return g.score }
func (g *Game) Lives() int                         { return g.lives }
func (g *Game) Phase() component.Phase             { return g.phase }
func (g *Game) PlayerWon() bool                    { return g.playerWon }
func (g *Game) Ticks() int                         { return g.ticks }
func (g *Game) Width() float64                     { return g.width }
func (g *Game) Height() float64                    { return g.height }
func (g *Game) PlayerShip() *component.PlayerShip  { return g.playerShip }
func (g *Game) EnemyManager() *system.EnemyManager { return g.enemyManager }

// PlayerBullets возвращает слоты пула снарядов игрока.
func (g *Game) PlayerBullets() []*component.Bullet {
	if g.playerBullets == nil {
		return nil
	}
	return g.playerBullets.Bullets()
}

// Message — текст сообщения о конце игры (пустой, пока игра идёт).
func (g *Game) Message() string {
	if g.messageDisplay == nil || !g.messageDisplay.Visible {
		return ""
	}
	return g.messageDisplay.Value
}
