// internal/state/game_state.go
package state

import (
	"fmt"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/scene"
	"go-space-invaders/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — идущая партия. Симуляция шагает фиксированными тиками,
// накопленными из deltaTime кадров.
type GameState struct {
	sm        *StateMachine
	session   *Session
	game      *app.Game
	scene     *scene.Scene
	indicator *ui.LivesIndicator
	elapsed   float64 // время, ещё не разменянное на тики
}

func NewGameState(sm *StateMachine, session *Session) (*GameState, error) {
	gs := &GameState{
		sm:      sm,
		session: session,
		indicator: ui.NewLivesIndicator(
			float32(session.Width)-config.LivesTextRightGap,
			config.LivesTextY+20,
			14,
			config.LivesIconColor,
		),
	}
	if err := gs.start(); err != nil {
		return nil, err
	}
	return gs, nil
}

// start собирает новую партию на чистой сцене
func (g *GameState) start() error {
	gameLogic, err := g.session.NewGame()
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	if g.scene == nil {
		g.scene = scene.New(gameLogic.Width(), gameLogic.Height())
	} else {
		g.scene.Clear()
	}
	if err := gameLogic.InitializeGame(g.scene); err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	g.game = gameLogic
	g.elapsed = 0
	return nil
}

// Enter сбрасывает накопитель, чтобы после паузы не догонять пропущенное
func (g *GameState) Enter() {
	g.elapsed = 0
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.session.toggleMute()
	}

	if g.game.Phase() == component.GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := g.start(); err != nil {
				g.session.Logger.Printf("failed to restart game: %v", err)
			}
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleInput()

	step := config.TickInterval.Seconds()
	g.elapsed += deltaTime
	for g.elapsed >= step {
		g.game.Tick()
		g.elapsed -= step
	}
}

// handleInput: движение и стрельба раз за кадр, пока клавиша зажата
func (g *GameState) handleInput() {
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.game.MovePlayerShipLeft()
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.game.MovePlayerShipRight()
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.game.ShootPlayerBullet()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.session.Renderer.Draw(screen, g.scene)
	g.indicator.Draw(screen, g.game.Lives())
	if g.session.Stats != nil {
		g.session.Renderer.DrawText(screen, fmt.Sprintf("Hi: %d", g.session.Stats.BestScore()), float64(g.session.Width)/2-30, config.ScoreTextY)
	}

	if g.game.Phase() == component.GameOver {
		g.session.Renderer.DrawText(screen, "press R to play again", float64(g.session.Width)/3, float64(g.session.Height)/2+60)
	}

	// Debug text
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.0f  tick: %d", ebiten.ActualTPS(), g.game.Ticks()), 4, g.session.Height-16)
}

func (g *GameState) Exit() {}
