// internal/state/menu_state.go
package state

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — заставка, пробел начинает партию
type MenuState struct {
	sm      *StateMachine
	session *Session
	box     *ui.MessageBox
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	box := session.messageBox()
	box.Backdrop.A = 0
	return &MenuState{sm: sm, session: session, box: box}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		m.session.toggleMute()
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	gs, err := NewGameState(m.sm, m.session)
	if err != nil {
		m.session.Logger.Printf("failed to start game: %v", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.box.Draw(screen, "SPACE INVADERS", "press SPACE to start")
}

func (m *MenuState) Exit() {}
