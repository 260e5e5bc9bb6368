// internal/state/session.go
package state

import (
	"log"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/audio"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/ui"
	"go-space-invaders/pkg/render"
)

// Session — то, что переживает смену состояний и перезапуск партии.
type Session struct {
	Width, Height int
	NewGame       func() (*app.Game, error)
	Renderer      *render.SpriteRenderer
	Fonts         *render.Fonts
	Sound         *audio.SoundPlayer // nil, если звук отключён
	Stats         *system.PlayerSystem
	Logger        *log.Logger
}

func (s *Session) messageBox() *ui.MessageBox {
	return ui.NewMessageBox(s.Width, s.Height, s.Fonts.Title, s.Fonts.HUD, config.PauseOverlayColor, config.TextLightColor)
}

func (s *Session) toggleMute() {
	if s.Sound == nil {
		return
	}
	s.Sound.Muted = !s.Sound.Muted
	s.Logger.Printf("sound muted: %v", s.Sound.Muted)
}
