// internal/system/player_system.go
package system

import "go-space-invaders/internal/event"

// PlayerSystem ведёт статистику игрока по событиям: лучший счёт, число
// сыгранных и выигранных партий. Живёт дольше одной партии.
type PlayerSystem struct {
	bestScore int
	games     int
	wins      int
}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

// Subscribe подписывает систему на счёт и конец партии.
func (s *PlayerSystem) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(s, event.ScoreChanged, event.GameOver)
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ScoreChanged:
		score, ok := e.Data.(int)
		if !ok {
			return
		}
		if score > s.bestScore {
			s.bestScore = score
		}
	case event.GameOver:
		s.games++
		if won, ok := e.Data.(bool); ok && won {
			s.wins++
		}
	}
}

func (s *PlayerSystem) BestScore() int { return s.bestScore }
func (s *PlayerSystem) Games() int     { return s.games }
func (s *PlayerSystem) Wins() int      { return s.wins }
