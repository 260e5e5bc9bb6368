package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"go-space-invaders/internal/event"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}

// TestCueFor verifies event to cue mapping
func TestCueFor(t *testing.T) {
	if CueFor(event.Event{Type: event.ScoreChanged}) != nil {
		t.Error("Expected ScoreChanged to be silent")
	}
	won := CueFor(event.Event{Type: event.GameOver, Data: true})
	lost := CueFor(event.Event{Type: event.GameOver, Data: false})
	if len(won) == 0 || len(lost) == 0 || won[0] == lost[0] {
		t.Error("Expected distinct win and loss jingles")
	}
	for _, typ := range []event.EventType{event.PlayerFired, event.EnemyFired, event.EnemyDestroyed, event.PlayerHit} {
		if len(CueFor(event.Event{Type: typ})) == 0 {
			t.Errorf("Expected a cue for %s", typ)
		}
	}
}

// TestBuildCueLength verifies the streamer length matches the notes
func TestBuildCueLength(t *testing.T) {
	notes := []Note{{Freq: 440, Duration: 50 * time.Millisecond}, {Freq: 880, Duration: 25 * time.Millisecond}}
	s, err := BuildCue(notes, 0.5)
	if err != nil {
		t.Fatalf("BuildCue: %v", err)
	}
	want := sampleRate.N(50*time.Millisecond) + sampleRate.N(25*time.Millisecond)
	if got := drain(s); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

// TestSoundPlayerGating verifies nothing plays before Init or while muted
func TestSoundPlayerGating(t *testing.T) {
	played := 0
	p := NewSoundPlayer(0.5)
	p.play = func(beep.Streamer) { played++ }

	d := event.NewDispatcher()
	p.Subscribe(d)

	d.Dispatch(event.Event{Type: event.PlayerFired})
	if played != 0 {
		t.Fatal("Expected no sound before Init")
	}

	// устройство не открываем, только помечаем
	p.initialized = true
	d.Dispatch(event.Event{Type: event.PlayerFired})
	d.Dispatch(event.Event{Type: event.ScoreChanged})
	if played != 1 {
		t.Errorf("Expected 1 sound, got %d", played)
	}

	p.Muted = true
	d.Dispatch(event.Event{Type: event.EnemyDestroyed})
	if played != 1 {
		t.Errorf("Expected no sound while muted, got %d", played)
	}
}
