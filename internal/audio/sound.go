// internal/audio/sound.go
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"go-space-invaders/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Note — одна нота звукового сигнала.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Короткие сигналы на игровые события.
var (
	cuePlayerFired    = []Note{{Freq: 880, Duration: 40 * time.Millisecond}}
	cueEnemyFired     = []Note{{Freq: 220, Duration: 60 * time.Millisecond}}
	cueEnemyDestroyed = []Note{{Freq: 660, Duration: 30 * time.Millisecond}, {Freq: 440, Duration: 50 * time.Millisecond}}
	cuePlayerHit      = []Note{{Freq: 150, Duration: 200 * time.Millisecond}}
	cueWon            = []Note{{Freq: 523.25, Duration: 120 * time.Millisecond}, {Freq: 659.25, Duration: 120 * time.Millisecond}, {Freq: 783.99, Duration: 240 * time.Millisecond}}
	cueLost           = []Note{{Freq: 392, Duration: 160 * time.Millisecond}, {Freq: 311.13, Duration: 160 * time.Millisecond}, {Freq: 196, Duration: 320 * time.Millisecond}}
)

// CueFor возвращает сигнал для события; nil — событие беззвучное.
func CueFor(e event.Event) []Note {
	switch e.Type {
	case event.PlayerFired:
		return cuePlayerFired
	case event.EnemyFired:
		return cueEnemyFired
	case event.EnemyDestroyed:
		return cueEnemyDestroyed
	case event.PlayerHit:
		return cuePlayerHit
	case event.GameOver:
		if won, _ := e.Data.(bool); won {
			return cueWon
		}
		return cueLost
	}
	return nil
}

// SoundPlayer — подписчик событий, проигрывающий сигналы через beep.
type SoundPlayer struct {
	Volume float64 // 0..1
	Muted  bool

	initialized bool
	play        func(s beep.Streamer)
}

// NewSoundPlayer создаёт плеер; устройство не открывается до Init.
func NewSoundPlayer(volume float64) *SoundPlayer {
	return &SoundPlayer{Volume: volume, play: func(s beep.Streamer) { speaker.Play(s) }}
}

// Init открывает аудиоустройство. Ошибка не фатальна: игра идёт без звука.
func (p *SoundPlayer) Init() error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	p.initialized = true
	return nil
}

// Subscribe подписывает плеер на все озвучиваемые события.
func (p *SoundPlayer) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(p, event.PlayerFired, event.EnemyFired, event.EnemyDestroyed, event.PlayerHit, event.GameOver)
}

func (p *SoundPlayer) OnEvent(e event.Event) {
	if !p.initialized || p.Muted {
		return
	}
	notes := CueFor(e)
	if len(notes) == 0 {
		return
	}
	s, err := BuildCue(notes, p.Volume)
	if err != nil {
		return
	}
	p.play(s)
}

// BuildCue собирает последовательность синусоид с нужной громкостью.
func BuildCue(notes []Note, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.Duration), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// math.Log2(0) = -Inf, поэтому нулевая громкость — тишина
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
