// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/audio"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/state"
	"go-space-invaders/internal/system"
	"go-space-invaders/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	var (
		seed      = flag.Int64("seed", 0, "PRNG seed for enemy fire (0 = time based)")
		mute      = flag.Bool("mute", false, "Disable sound")
		volume    = flag.Float64("volume", 0.3, "Sound volume, 0..1")
		defsPath  = flag.String("defs", "", "Optional JSON file with enemy tier definitions")
		width     = flag.Int("width", config.ScreenWidth, "Playfield width")
		height    = flag.Int("height", config.ScreenHeight, "Playfield height")
		pprofAddr = flag.String("pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
		skipMenu  = flag.Bool("skip-menu", false, "Start straight into a game")
	)
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	if *defsPath != "" {
		if err := defs.LoadEnemyDefinitions(*defsPath); err != nil {
			log.Printf("Warning: using default enemy definitions: %v", err)
		}
	}

	fonts, err := render.LoadFonts(14, 36)
	if err != nil {
		log.Printf("Warning: falling back to basic font: %v", err)
	}

	dispatcher := event.NewDispatcher()
	var sound *audio.SoundPlayer
	if !*mute {
		sound = audio.NewSoundPlayer(*volume)
		if err := sound.Init(); err != nil {
			log.Printf("Warning: sound disabled: %v", err)
			sound = nil
		} else {
			sound.Subscribe(dispatcher)
		}
	}

	stats := system.NewPlayerSystem()
	stats.Subscribe(dispatcher)

	logger := log.Default()
	session := &state.Session{
		Width:  *width,
		Height: *height,
		NewGame: app.NewFactory(float64(*height), float64(*width), *seed,
			app.WithDispatcher(dispatcher),
			app.WithLogger(logger),
		),
		Renderer: render.NewSpriteRenderer(fonts.HUD, render.Palette{
			BackgroundColor: config.BackgroundColor,
			TextColor:       config.TextLightColor,
			ShadowColor:     render.DarkenColor(config.BackgroundColor),
		}),
		Fonts:  fonts,
		Sound:  sound,
		Stats:  stats,
		Logger: logger,
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		gs, err := state.NewGameState(sm, session)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          *width,
		height:         *height,
	}
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Space Invaders")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
