// cmd/invaders-tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/audio"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/scene"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"
)

// Кадр рисуется раз в drawEveryTicks тиков симуляции
const drawEveryTicks = 3

// Терминал не сообщает об отпускании клавиш, поэтому одно нажатие
// сдвигает корабль на несколько шагов
const movesPerKey = 2

type terminalGame struct {
	screen   tcell.Screen
	renderer *tui.Renderer
	newGame  func() (*app.Game, error)
	sound    *audio.SoundPlayer
	stats    *system.PlayerSystem
	logger   *log.Logger

	game   *app.Game
	scene  *scene.Scene
	paused bool
	ticks  int
}

func (g *terminalGame) start() error {
	gameLogic, err := g.newGame()
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	sc := scene.New(gameLogic.Width(), gameLogic.Height())
	if err := gameLogic.InitializeGame(sc); err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	g.game = gameLogic
	g.scene = sc
	g.paused = false
	return nil
}

// handleInput возвращает false, когда пора выходить
func (g *terminalGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch ev.Key() {
		case tcell.KeyLeft:
			g.move(g.game.MovePlayerShipLeft)
		case tcell.KeyRight:
			g.move(g.game.MovePlayerShipRight)
		case tcell.KeyEnter:
			g.restart()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a':
				g.move(g.game.MovePlayerShipLeft)
			case 'd':
				g.move(g.game.MovePlayerShipRight)
			case ' ':
				if !g.paused {
					g.game.ShootPlayerBullet()
				}
			case 'p':
				if g.game.Phase() == component.Playing {
					g.paused = !g.paused
				}
			case 'r':
				g.restart()
			case 'm':
				if g.sound != nil {
					g.sound.Muted = !g.sound.Muted
				}
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *terminalGame) move(step func()) {
	if g.paused {
		return
	}
	for i := 0; i < movesPerKey; i++ {
		step()
	}
}

func (g *terminalGame) restart() {
	if g.game.Phase() != component.GameOver {
		return
	}
	if err := g.start(); err != nil {
		g.logger.Printf("failed to restart game: %v", err)
	}
}

func (g *terminalGame) draw() {
	g.renderer.Draw(g.screen, g.scene)
	cols, rows := g.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	switch {
	case g.paused:
		tui.DrawString(g.screen, cols/2-3, rows/2, "PAUSED", style.Foreground(tcell.ColorWhite))
	case g.game.Phase() == component.GameOver:
		status := fmt.Sprintf("hi: %d  games: %d  won: %d  r: play again  q: quit", g.stats.BestScore(), g.stats.Games(), g.stats.Wins())
		tui.DrawString(g.screen, 1, rows-1, status, style)
	default:
		tui.DrawString(g.screen, 1, rows-1, "arrows: move  space: fire  p: pause  q: quit", style)
	}
	g.screen.Show()
}

func (g *terminalGame) run() {
	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return
			}
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if !g.paused {
				g.game.Tick()
			}
			g.ticks++
			if g.ticks%drawEveryTicks == 0 {
				g.draw()
			}
		}
	}
}

func main() {
	var (
		seed     = flag.Int64("seed", 0, "PRNG seed for enemy fire (0 = time based)")
		mute     = flag.Bool("mute", false, "Disable sound")
		volume   = flag.Float64("volume", 0.3, "Sound volume, 0..1")
		defsPath = flag.String("defs", "", "Optional JSON file with enemy tier definitions")
		width    = flag.Int("width", config.ScreenWidth, "Playfield width")
		height   = flag.Int("height", config.ScreenHeight, "Playfield height")
		logPath  = flag.String("log", "", "Write log to this file (the terminal is taken by the game)")
	)
	flag.Parse()

	// Пока экран занят игрой, лог пишется только в файл
	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	if *defsPath != "" {
		if err := defs.LoadEnemyDefinitions(*defsPath); err != nil {
			log.Printf("Warning: using default enemy definitions: %v", err)
		}
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
			defer speaker.Close()
		}
	}

	stats := system.NewPlayerSystem()
	stats.Subscribe(dispatcher)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	// Терминал нужно вернуть в нормальный режим даже при панике
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nINVADERS CRASHED: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	g := &terminalGame{
		screen:   screen,
		renderer: tui.NewRenderer(float64(*width), float64(*height)),
		newGame: app.NewFactory(float64(*height), float64(*width), *seed,
			app.WithDispatcher(dispatcher),
			app.WithLogger(logger),
		),
		sound:  sound,
		stats:  stats,
		logger: logger,
	}
	if err := g.start(); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	g.run()
}
