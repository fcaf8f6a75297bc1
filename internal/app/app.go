package app

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/audio"
	"github.com/diegok/solopong/internal/config"
	"github.com/diegok/solopong/internal/game"
	"github.com/diegok/solopong/internal/ui"
)

// App is the main application controller that runs the game loop.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	game     *game.GameState
	keys     ui.KeyState
	muted    bool

	quit     chan struct{}
	quitOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:   cfg,
		game:  game.NewGameState(cfg.Tuning()),
		muted: cfg.Mute,
		quit:  make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and runs the game loop.
func (a *App) Run() error {
	// Game works without sound
	if !a.muted {
		if err := audio.Init(); err != nil {
			a.muted = true
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		audio.Close()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, a.cfg.Difficulty)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// mainLoop advances the simulation at a fixed rate and renders after every tick.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case <-ticker.C:
			a.step()
		}
	}
}

// step runs one simulation tick and hands its output to audio and rendering.
func (a *App) step() {
	in := a.keys.Sample(a.game.World.Tick)
	result := a.game.Update(in)

	if !a.muted {
		if len(result.Goals) > 0 {
			audio.PlayScore()
		} else if result.Collided {
			audio.PlayCollision()
		}
	}

	a.renderer.RenderGame(result.Snapshot, a.muted)
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		a.keys.Press(ui.KeyToDirection(ev.Key(), ev.Rune()), a.game.World.Tick)

	case *tcell.EventResize:
		a.screen.Clear()
	}

	return false
}

// stop signals every goroutine to exit; safe to call more than once.
func (a *App) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
