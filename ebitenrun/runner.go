// Package ebitenrun drives a quicktween Manager from an Ebitengine game loop.
//
//	mgr := quicktween.NewManager()
//	if err := ebitenrun.Run(mgr, game, ebitenrun.RunConfig{
//		Title:  "Demo",
//		Width:  640,
//		Height: 480,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// The manager is ticked with a fixed step of 1/TPS seconds before the game's
// own Update runs, so game code always sees this frame's tweened values.
package ebitenrun

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/quicktween"
)

const fallbackTPS = 60

// RunConfig holds window and loop settings.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// PauseUnfocused pauses the manager while the window has no focus.
	// Objects with PlayWhilePaused keep running.
	PauseUnfocused bool
}

// Game is the part of ebiten.Game a runner delegates to. Layout is handled
// by the runner from RunConfig.
type Game interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Runner implements ebiten.Game around a Manager and an optional Game.
type Runner struct {
	manager *quicktween.Manager
	game    Game
	cfg     RunConfig

	autoPaused bool

	// Overridable for tests.
	tps     func() int
	focused func() bool
}

// NewRunner returns a Runner. game may be nil when the manager alone drives
// the frame.
func NewRunner(m *quicktween.Manager, game Game, cfg RunConfig) *Runner {
	return &Runner{
		manager: m,
		game:    game,
		cfg:     cfg,
		tps:     ebiten.TPS,
		focused: ebiten.IsFocused,
	}
}

// Step returns the seconds advanced per tick.
func (r *Runner) Step() float64 {
	tps := r.tps()
	if tps <= 0 {
		tps = fallbackTPS
	}
	return 1.0 / float64(tps)
}

// Update ticks the manager, then the game.
func (r *Runner) Update() error {
	if r.cfg.PauseUnfocused {
		focused := r.focused()
		switch {
		case !focused && !r.manager.Paused():
			r.manager.SetPaused(true)
			r.autoPaused = true
		case focused && r.autoPaused:
			r.manager.SetPaused(false)
			r.autoPaused = false
		}
	}
	r.manager.Update(r.Step())
	if r.game != nil {
		if err := r.game.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Draw draws the game and the optional FPS overlay.
func (r *Runner) Draw(screen *ebiten.Image) {
	if r.game != nil {
		r.game.Draw(screen)
	}
	if r.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTweens: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), r.manager.Len()))
	}
}

// Layout returns the configured logical screen size.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	if r.cfg.Width <= 0 || r.cfg.Height <= 0 {
		return outsideWidth, outsideHeight
	}
	return r.cfg.Width, r.cfg.Height
}

// Run opens a window and blocks until the game exits.
func Run(m *quicktween.Manager, game Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	return ebiten.RunGame(NewRunner(m, game, cfg))
}
