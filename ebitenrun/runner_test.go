package ebitenrun

import (
	"errors"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/quicktween"
)

type fakeGame struct {
	updates int
	draws   int
	err     error
	seen    float64
	value   *float64
}

func (g *fakeGame) Update() error {
	g.updates++
	if g.value != nil {
		g.seen = *g.value
	}
	return g.err
}

func (g *fakeGame) Draw(*ebiten.Image) { g.draws++ }

func newRunner(game Game, cfg RunConfig) (*Runner, *quicktween.Manager) {
	m := quicktween.NewManager()
	r := NewRunner(m, game, cfg)
	r.tps = func() int { return 10 }
	r.focused = func() bool { return true }
	return r, m
}

func TestRunnerTicksManagerBeforeGame(t *testing.T) {
	var v float64
	game := &fakeGame{value: &v}
	r, m := newRunner(game, RunConfig{})
	m.Add(quicktween.TweenFloat(&v, 1, 1, quicktween.EaseLinear))

	for range 5 {
		if err := r.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if math.Abs(v-0.5) > 1e-9 {
		t.Errorf("v = %f after 5 ticks at 10 TPS, want 0.5", v)
	}
	if game.updates != 5 || game.seen != v {
		t.Errorf("updates = %d seen = %f, want 5 and the ticked value", game.updates, game.seen)
	}
}

func TestRunnerStep(t *testing.T) {
	tests := []struct {
		name string
		tps  int
		want float64
	}{
		{"60", 60, 1.0 / 60},
		{"10", 10, 0.1},
		{"sync with fps", ebiten.SyncWithFPS, 1.0 / fallbackTPS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRunner(nil, RunConfig{})
			r.tps = func() int { return tt.tps }
			if got := r.Step(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Step() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunnerPropagatesGameError(t *testing.T) {
	want := errors.New("quit")
	r, _ := newRunner(&fakeGame{err: want}, RunConfig{})
	if err := r.Update(); !errors.Is(err, want) {
		t.Errorf("Update() = %v, want %v", err, want)
	}
}

func TestRunnerPauseUnfocused(t *testing.T) {
	r, m := newRunner(nil, RunConfig{PauseUnfocused: true})
	focused := false
	r.focused = func() bool { return focused }

	_ = r.Update()
	if !m.Paused() {
		t.Fatal("manager should pause while unfocused")
	}
	focused = true
	_ = r.Update()
	if m.Paused() {
		t.Fatal("manager should resume on focus")
	}

	// A pause the game asked for survives focus changes.
	m.SetPaused(true)
	focused = false
	_ = r.Update()
	focused = true
	_ = r.Update()
	if !m.Paused() {
		t.Error("runner resumed a manager it did not pause")
	}
}

func TestRunnerDrawDelegates(t *testing.T) {
	game := &fakeGame{}
	r, _ := newRunner(game, RunConfig{})
	r.Draw(ebiten.NewImage(4, 4))
	if game.draws != 1 {
		t.Errorf("draws = %d, want 1", game.draws)
	}
}

func TestRunnerLayout(t *testing.T) {
	r, _ := newRunner(nil, RunConfig{Width: 320, Height: 240})
	if w, h := r.Layout(1920, 1080); w != 320 || h != 240 {
		t.Errorf("Layout = %d×%d, want 320×240", w, h)
	}
	r, _ = newRunner(nil, RunConfig{})
	if w, h := r.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("Layout = %d×%d, want 800×600", w, h)
	}
}

func TestRunnerImplementsGame(t *testing.T) {
	var _ ebiten.Game = NewRunner(quicktween.NewManager(), nil, RunConfig{})
}
