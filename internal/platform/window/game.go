// Package window hosts the game in a desktop window on ebiten. The world is
// resized to the logical screen, so one world unit is one pixel.
package window

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/fx"
	"github.com/vovakirdan/flappy-arcade/internal/platform/session"
)

const (
	minWidth    = 320
	maxWidth    = 560
	aspect      = 1.5 // Height over width
	windowTitle = "Flappy"
)

// Game implements ebiten.Game around a session.
type Game struct {
	session *session.Session
	logger  *log.Logger
	pops    *fx.Popper

	width, height int
	newBest       bool
	quit          bool
}

// NewGame creates a window host for s. logger may be nil.
func NewGame(s *session.Session, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{session: s, logger: logger, pops: fx.NewPopper(rand.Uint64())}
}

// fitWindow clamps the outside width and derives a 2:3 playfield.
func fitWindow(outsideWidth int) (w, h int) {
	w = min(max(outsideWidth, minWidth), maxWidth)
	h = int(math.Round(float64(w) * aspect))
	return w, h
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := fitWindow(outsideWidth)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.session.Resize(float64(w), float64(h))
		g.logger.Debug("Window resized", "width", w, "height", h)
	}
	return w, h
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.step(readInput(), tickDuration())
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func tickDuration() time.Duration {
	return time.Second / time.Duration(max(1, ebiten.TPS()))
}

// step applies one tick of input and advances the session by dt.
func (g *Game) step(frame core.InputFrame, dt time.Duration) {
	if g.session.Apply(frame) {
		g.quit = true
		return
	}
	g.observe(g.session.Advance(dt))
	g.pops.Step(dt.Seconds())
}

// observe feeds tick events to the sparks and the game over banner.
func (g *Game) observe(events []flappy.Event) {
	g.pops.Observe(events)
	for _, ev := range events {
		switch ev := ev.(type) {
		case flappy.RunStarted:
			g.newBest = false
		case flappy.RunEnded:
			g.newBest = ev.NewBest
		}
	}
}

// Run opens the window and blocks until it is closed.
func Run(s *session.Session, logger *log.Logger) error {
	g := NewGame(s, logger)
	w, h := fitWindow(0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
