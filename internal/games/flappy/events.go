package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Event is something that happened during a tick or an input call.
// Hosts drain events after Update and route them to audio, effects and storage.
type Event interface {
	event()
}

// StarCollected fires when the bird picks up a star.
type StarCollected struct {
	X, Y   float64
	Value  int // Added to stars
	Points int // Added to score
	Color  core.Color
}

// HazardHit fires when the bird touches a bomb.
type HazardHit struct {
	X, Y     float64
	Shielded bool
}

// PowerupCollected fires when the bird picks up a power-up.
type PowerupCollected struct {
	X, Y float64
	Kind PowerKind
}

// ShieldSaved fires when a shield charge absorbs a pipe hit.
type ShieldSaved struct {
	X, Y float64
}

// PipePassed fires when a pipe is scored.
type PipePassed struct {
	Score int
}

// RunStarted fires when play begins.
type RunStarted struct {
	Seed int64
}

// RunEnded fires once per run when the bird dies.
type RunEnded struct {
	Score   int
	Stars   int
	Best    int
	NewBest bool
	Elapsed float64 // Seconds of play
}

func (StarCollected) event()    {}
func (HazardHit) event()        {}
func (PowerupCollected) event() {}
func (ShieldSaved) event()      {}
func (PipePassed) event()       {}
func (RunStarted) event()       {}
func (RunEnded) event()         {}
