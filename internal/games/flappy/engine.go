// Package flappy implements the Flappy Bird simulation: a pure, synchronous
// engine advanced one tick at a time by a host loop. The engine never draws,
// plays sound or touches storage; it returns events that hosts dispatch.
package flappy

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// GameState is the engine state machine.
type GameState int

const (
	StateReady GameState = iota
	StatePlaying
	StateOver
)

// String returns the state name.
func (s GameState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Engine owns all mutable game state. It is not safe for concurrent use;
// exactly one host goroutine drives it.
type Engine struct {
	cfg        config.FlappyConfig
	curve      config.DifficultyCurve
	rng        *RNG
	plan       SpawnPlan
	seedSource func() int64

	world    World
	bird     Bird
	pipes    []Pipe
	awards   []Award
	powerups []Powerup
	effects  Effects

	state     GameState
	score     int
	stars     int
	best      int
	pipeTimer float64 // Milliseconds of scaled time since the last pipe
	elapsed   float64 // Seconds of real time in the current run
	clock     float64 // Seconds of real time since creation, drives oscillation
	seed      int64

	events []Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeedSource sets the function that seeds every run.
func WithSeedSource(src func() int64) Option {
	return func(e *Engine) {
		if src != nil {
			e.seedSource = src
		}
	}
}

// WithSeed seeds every run with the same value.
func WithSeed(seed int64) Option {
	return WithSeedSource(func() int64 { return seed })
}

// WithBestScore sets the best score loaded from storage.
func WithBestScore(best int) Option {
	return func(e *Engine) {
		e.best = max(0, best)
	}
}

// WithWorld overrides the initial world size.
func WithWorld(w, h float64) Option {
	return func(e *Engine) {
		e.cfg.World.Width = w
		e.cfg.World.Height = h
	}
}

func randomSeed() int64 {
	return rand.Int64N(1_000_000_000)
}

// NewEngine creates an engine in the ready state.
// Invalid config values are clamped rather than rejected.
func NewEngine(cfg config.FlappyConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:        cfg,
		seedSource: randomSeed,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.cfg.Normalize()
	e.curve = config.NewDifficultyCurve(e.cfg.Difficulty)
	e.plan = NewSpawnPlan(CadenceFrom(e.cfg.Awards))
	e.world = World{W: e.cfg.World.Width, H: e.cfg.World.Height, FloorH: e.cfg.World.FloorHeight}
	e.seed = e.seedSource()
	e.rng = NewRNG(e.seed)
	e.reset()
	return e
}

// State returns the current state machine state.
func (e *Engine) State() GameState {
	return e.state
}

// Score returns the current run score.
func (e *Engine) Score() int {
	return e.score
}

// Best returns the best score seen by this engine.
func (e *Engine) Best() int {
	return e.best
}

// SetBest replaces the best score, e.g. after a late storage load.
func (e *Engine) SetBest(best int) {
	e.best = max(0, best)
}

// Flap is the single action input: it starts a run from ready, jumps while
// playing, and resets into a fresh run when over.
func (e *Engine) Flap() {
	switch e.state {
	case StateReady:
		e.start()
	case StatePlaying:
		e.bird.VY = -math.Abs(e.cfg.Bird.Jump * (e.world.H / RefHeight))
	case StateOver:
		e.reset()
		e.start()
	}
}

// Restart is Flap restricted to the over state.
func (e *Engine) Restart() {
	if e.state == StateOver {
		e.Flap()
	}
}

// Resize changes the world dimensions. Physics re-derives from the new size
// on the next tick; nothing already simulated is replayed.
func (e *Engine) Resize(w, h float64) {
	if math.IsNaN(w) || w < config.MinWorldWidth {
		w = config.MinWorldWidth
	}
	if math.IsNaN(h) || h < config.MinWorldHeight {
		h = config.MinWorldHeight
	}
	e.world.W = w
	e.world.H = h
	e.world.FloorH = min(e.cfg.World.FloorHeight, h/3)
}

// Update advances the simulation by dtReal seconds of wall time and returns
// the events produced since the previous call.
func (e *Engine) Update(dtReal float64) []Event {
	if !(dtReal > 0) {
		dtReal = 0
	}
	dtReal = min(dtReal, e.cfg.MaxStep)

	if e.state == StatePlaying {
		e.elapsed += dtReal
	}

	target := 1.0
	if e.effects.Slow > 0 {
		target = e.cfg.Effects.SlowScale
	}
	e.effects.TimeScale += (target - e.effects.TimeScale) * min(1, dtReal*0.5)
	if dtReal == 0 {
		return e.drain()
	}
	dt := dtReal * e.effects.TimeScale
	e.clock += dtReal

	f := e.currentFrame()
	e.effects.decay(dtReal)

	switch e.state {
	case StateReady:
		e.idleBob(dtReal)
	case StatePlaying:
		e.step(dt, f)
	}
	return e.drain()
}

// step runs the playing phase. Once the run ends no further phase runs.
func (e *Engine) step(dt float64, f frame) {
	e.integrateBird(dt, f)
	e.advanceSpawner(dt, f)
	e.movePipes(dt, f)
	e.moveAwards(dt, f)
	e.collectAwards(f)
	if e.state != StatePlaying {
		return
	}
	e.movePowerups(dt, f)
	e.collectPowerups()
	e.resolveWorld(f)
}

// currentFrame derives per-tick quantities for the current score and world.
func (e *Engine) currentFrame() frame {
	return deriveFrame(&e.cfg, e.world, e.curve.At(e.score))
}

// clearRun empties everything a run accumulates.
func (e *Engine) clearRun() {
	e.score = 0
	e.stars = 0
	e.pipes = e.pipes[:0]
	clear(e.awards)
	e.awards = e.awards[:0]
	e.powerups = e.powerups[:0]
	e.pipeTimer = 0
	e.elapsed = 0
	e.effects = Effects{TimeScale: 1}
}

// reset returns to ready with the bird parked at its start height.
func (e *Engine) reset() {
	e.state = StateReady
	e.clearRun()
	e.bird = Bird{
		X: e.cfg.Bird.X,
		Y: e.world.H * e.cfg.Bird.StartRatio,
		R: e.cfg.Bird.Radius,
	}
	e.plan.Reset(e.rng, true)
}

// start begins a run with a fresh seed.
func (e *Engine) start() {
	e.clearRun()
	e.state = StatePlaying
	e.seed = e.seedSource()
	e.rng.Seed(e.seed)
	e.plan.Reset(e.rng, true)
	e.emit(RunStarted{Seed: e.seed})
}

// endRun moves to over and records the best score.
func (e *Engine) endRun() {
	if e.state != StatePlaying {
		return
	}
	e.state = StateOver
	newBest := e.score > e.best
	if newBest {
		e.best = e.score
	}
	e.emit(RunEnded{
		Score:   e.score,
		Stars:   e.stars,
		Best:    e.best,
		NewBest: newBest,
		Elapsed: e.elapsed,
	})
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// drain hands the pending events to the caller.
func (e *Engine) drain() []Event {
	if len(e.events) == 0 {
		return nil
	}
	out := e.events
	e.events = nil
	return out
}
