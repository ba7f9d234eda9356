package flappy

import "math"

// PipeView is a pipe with its current gap top resolved.
type PipeView struct {
	X, W   float64
	Top    float64
	Gap    float64
	Moving bool
	Scored bool
}

// Snapshot is a read-only copy of the engine state for renderers and tests.
type Snapshot struct {
	World    World
	Bird     Bird
	Pipes    []PipeView
	Awards   []Award
	Powerups []Powerup
	Effects  Effects
	Score    int
	Stars    int
	Best     int
	State    GameState
	Theme    Theme
	Elapsed  float64
	Clock    float64
	Seed     int64
	RNGState uint32
	Plan     SpawnPlan
}

// Snapshot copies the current state. The slices are owned by the caller.
func (e *Engine) Snapshot() Snapshot {
	f := e.currentFrame()
	pipes := make([]PipeView, len(e.pipes))
	for i := range e.pipes {
		p := &e.pipes[i]
		pipes[i] = PipeView{
			X:      p.X,
			W:      p.W,
			Top:    e.pipeTop(p, f),
			Gap:    p.Gap,
			Moving: p.Moving(),
			Scored: p.Scored,
		}
	}

	return Snapshot{
		World:    e.world,
		Bird:     e.bird,
		Pipes:    pipes,
		Awards:   append([]Award(nil), e.awards...),
		Powerups: append([]Powerup(nil), e.powerups...),
		Effects:  e.effects,
		Score:    e.score,
		Stars:    e.stars,
		Best:     e.best,
		State:    e.state,
		Theme:    ThemeForScore(e.score),
		Elapsed:  e.elapsed,
		Clock:    e.clock,
		Seed:     e.seed,
		RNGState: e.rng.State(),
		Plan:     e.plan,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.State)
	mix := func(v float64) {
		h = h*31 + math.Float64bits(v)
	}
	mixInt := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mixInt(snap.Score)
	mixInt(snap.Stars)
	mixInt(snap.Best)
	mixInt(snap.Plan.NextStarIn)
	mixInt(snap.Plan.NextPowerIn)
	h = h*31 + uint64(snap.RNGState)
	mix(snap.Bird.Y)
	mix(snap.Bird.VY)
	mix(snap.Elapsed)
	mix(snap.Clock)

	fx := snap.Effects
	mixInt(fx.Shield)
	mix(fx.Slow)
	mix(fx.Magnet)
	mix(fx.Double)
	mix(fx.Invuln)
	mix(fx.TimeScale)

	for _, p := range snap.Pipes {
		mix(p.X)
		mix(p.Top)
		mix(p.Gap)
	}
	for _, a := range snap.Awards {
		mix(a.X)
		mix(a.Y)
		mixInt(a.Value())
	}
	for _, pu := range snap.Powerups {
		mix(pu.X)
		mix(pu.Y)
		mixInt(int(pu.Kind))
	}
	return h
}
