package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Pipe is a vertical barrier pair with a gap. BaseTop is the top of the gap
// before oscillation.
type Pipe struct {
	X, W     float64
	BaseTop  float64
	Gap      float64
	OscAmp   float64 // Zero for static pipes
	OscSpeed float64 // Radians per second
	OscPhase float64
	Scored   bool
}

// Moving reports whether the pipe oscillates.
func (p Pipe) Moving() bool {
	return p.OscAmp != 0
}

// TopAt returns the gap top at the given clock, clamped to [minTop, maxTop].
func (p Pipe) TopAt(clock, minTop, maxTop float64) float64 {
	if !p.Moving() {
		return p.BaseTop
	}
	raw := p.BaseTop + math.Sin(p.OscPhase+clock*p.OscSpeed)*p.OscAmp
	return core.ClampF(raw, minTop, maxTop)
}

// pipeTop resolves a pipe's current top using its own gap for the lower bound.
func (e *Engine) pipeTop(p *Pipe, f frame) float64 {
	return p.TopAt(e.clock, e.cfg.Pipes.MinTop, f.floorY-p.Gap-e.cfg.Pipes.FloorMargin)
}

// advanceSpawner runs the pipe timer and spawns at most one pipe per tick.
func (e *Engine) advanceSpawner(dt float64, f frame) {
	e.pipeTimer += dt * 1000
	if e.pipeTimer < f.spawnEveryMs {
		return
	}
	e.pipeTimer = 0

	p := e.spawnPipe(f)
	e.pipes = append(e.pipes, p)

	star, power := e.plan.PipeSpawned()
	if star {
		e.spawnAward(p, f)
		e.plan.RerollStar(e.rng)
	}
	if power {
		e.spawnPowerup(p, f)
		e.plan.RerollPower(e.rng)
	}
}

// spawnPipe places a new pipe just beyond the right edge. The gap center
// moves at most MaxShift of the world height from the previous pipe's.
func (e *Engine) spawnPipe(f frame) Pipe {
	pc := e.cfg.Pipes
	gap := f.gap
	minTop := pc.MinTop
	maxTop := f.floorY - gap - pc.FloorMargin

	prevCenter := e.world.H / 2
	if n := len(e.pipes); n > 0 {
		prev := e.pipes[n-1]
		prevCenter = prev.BaseTop + prev.Gap/2
	}

	centerLo := minTop + gap/2
	centerHi := max(centerLo, maxTop+gap/2)
	shift := e.world.H * pc.MaxShift
	lo := core.ClampF(prevCenter-shift, centerLo, centerHi)
	hi := core.ClampF(prevCenter+shift, lo, centerHi)

	center := lo + e.rng.Next()*(hi-lo)
	top := center - gap/2

	headroom := max(0, (maxTop-minTop-20)/2)
	amp := 0.0
	if e.rng.Next() < pc.MovingChance && headroom > pc.MinHeadroom {
		amp = min(pc.MaxAmplitude, headroom)
	}
	speed := 0.8 + e.rng.Next()*0.8
	phase := e.rng.Next() * math.Pi * 2

	return Pipe{
		X:        e.world.W + f.pipeW,
		W:        f.pipeW,
		BaseTop:  top,
		Gap:      gap,
		OscAmp:   amp,
		OscSpeed: speed,
		OscPhase: phase,
	}
}

// movePipes scrolls pipes, scores the ones the bird has cleared and drops
// the ones past the left edge.
func (e *Engine) movePipes(dt float64, f frame) {
	kept := e.pipes[:0]
	for _, p := range e.pipes {
		p.X -= f.pipeSpeed * dt
		if !p.Scored && p.X+p.W < e.bird.X-e.bird.R {
			p.Scored = true
			e.score += e.effects.multiplier()
			e.emit(PipePassed{Score: e.score})
		}
		if p.X+p.W < -cullMargin {
			continue
		}
		kept = append(kept, p)
	}
	e.pipes = kept
}

// cullMargin is how far past the left edge entities survive.
const cullMargin = 10
