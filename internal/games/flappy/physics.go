package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Reference resolution the tunables are expressed in.
const (
	RefWidth  = 400.0
	RefHeight = 600.0
)

// World is the playfield size in pixels.
type World struct {
	W, H   float64
	FloorH float64
}

// FloorY is the y coordinate of the ground line.
func (w World) FloorY() float64 {
	return w.H - w.FloorH
}

// Bird is the player body. X is fixed, only Y and VY evolve.
type Bird struct {
	X, Y float64
	R    float64
	VY   float64
}

// overlaps reports a circle-circle hit against the bird.
func (b Bird) overlaps(x, y, r float64) bool {
	return core.CirclesOverlap(b.X, b.Y, b.R, x, y, r)
}

// frame holds the per-tick quantities derived from world size and difficulty.
type frame struct {
	floorY       float64
	hScale       float64
	gravity      float64
	jump         float64 // Upward impulse magnitude, always positive
	pipeSpeed    float64
	pipeW        float64
	gap          float64
	spawnEveryMs float64
}

// deriveFrame scales the base tunables to the current world and score.
func deriveFrame(cfg *config.FlappyConfig, w World, d config.Difficulty) frame {
	hScale := w.H / RefHeight
	wScale := w.W / RefWidth
	baseGap := math.Max(cfg.Pipes.MinBaseGap, w.H*cfg.Pipes.GapRatio)

	return frame{
		floorY:       w.FloorY(),
		hScale:       hScale,
		gravity:      cfg.Bird.Gravity * hScale,
		jump:         math.Abs(cfg.Bird.Jump * hScale),
		pipeSpeed:    cfg.Pipes.Speed * wScale * d.Speed,
		pipeW:        cfg.Pipes.Width * wScale,
		gap:          math.Max(cfg.Pipes.MinGap, baseGap*d.Gap),
		spawnEveryMs: cfg.Pipes.SpawnEveryMs * d.Spawn,
	}
}

// integrateBird applies gravity over dt.
func (e *Engine) integrateBird(dt float64, f frame) {
	e.bird.VY += f.gravity * dt
	e.bird.Y += e.bird.VY * dt
}

// idleBob sways the waiting bird. Purely cosmetic, scaled so dt == 0 is a no-op.
func (e *Engine) idleBob(dtReal float64) {
	e.bird.Y += math.Sin(e.clock/0.3) * 0.15 * (dtReal * 60)
}

// resolveWorld checks the ceiling and floor, then the pipes.
// Leaving the world is fatal even during invulnerability; only pipes are skipped.
func (e *Engine) resolveWorld(f frame) {
	b := e.bird
	if b.Y+b.R >= f.floorY || b.Y-b.R <= 0 {
		e.endRun()
		return
	}
	if e.effects.Invuln > 0 {
		return
	}

	for i := range e.pipes {
		p := &e.pipes[i]
		if b.X+b.R <= p.X || b.X-b.R >= p.X+p.W {
			continue
		}
		top := e.pipeTop(p, f)
		if b.Y-b.R > top && b.Y+b.R < top+p.Gap {
			continue
		}

		if e.effects.Shield > 0 {
			e.effects.Shield--
			e.effects.Invuln = e.cfg.Effects.PipeGrace
			lo := top + b.R + 4
			hi := top + p.Gap - b.R - 4
			e.bird.Y = core.ClampF((lo+hi)/2, lo, hi)
			e.bird.VY = -f.jump * e.cfg.Effects.PipeBounce
			e.emit(ShieldSaved{X: e.bird.X, Y: e.bird.Y})
		} else {
			e.endRun()
		}
		// Only the first overlapping pipe counts.
		return
	}
}
