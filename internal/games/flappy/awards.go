package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Payload is what an award does when the bird touches it: Star or Hazard.
type Payload interface {
	payload()
}

// Star is a collectible worth its tier's value.
type Star struct {
	Tier StarTier
}

// Hazard is a bomb. It costs a shield charge or ends the run.
type Hazard struct{}

func (Star) payload()   {}
func (Hazard) payload() {}

// Award is a star or hazard floating near a pipe.
type Award struct {
	X, Y    float64
	R       float64
	VX, VY  float64 // Residual velocity, decays every tick
	Payload Payload
}

// IsHazard reports whether the award is a bomb.
func (a Award) IsHazard() bool {
	_, ok := a.Payload.(Hazard)
	return ok
}

// Value returns the star value, 0 for hazards.
func (a Award) Value() int {
	if s, ok := a.Payload.(Star); ok {
		return s.Tier.Value
	}
	return 0
}

// Kind returns "star1", "star2", "star3" or "bomb".
func (a Award) Kind() string {
	if s, ok := a.Payload.(Star); ok {
		return s.Tier.Key
	}
	return "bomb"
}

// Color returns the render color.
func (a Award) Color() core.Color {
	if s, ok := a.Payload.(Star); ok {
		return s.Tier.Color
	}
	return core.ColorHazard
}

// Award placement and radius constants, in reference pixels.
const (
	awardEdgeMargin  = 30
	awardBaseRadius  = 8
	awardMinRadius   = 7
	hazardRadiusMult = 1.2
	magnetEpsilon    = 0.001
)

// spawnAward places a star or hazard just behind the new pipe, inside its gap band.
func (e *Engine) spawnAward(p Pipe, f frame) {
	hazard := e.rng.Next() < e.cfg.Awards.HazardChance
	x := p.X + p.W + math.Min(60, f.gap*0.25) + e.rng.Next()*24
	y := p.BaseTop + 10 + e.rng.Next()*math.Max(10, f.gap-20)
	y = core.ClampF(y, awardEdgeMargin, f.floorY-awardEdgeMargin)
	baseR := math.Max(awardMinRadius, awardBaseRadius*f.hScale)

	a := Award{X: x, Y: y}
	if hazard {
		a.R = baseR * hazardRadiusMult
		a.Payload = Hazard{}
	} else {
		tier := SelectTier(e.score, e.rng.Next())
		a.R = baseR * tier.RadiusScale
		a.Payload = Star{Tier: tier}
	}
	e.awards = append(e.awards, a)
}

// moveAwards pulls stars toward the bird while the magnet is active and
// otherwise scrolls awards with the pipes.
func (e *Engine) moveAwards(dt float64, f frame) {
	drag := e.cfg.Awards.StarDrag
	homing := e.cfg.Awards.MagnetSpeed * f.hScale
	for i := range e.awards {
		a := &e.awards[i]
		if e.effects.Magnet > 0 && !a.IsHazard() {
			ux, uy := core.Towards(a.X, a.Y, e.bird.X, e.bird.Y, magnetEpsilon)
			a.X += ux * homing * dt
			a.Y += uy * homing * dt
			continue
		}
		a.X += -f.pipeSpeed*dt + a.VX*dt
		a.Y += a.VY * dt
		a.VX *= drag
		a.VY *= drag
	}
}

// collectAwards resolves bird contact and drops off-screen awards.
// Awards are left alone once the run has ended in this pass.
func (e *Engine) collectAwards(f frame) {
	kept := e.awards[:0]
	for _, a := range e.awards {
		if e.state == StatePlaying && e.bird.overlaps(a.X, a.Y, a.R) {
			e.touchAward(a, f)
			continue
		}
		if a.X+a.R < -cullMargin {
			continue
		}
		kept = append(kept, a)
	}
	clear(e.awards[len(kept):])
	e.awards = kept
}

func (e *Engine) touchAward(a Award, f frame) {
	switch p := a.Payload.(type) {
	case Hazard:
		if e.effects.Shield > 0 {
			e.effects.Shield--
			e.effects.Invuln = e.cfg.Effects.HazardGrace
			e.bird.VY = -f.jump * e.cfg.Effects.HazardBounce
			e.emit(HazardHit{X: a.X, Y: a.Y, Shielded: true})
			return
		}
		e.emit(HazardHit{X: a.X, Y: a.Y})
		e.endRun()
	case Star:
		points := p.Tier.Value * e.effects.multiplier()
		e.stars += p.Tier.Value
		e.score += points
		e.emit(StarCollected{X: a.X, Y: a.Y, Value: p.Tier.Value, Points: points, Color: p.Tier.Color})
	}
}
