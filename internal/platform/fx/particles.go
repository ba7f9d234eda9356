// Package fx holds the cosmetic layers shared by the terminal and window
// hosts: pickup sparks and drifting clouds. Nothing here feeds back into the
// simulation.
package fx

import (
	"math/rand/v2"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

const (
	PopCount      = 7
	popGravity    = 120.0
	popFadePerSec = 0.03 * 60
)

// Particle is a spark in world coordinates. A is its opacity in (0, 1].
type Particle struct {
	X, Y   float64
	VX, VY float64
	A, R   float64
	Color  core.Color
}

// Popper owns the pickup sparks.
type Popper struct {
	rng   *rand.Rand
	parts []Particle
}

// NewPopper creates an empty popper with its own random stream.
func NewPopper(seed uint64) *Popper {
	return &Popper{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Particles returns the live sparks. The slice is reused by Step.
func (p *Popper) Particles() []Particle {
	return p.parts
}

// Observe spawns sparks for pickup events and clears them on a new run.
func (p *Popper) Observe(events []flappy.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case flappy.StarCollected:
			p.pop(ev.X, ev.Y, ev.Color)
		case flappy.PowerupCollected:
			p.pop(ev.X, ev.Y, ev.Kind.Color())
		case flappy.HazardHit:
			if ev.Shielded {
				p.pop(ev.X, ev.Y, core.ColorShield)
			}
		case flappy.RunStarted:
			p.parts = p.parts[:0]
		}
	}
}

func (p *Popper) pop(x, y float64, color core.Color) {
	for range PopCount {
		p.parts = append(p.parts, Particle{
			X:     x,
			Y:     y,
			VX:    (p.rng.Float64() - 0.5) * 180,
			VY:    -60 - p.rng.Float64()*120,
			A:     1,
			R:     2 + p.rng.Float64()*2,
			Color: color,
		})
	}
}

// Step moves the sparks by dt seconds and drops the faded ones.
func (p *Popper) Step(dt float64) {
	live := p.parts[:0]
	for _, pt := range p.parts {
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		pt.VY += popGravity * dt
		pt.A -= popFadePerSec * dt
		if pt.A > 0 {
			live = append(live, pt)
		}
	}
	p.parts = live
}
