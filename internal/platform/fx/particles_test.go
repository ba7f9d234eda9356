package fx

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

func TestPopperLifecycle(t *testing.T) {
	p := NewPopper(7)
	p.Observe([]flappy.Event{
		flappy.StarCollected{X: 100, Y: 100, Color: "#f5c400"},
		flappy.PowerupCollected{X: 50, Y: 50, Kind: flappy.PowerMagnet},
		flappy.HazardHit{X: 10, Y: 10},
	})
	if len(p.Particles()) != 2*PopCount {
		t.Fatalf("particles = %d, expected %d", len(p.Particles()), 2*PopCount)
	}
	for _, pt := range p.Particles() {
		if pt.VY > -60 || pt.VY < -180 || pt.R < 2 || pt.R > 4 {
			t.Errorf("particle out of range: %+v", pt)
		}
	}

	// Fully faded after 1/0.03 frames.
	for i := 0; i < 40; i++ {
		p.Step(1.0 / 60)
	}
	if len(p.Particles()) != 0 {
		t.Errorf("particles = %d after fade, expected 0", len(p.Particles()))
	}

	p.Observe([]flappy.Event{flappy.HazardHit{Shielded: true}})
	if len(p.Particles()) != PopCount {
		t.Errorf("shielded hit particles = %d, expected %d", len(p.Particles()), PopCount)
	}
	p.Observe([]flappy.Event{flappy.RunStarted{}})
	if len(p.Particles()) != 0 {
		t.Errorf("RunStarted should clear particles, got %d", len(p.Particles()))
	}
}

func TestPopperStepMovesAndFades(t *testing.T) {
	p := NewPopper(1)
	p.Observe([]flappy.Event{flappy.StarCollected{X: 10, Y: 20, Color: "#f5c400"}})
	before := p.Particles()[0]

	p.Step(0.1)
	after := p.Particles()[0]
	if after.Y >= before.Y {
		t.Errorf("Y = %v, expected above %v", after.Y, before.Y)
	}
	if after.VY <= before.VY {
		t.Errorf("VY = %v, expected gravity to pull above %v", after.VY, before.VY)
	}
	if after.A >= 1 {
		t.Errorf("A = %v, expected fading below 1", after.A)
	}
}
