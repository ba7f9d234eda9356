package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// PowerKind identifies a power-up.
type PowerKind int

const (
	PowerShield PowerKind = iota
	PowerSlow
	PowerMagnet
	PowerDouble
)

// PowerKinds lists every kind in draw order.
var PowerKinds = [...]PowerKind{PowerShield, PowerSlow, PowerMagnet, PowerDouble}

// String returns the kind name.
func (k PowerKind) String() string {
	switch k {
	case PowerShield:
		return "shield"
	case PowerSlow:
		return "slow"
	case PowerMagnet:
		return "magnet"
	case PowerDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Color returns the render color of the kind.
func (k PowerKind) Color() core.Color {
	switch k {
	case PowerShield:
		return core.ColorShield
	case PowerSlow:
		return core.ColorSlow
	case PowerMagnet:
		return core.ColorMagnet
	default:
		return core.ColorDouble
	}
}

// Glyph returns a one-character label for the kind.
func (k PowerKind) Glyph() rune {
	switch k {
	case PowerShield:
		return 'S'
	case PowerSlow:
		return 'Z'
	case PowerMagnet:
		return 'U'
	default:
		return '2'
	}
}

// Powerup is a pickup floating in a pipe gap.
type Powerup struct {
	X, Y   float64
	R      float64
	VX, VY float64
	Age    float64 // Seconds since spawn, in scaled time
	Kind   PowerKind
}

// Effects are the active modifiers. Timed effects are seconds remaining.
type Effects struct {
	Shield    int
	Slow      float64
	Magnet    float64
	Double    float64
	Invuln    float64
	TimeScale float64
}

// multiplier is the score factor from the double effect.
func (fx Effects) multiplier() int {
	if fx.Double > 0 {
		return 2
	}
	return 1
}

// decay counts timed effects down by real time, never below zero.
func (fx *Effects) decay(dtReal float64) {
	fx.Slow = core.Decay(fx.Slow, dtReal)
	fx.Magnet = core.Decay(fx.Magnet, dtReal)
	fx.Double = core.Decay(fx.Double, dtReal)
	fx.Invuln = core.Decay(fx.Invuln, dtReal)
}

// apply stacks a picked-up power-up onto the effects, honoring caps.
func (fx *Effects) apply(kind PowerKind, cfg config.EffectsConfig) {
	switch kind {
	case PowerShield:
		fx.Shield = min(cfg.ShieldCap, fx.Shield+1)
	case PowerSlow:
		fx.Slow = math.Min(cfg.SlowCap, fx.Slow+cfg.SlowAdd)
	case PowerMagnet:
		fx.Magnet = math.Min(cfg.MagnetCap, fx.Magnet+cfg.MagnetAdd)
	case PowerDouble:
		fx.Double = math.Min(cfg.DoubleCap, fx.Double+cfg.DoubleAdd)
	}
}

const (
	powerBaseRadius = 9
	powerMinRadius  = 9
)

// spawnPowerup places a random power-up in the middle band of the pipe gap.
func (e *Engine) spawnPowerup(p Pipe, f frame) {
	idx := min(len(PowerKinds)-1, int(e.rng.Next()*float64(len(PowerKinds))))
	kind := PowerKinds[idx]
	y := p.BaseTop + f.gap*(0.35+e.rng.Next()*0.3)
	x := p.X + p.W + 100 + e.rng.Next()*30

	e.powerups = append(e.powerups, Powerup{
		X:    x,
		Y:    core.ClampF(y, awardEdgeMargin, f.floorY-awardEdgeMargin),
		R:    math.Max(powerMinRadius, powerBaseRadius*f.hScale),
		Kind: kind,
	})
}

// movePowerups scrolls power-ups with the pipes.
func (e *Engine) movePowerups(dt float64, f frame) {
	drag := e.cfg.Awards.PowerDrag
	for i := range e.powerups {
		pu := &e.powerups[i]
		pu.Age += dt
		pu.X += -f.pipeSpeed*dt + pu.VX*dt
		pu.Y += pu.VY * dt
		pu.VX *= drag
		pu.VY *= drag
	}
}

// collectPowerups applies touched power-ups and drops off-screen ones.
func (e *Engine) collectPowerups() {
	kept := e.powerups[:0]
	for _, pu := range e.powerups {
		if e.bird.overlaps(pu.X, pu.Y, pu.R) {
			e.effects.apply(pu.Kind, e.cfg.Effects)
			e.emit(PowerupCollected{X: pu.X, Y: pu.Y, Kind: pu.Kind})
			continue
		}
		if pu.X+pu.R < -cullMargin {
			continue
		}
		kept = append(kept, pu)
	}
	clear(e.powerups[len(kept):])
	e.powerups = kept
}
