package flappy

import "github.com/vovakirdan/flappy-arcade/internal/config"

// Cadence bounds the countdowns, measured in spawned pipes.
type Cadence struct {
	StarMin, StarMax   int
	PowerMin, PowerMax int
}

// CadenceFrom reads the countdown bounds from the awards config.
func CadenceFrom(a config.AwardsConfig) Cadence {
	return Cadence{StarMin: a.StarMin, StarMax: a.StarMax, PowerMin: a.PowerMin, PowerMax: a.PowerMax}
}

// SpawnPlan schedules awards and power-ups relative to pipe spawns.
type SpawnPlan struct {
	NextStarIn  int
	NextPowerIn int
	cadence     Cadence
}

// NewSpawnPlan creates a plan with the given cadence. Counters start at zero
// until the first Reset.
func NewSpawnPlan(c Cadence) SpawnPlan {
	return SpawnPlan{cadence: c}
}

// Reset rolls both countdowns. initial forces a star on the very next pipe.
func (p *SpawnPlan) Reset(rng *RNG, initial bool) {
	p.RerollStar(rng)
	p.RerollPower(rng)
	if initial {
		p.NextStarIn = 1
	}
}

// PipeSpawned counts one pipe against both countdowns and reports which
// spawns are due. The caller places the entity and then rerolls, so the
// placement draws come before the reroll draw.
func (p *SpawnPlan) PipeSpawned() (star, power bool) {
	p.NextStarIn--
	p.NextPowerIn--
	return p.NextStarIn <= 0, p.NextPowerIn <= 0
}

// RerollStar draws a fresh star countdown.
func (p *SpawnPlan) RerollStar(rng *RNG) {
	p.NextStarIn = rng.RandInt(p.cadence.StarMin, p.cadence.StarMax)
}

// RerollPower draws a fresh power-up countdown.
func (p *SpawnPlan) RerollPower(rng *RNG) {
	p.NextPowerIn = rng.RandInt(p.cadence.PowerMin, p.cadence.PowerMax)
}
