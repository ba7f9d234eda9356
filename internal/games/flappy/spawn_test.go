package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

func TestSpawnPlanInitialReset(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		rng := NewRNG(seed)
		plan := NewSpawnPlan(defaultCadence())
		plan.Reset(rng, true)

		if plan.NextStarIn != 1 {
			t.Fatalf("seed %d: NextStarIn = %d, expected 1", seed, plan.NextStarIn)
		}
		if plan.NextPowerIn < 2 || plan.NextPowerIn > 4 {
			t.Fatalf("seed %d: NextPowerIn = %d, expected [2, 4]", seed, plan.NextPowerIn)
		}
	}
}

func TestSpawnPlanRerollRanges(t *testing.T) {
	rng := NewRNG(99)
	plan := NewSpawnPlan(defaultCadence())
	plan.Reset(rng, false)

	for i := 0; i < 500; i++ {
		star, power := plan.PipeSpawned()
		if star {
			plan.RerollStar(rng)
		}
		if power {
			plan.RerollPower(rng)
		}
		if plan.NextStarIn < 1 || plan.NextStarIn > 2 {
			t.Fatalf("pipe %d: NextStarIn = %d, expected [1, 2]", i, plan.NextStarIn)
		}
		if plan.NextPowerIn < 1 || plan.NextPowerIn > 4 {
			t.Fatalf("pipe %d: NextPowerIn = %d, expected [1, 4]", i, plan.NextPowerIn)
		}
		if power && (plan.NextPowerIn < 2 || plan.NextPowerIn > 4) {
			t.Fatalf("pipe %d: rerolled NextPowerIn = %d, expected [2, 4]", i, plan.NextPowerIn)
		}
	}
}

func TestSpawnPlanCadence(t *testing.T) {
	rng := NewRNG(5)
	plan := NewSpawnPlan(defaultCadence())
	plan.Reset(rng, true)

	stars, powers := 0, 0
	const pipes = 3000
	for i := 0; i < pipes; i++ {
		star, power := plan.PipeSpawned()
		if star {
			stars++
			plan.RerollStar(rng)
		}
		if power {
			powers++
			plan.RerollPower(rng)
		}
	}

	// Averages are ~1.5 and ~3 pipes per spawn.
	if stars < pipes/2 || stars > pipes {
		t.Errorf("stars = %d over %d pipes, expected between %d and %d", stars, pipes, pipes/2, pipes)
	}
	if powers < pipes/4 || powers > pipes/2 {
		t.Errorf("powers = %d over %d pipes, expected between %d and %d", powers, pipes, pipes/4, pipes/2)
	}
}

func TestSpawnPlanFirstPipeDueStar(t *testing.T) {
	rng := NewRNG(3)
	plan := NewSpawnPlan(defaultCadence())
	plan.Reset(rng, true)

	star, power := plan.PipeSpawned()
	if !star {
		t.Error("first pipe after initial reset should carry a star")
	}
	if power {
		t.Error("first pipe should never carry a power-up")
	}
}

func defaultCadence() Cadence {
	return CadenceFrom(config.DefaultFlappyConfig().Awards)
}
