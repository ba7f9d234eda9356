package flappy

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

const tick = 1.0 / 60

func newTestEngine(seed int64) *Engine {
	return NewEngine(config.DefaultFlappyConfig(), WithSeed(seed))
}

// newFloatingEngine returns a started engine whose bird barely falls, so
// tests can place entities without racing gravity.
func newFloatingEngine(seed int64) *Engine {
	cfg := config.DefaultFlappyConfig()
	cfg.Bird.Gravity = 1e-6
	e := NewEngine(cfg, WithSeed(seed))
	e.Flap()
	e.Update(0)
	return e
}

func hasEvent[T Event](events []Event) (T, bool) {
	for _, ev := range events {
		if v, ok := ev.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestScenarioFlapStartsRun(t *testing.T) {
	e := newTestEngine(1)
	if e.State() != StateReady {
		t.Fatalf("initial state = %v, expected ready", e.State())
	}

	e.Flap()
	snap := e.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("state = %v, expected playing", snap.State)
	}
	if snap.Score != 0 || snap.Stars != 0 {
		t.Errorf("score/stars = %d/%d, expected 0/0", snap.Score, snap.Stars)
	}
	if len(snap.Pipes) != 0 || len(snap.Awards) != 0 || len(snap.Powerups) != 0 {
		t.Errorf("entities = %d/%d/%d, expected none", len(snap.Pipes), len(snap.Awards), len(snap.Powerups))
	}
	if snap.Plan.NextStarIn != 1 {
		t.Errorf("NextStarIn = %d, expected 1", snap.Plan.NextStarIn)
	}

	events := e.Update(0)
	started, ok := hasEvent[RunStarted](events)
	if !ok {
		t.Fatal("expected RunStarted event")
	}
	if started.Seed != 1 {
		t.Errorf("RunStarted.Seed = %d, expected 1", started.Seed)
	}
}

func TestScenarioFallThroughFloorEndsRun(t *testing.T) {
	tests := []struct {
		name     string
		prevBest int
		score    int
		newBest  bool
	}{
		{"keeps higher stored best", 7, 3, false},
		{"records new best", 7, 12, true},
		{"ties do not count as new", 5, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEngine(config.DefaultFlappyConfig(), WithSeed(3), WithBestScore(tc.prevBest))
			e.Flap()
			e.score = tc.score

			var ended RunEnded
			found := false
			for i := 0; i < 300 && e.State() == StatePlaying; i++ {
				if ev, ok := hasEvent[RunEnded](e.Update(tick)); ok {
					ended, found = ev, true
				}
			}

			if e.State() != StateOver {
				t.Fatalf("state = %v, expected over", e.State())
			}
			if !found {
				t.Fatal("expected RunEnded event")
			}
			want := max(tc.prevBest, tc.score)
			if e.Best() != want || ended.Best != want {
				t.Errorf("best = %d (event %d), expected %d", e.Best(), ended.Best, want)
			}
			if ended.NewBest != tc.newBest {
				t.Errorf("NewBest = %v, expected %v", ended.NewBest, tc.newBest)
			}
			if ended.Score != tc.score {
				t.Errorf("RunEnded.Score = %d, expected %d", ended.Score, tc.score)
			}
		})
	}
}

func TestBoundaryFatalDuringInvulnerability(t *testing.T) {
	e := newTestEngine(4)
	e.Flap()
	for i := 0; i < 300 && e.State() == StatePlaying; i++ {
		e.effects.Invuln = 5
		e.Update(tick)
	}
	if e.State() != StateOver {
		t.Errorf("state = %v, expected over", e.State())
	}
}

func TestCeilingIsFatal(t *testing.T) {
	e := newFloatingEngine(4)
	e.bird.Y = e.bird.R - 1
	e.Update(tick)
	if e.State() != StateOver {
		t.Errorf("state = %v, expected over", e.State())
	}
}

func TestScenarioShieldedHazard(t *testing.T) {
	e := newFloatingEngine(5)
	e.effects.Shield = 2
	e.awards = append(e.awards, Award{X: e.bird.X, Y: e.bird.Y, R: 8, Payload: Hazard{}})

	events := e.Update(tick)

	if e.effects.Shield != 1 {
		t.Errorf("Shield = %d, expected 1", e.effects.Shield)
	}
	if e.effects.Invuln <= 0 {
		t.Errorf("Invuln = %v, expected > 0", e.effects.Invuln)
	}
	if e.State() != StatePlaying {
		t.Errorf("state = %v, expected playing", e.State())
	}
	if len(e.awards) != 0 {
		t.Errorf("awards = %d, expected hazard removed", len(e.awards))
	}
	if e.bird.VY >= 0 {
		t.Errorf("bird VY = %v, expected upward bounce", e.bird.VY)
	}
	hit, ok := hasEvent[HazardHit](events)
	if !ok || !hit.Shielded {
		t.Errorf("HazardHit = %+v (found %v), expected shielded hit", hit, ok)
	}
}

func TestUnshieldedHazardEndsRun(t *testing.T) {
	e := newFloatingEngine(5)
	e.awards = append(e.awards,
		Award{X: e.bird.X, Y: e.bird.Y, R: 8, Payload: Hazard{}},
		Award{X: e.bird.X, Y: e.bird.Y, R: 8, Payload: Star{Tier: TierGold}},
	)

	events := e.Update(tick)

	if e.State() != StateOver {
		t.Fatalf("state = %v, expected over", e.State())
	}
	if _, ok := hasEvent[RunEnded](events); !ok {
		t.Error("expected RunEnded event")
	}
	// The run ended before the star was reached.
	if e.stars != 0 {
		t.Errorf("stars = %d, expected 0", e.stars)
	}
	if len(e.awards) != 1 {
		t.Errorf("awards = %d, expected the star to remain", len(e.awards))
	}
}

func TestScenarioDoubleStar(t *testing.T) {
	e := newFloatingEngine(6)
	e.effects.Double = 5
	e.awards = append(e.awards, Award{X: e.bird.X, Y: e.bird.Y, R: 10, Payload: Star{Tier: TierPurple}})

	events := e.Update(tick)

	if e.score != 4 {
		t.Errorf("score = %d, expected 4", e.score)
	}
	if e.stars != 2 {
		t.Errorf("stars = %d, expected 2", e.stars)
	}
	ev, ok := hasEvent[StarCollected](events)
	if !ok {
		t.Fatal("expected StarCollected event")
	}
	if ev.Value != 2 || ev.Points != 4 || ev.Color != TierPurple.Color {
		t.Errorf("StarCollected = %+v, expected value 2, points 4, purple", ev)
	}
}

func TestStarWithoutDouble(t *testing.T) {
	e := newFloatingEngine(6)
	e.awards = append(e.awards, Award{X: e.bird.X, Y: e.bird.Y, R: 10, Payload: Star{Tier: TierBlack}})
	e.Update(tick)

	if e.score != 3 || e.stars != 3 {
		t.Errorf("score/stars = %d/%d, expected 3/3", e.score, e.stars)
	}
}

func TestUpdateZeroIsNoop(t *testing.T) {
	e := newTestEngine(8)
	e.Flap()
	for i := 0; i < 200 && e.State() == StatePlaying; i++ {
		e.effects.Invuln = 5
		e.effects.Shield = 3
		if e.bird.Y > e.world.H*0.45 {
			e.Flap()
		}
		e.Update(tick)
	}
	if len(e.pipes) == 0 {
		t.Fatal("expected at least one pipe before checking idempotence")
	}

	before := e.Snapshot()
	e.Update(0)
	after := e.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("Update(0) changed state:\nbefore %+v\nafter  %+v", before, after)
	}
	if before.Hash() != after.Hash() {
		t.Error("Update(0) changed the snapshot hash")
	}
}

func TestUpdateZeroOnlyEasesTimeScaleTowardTarget(t *testing.T) {
	e := newFloatingEngine(8)
	e.effects.Slow = 5
	e.effects.TimeScale = 0.7
	y := e.bird.Y

	e.Update(0)

	// min(1, 0*0.5) is zero, so even the easing step is a no-op.
	if e.effects.TimeScale != 0.7 {
		t.Errorf("TimeScale = %v, expected 0.7", e.effects.TimeScale)
	}
	if e.effects.Slow != 5 || e.bird.Y != y {
		t.Error("Update(0) changed timers or positions")
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) []uint64 {
		e := newTestEngine(seed)
		e.Flap()
		hashes := make([]uint64, 0, 900)
		for i := 0; i < 900; i++ {
			e.effects.Invuln = 5
			e.effects.Shield = 3
			if e.bird.Y > e.world.H*0.45 && e.bird.VY > 0 {
				e.Flap()
			}
			e.Update(tick)
			snap := e.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		return hashes
	}

	a, b := run(12345), run(12345)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: hashes differ %d vs %d", i, a[i], b[i])
		}
	}

	c := run(54321)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical runs")
	}
}

func TestLongRunInvariants(t *testing.T) {
	e := newTestEngine(2024)
	e.Flap()

	starTotal := 0
	var prev *Pipe
	seen := 0
	for i := 0; i < 6000; i++ {
		if e.State() != StatePlaying {
			t.Fatalf("tick %d: run ended unexpectedly", i)
		}
		e.effects.Invuln = 5
		e.effects.Shield = 3
		if e.bird.Y > e.world.H*0.45 && e.bird.VY > 0 {
			e.Flap()
		}
		for _, ev := range e.Update(tick) {
			if s, ok := ev.(StarCollected); ok {
				starTotal += s.Value
			}
		}

		fx := e.effects
		if fx.Shield < 0 || fx.Shield > 3 {
			t.Fatalf("tick %d: Shield = %d out of [0, 3]", i, fx.Shield)
		}
		if fx.Slow < 0 || fx.Slow > 10 || fx.Magnet < 0 || fx.Magnet > 12 || fx.Double < 0 || fx.Double > 10 {
			t.Fatalf("tick %d: timed effects out of range: %+v", i, fx)
		}
		if fx.TimeScale < 0.5-1e-9 || fx.TimeScale > 1+1e-9 {
			t.Fatalf("tick %d: TimeScale = %v", i, fx.TimeScale)
		}
		if e.score < 0 || e.stars != starTotal {
			t.Fatalf("tick %d: score %d, stars %d, collected %d", i, e.score, e.stars, starTotal)
		}
		if e.plan.NextStarIn < 1 || e.plan.NextStarIn > 2 || e.plan.NextPowerIn < 1 || e.plan.NextPowerIn > 4 {
			t.Fatalf("tick %d: plan out of range %+v", i, e.plan)
		}

		// Check each pipe once, on the tick it spawns.
		n := len(e.pipes)
		if n == 0 {
			continue
		}
		p := e.pipes[n-1]
		if prev != nil && p.BaseTop == prev.BaseTop && p.Gap == prev.Gap && p.OscPhase == prev.OscPhase {
			continue
		}
		floorY := e.world.FloorY()
		if p.BaseTop < 40-1e-9 || p.BaseTop > floorY-p.Gap-40+1e-9 {
			t.Fatalf("pipe %d: BaseTop %v outside [40, %v]", seen, p.BaseTop, floorY-p.Gap-40)
		}
		if p.Gap < 70 {
			t.Fatalf("pipe %d: Gap %v below 70", seen, p.Gap)
		}
		if prev != nil {
			shift := math.Abs((p.BaseTop + p.Gap/2) - (prev.BaseTop + prev.Gap/2))
			if shift > e.world.H*0.6+1e-9 {
				t.Fatalf("pipe %d: center shift %v exceeds 60%% of height", seen, shift)
			}
		}
		cp := p
		prev = &cp
		seen++
	}
	if seen < 10 {
		t.Errorf("pipes spawned = %d, expected at least 10", seen)
	}
}

func TestFirstPipeBringsStar(t *testing.T) {
	e := newFloatingEngine(11)
	for i := 0; i < 200 && len(e.pipes) == 0; i++ {
		e.Update(tick)
	}
	if len(e.pipes) != 1 {
		t.Fatalf("pipes = %d, expected 1", len(e.pipes))
	}
	p := e.pipes[0]
	if p.Gap != 156 {
		t.Errorf("Gap = %v, expected 156 at score 0", p.Gap)
	}
	if p.W != 68 {
		t.Errorf("W = %v, expected 68", p.W)
	}
	if len(e.awards) != 1 {
		t.Fatalf("awards = %d, expected 1", len(e.awards))
	}
	a := e.awards[0]
	if a.X <= p.X+p.W {
		t.Errorf("award x %v should be behind the pipe (%v)", a.X, p.X+p.W)
	}
	if a.Y < 30 || a.Y > e.world.FloorY()-30 {
		t.Errorf("award y %v outside the play band", a.Y)
	}
	if len(e.powerups) != 0 {
		t.Errorf("powerups = %d, expected none on the first pipe", len(e.powerups))
	}
}

func TestPipeScoringAndCulling(t *testing.T) {
	tests := []struct {
		name   string
		double float64
		points int
	}{
		{"single", 0, 1},
		{"doubled", 5, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newFloatingEngine(12)
			e.effects.Double = tc.double
			// Trailing edge just ahead of the bird's leading edge, gap around the bird.
			e.pipes = append(e.pipes, Pipe{X: e.bird.X - e.bird.R - 67, W: 68, BaseTop: 200, Gap: 156})

			events := e.Update(tick)
			if e.score != tc.points {
				t.Errorf("score = %d, expected %d", e.score, tc.points)
			}
			if !e.pipes[0].Scored {
				t.Error("pipe should be marked scored")
			}
			if _, ok := hasEvent[PipePassed](events); !ok {
				t.Error("expected PipePassed event")
			}

			e.Update(tick)
			if e.score != tc.points {
				t.Errorf("score after second tick = %d, expected %d (no double count)", e.score, tc.points)
			}
		})
	}

	e := newFloatingEngine(12)
	e.pipes = append(e.pipes, Pipe{X: -77, W: 68, BaseTop: 200, Gap: 156, Scored: true})
	e.Update(tick)
	if len(e.pipes) != 0 {
		t.Errorf("pipes = %d, expected off-screen pipe culled", len(e.pipes))
	}
}

func TestPipeCollision(t *testing.T) {
	blocking := func(e *Engine) Pipe {
		return Pipe{X: e.bird.X - 20, W: 68, BaseTop: 300, Gap: 156}
	}

	t.Run("no shield ends run", func(t *testing.T) {
		e := newFloatingEngine(13)
		e.pipes = append(e.pipes, blocking(e))
		e.Update(tick)
		if e.State() != StateOver {
			t.Errorf("state = %v, expected over", e.State())
		}
	})

	t.Run("shield snaps into gap", func(t *testing.T) {
		e := newFloatingEngine(13)
		e.effects.Shield = 1
		e.pipes = append(e.pipes, blocking(e))
		events := e.Update(tick)

		if e.State() != StatePlaying {
			t.Fatalf("state = %v, expected playing", e.State())
		}
		if e.effects.Shield != 0 {
			t.Errorf("Shield = %d, expected 0", e.effects.Shield)
		}
		if math.Abs(e.effects.Invuln-0.9) > 1e-9 {
			t.Errorf("Invuln = %v, expected 0.9", e.effects.Invuln)
		}
		if want := (318.0 + 438.0) / 2; math.Abs(e.bird.Y-want) > 1e-9 {
			t.Errorf("bird Y = %v, expected %v", e.bird.Y, want)
		}
		if want := -420 * 0.6; math.Abs(e.bird.VY-want) > 1e-9 {
			t.Errorf("bird VY = %v, expected %v", e.bird.VY, want)
		}
		if _, ok := hasEvent[ShieldSaved](events); !ok {
			t.Error("expected ShieldSaved event")
		}
	})

	t.Run("invulnerability skips pipes", func(t *testing.T) {
		e := newFloatingEngine(13)
		e.effects.Invuln = 1
		e.pipes = append(e.pipes, blocking(e))
		e.Update(tick)
		if e.State() != StatePlaying {
			t.Errorf("state = %v, expected playing", e.State())
		}
	})

	t.Run("clear gap passes", func(t *testing.T) {
		e := newFloatingEngine(13)
		e.pipes = append(e.pipes, Pipe{X: e.bird.X - 20, W: 68, BaseTop: 200, Gap: 156})
		e.Update(tick)
		if e.State() != StatePlaying {
			t.Errorf("state = %v, expected playing", e.State())
		}
	})
}

func TestPowerupPickupCaps(t *testing.T) {
	tests := []struct {
		name  string
		kind  PowerKind
		setup func(*Effects)
		check func(Effects) bool
	}{
		{"shield stacks", PowerShield, func(fx *Effects) { fx.Shield = 1 }, func(fx Effects) bool { return fx.Shield == 2 }},
		{"shield capped at 3", PowerShield, func(fx *Effects) { fx.Shield = 3 }, func(fx Effects) bool { return fx.Shield == 3 }},
		{"slow adds 6", PowerSlow, func(fx *Effects) {}, func(fx Effects) bool { return fx.Slow == 6 }},
		{"slow capped at 10", PowerSlow, func(fx *Effects) { fx.Slow = 8 }, func(fx Effects) bool { return fx.Slow == 10 }},
		{"magnet adds 8", PowerMagnet, func(fx *Effects) {}, func(fx Effects) bool { return fx.Magnet == 8 }},
		{"magnet capped at 12", PowerMagnet, func(fx *Effects) { fx.Magnet = 11 }, func(fx Effects) bool { return fx.Magnet == 12 }},
		{"double capped at 10", PowerDouble, func(fx *Effects) { fx.Double = 9 }, func(fx Effects) bool { return fx.Double == 10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newFloatingEngine(14)
			tc.setup(&e.effects)
			e.powerups = append(e.powerups, Powerup{X: e.bird.X, Y: e.bird.Y, R: 9, Kind: tc.kind})

			events := e.Update(tick)
			if !tc.check(e.effects) {
				t.Errorf("effects after %s = %+v", tc.kind, e.effects)
			}
			if len(e.powerups) != 0 {
				t.Error("power-up should be consumed")
			}
			ev, ok := hasEvent[PowerupCollected](events)
			if !ok || ev.Kind != tc.kind {
				t.Errorf("PowerupCollected = %+v (found %v), expected kind %s", ev, ok, tc.kind)
			}
		})
	}
}

func TestMagnetPullsStarsOnly(t *testing.T) {
	e := newFloatingEngine(15)
	e.effects.Magnet = 5
	e.awards = append(e.awards,
		Award{X: e.bird.X + 200, Y: e.bird.Y, R: 10, Payload: Star{Tier: TierGold}},
		Award{X: e.bird.X + 200, Y: e.bird.Y - 100, R: 10, Payload: Hazard{}},
	)
	e.Update(tick)

	star, bomb := e.awards[0], e.awards[1]
	homing := 560 * tick
	if got := e.bird.X + 200 - star.X; math.Abs(got-homing) > 1e-6 {
		t.Errorf("star moved %v, expected %v", got, homing)
	}
	scroll := 170 * tick
	if got := e.bird.X + 200 - bomb.X; math.Abs(got-scroll) > 1e-6 {
		t.Errorf("hazard moved %v, expected %v", got, scroll)
	}
}

func TestAwardDriftDecay(t *testing.T) {
	e := newFloatingEngine(16)
	e.awards = append(e.awards, Award{X: 300, Y: 100, R: 10, VX: 100, VY: 50, Payload: Star{Tier: TierGold}})
	e.Update(tick)

	a := e.awards[0]
	if math.Abs(a.VX-98) > 1e-9 || math.Abs(a.VY-49) > 1e-9 {
		t.Errorf("velocity = (%v, %v), expected (98, 49)", a.VX, a.VY)
	}
	if want := 300 - 170*tick + 100*tick; math.Abs(a.X-want) > 1e-9 {
		t.Errorf("X = %v, expected %v", a.X, want)
	}
}

func TestEffectsDecayInRealTime(t *testing.T) {
	e := newFloatingEngine(17)
	e.effects.Slow = 5
	e.effects.Double = 5
	e.effects.TimeScale = 0.5

	e.Update(0.016)

	if math.Abs(e.effects.Double-(5-0.016)) > 1e-9 {
		t.Errorf("Double = %v, expected %v", e.effects.Double, 5-0.016)
	}
	if math.Abs(e.effects.Slow-(5-0.016)) > 1e-9 {
		t.Errorf("Slow = %v, expected %v", e.effects.Slow, 5-0.016)
	}
}

func TestSlowEasesTimeScale(t *testing.T) {
	e := newFloatingEngine(18)
	e.effects.Slow = 10
	for i := 0; i < 60; i++ {
		e.Update(tick)
	}
	ts := e.effects.TimeScale
	if ts >= 1 || ts <= 0.5 {
		t.Errorf("TimeScale after 1s of slow = %v, expected in (0.5, 1)", ts)
	}

	e.effects.Slow = 0
	e.Update(tick)
	if e.effects.TimeScale <= ts {
		t.Errorf("TimeScale = %v, expected easing back above %v", e.effects.TimeScale, ts)
	}
}

func TestUpdateClampsLongFrames(t *testing.T) {
	e := newFloatingEngine(19)
	e.Update(1.0)
	if math.Abs(e.elapsed-0.032) > 1e-12 {
		t.Errorf("elapsed = %v, expected 0.032", e.elapsed)
	}

	e.Update(-1)
	if math.Abs(e.elapsed-0.032) > 1e-12 {
		t.Errorf("elapsed after negative dt = %v, expected unchanged", e.elapsed)
	}
}

func TestConfiguredMaxStepCannotExceedFrameClamp(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Bird.Gravity = 1e-6
	cfg.MaxStep = 0.5
	e := NewEngine(cfg, WithSeed(19))
	e.Flap()
	e.Update(0)

	e.Update(1.0)
	if e.elapsed > 0.032+1e-12 {
		t.Errorf("elapsed = %v, expected at most 0.032", e.elapsed)
	}
}

func TestZeroConfigEngineIsPlayable(t *testing.T) {
	e := NewEngine(config.FlappyConfig{}, WithSeed(4))
	want := config.DefaultFlappyConfig()

	if e.cfg.Effects.ShieldCap != want.Effects.ShieldCap {
		t.Errorf("ShieldCap = %d, expected %d", e.cfg.Effects.ShieldCap, want.Effects.ShieldCap)
	}
	if e.cfg.Effects.SlowAdd != want.Effects.SlowAdd {
		t.Errorf("SlowAdd = %v, expected %v", e.cfg.Effects.SlowAdd, want.Effects.SlowAdd)
	}
	if e.cfg.Awards.HazardChance != want.Awards.HazardChance {
		t.Errorf("HazardChance = %v, expected %v", e.cfg.Awards.HazardChance, want.Awards.HazardChance)
	}
	if e.cfg.MaxStep != want.MaxStep {
		t.Errorf("MaxStep = %v, expected %v", e.cfg.MaxStep, want.MaxStep)
	}
}

func TestFlapWhilePlayingJumps(t *testing.T) {
	e := newFloatingEngine(20)
	e.Flap()
	if e.bird.VY != -420 {
		t.Errorf("VY = %v, expected -420", e.bird.VY)
	}

	e.Resize(400, 900)
	e.Flap()
	if e.bird.VY != -630 {
		t.Errorf("VY after resize = %v, expected -630", e.bird.VY)
	}
}

func TestRestartSemantics(t *testing.T) {
	calls := int64(0)
	e := NewEngine(config.DefaultFlappyConfig(), WithSeedSource(func() int64 {
		calls++
		return calls
	}))

	e.Restart()
	if e.State() != StateReady {
		t.Errorf("Restart in ready changed state to %v", e.State())
	}

	e.Flap()
	e.Restart()
	if e.State() != StatePlaying {
		t.Errorf("Restart while playing changed state to %v", e.State())
	}

	for i := 0; i < 300 && e.State() == StatePlaying; i++ {
		e.Update(tick)
	}
	if e.State() != StateOver {
		t.Fatalf("state = %v, expected over", e.State())
	}

	e.Restart()
	if e.State() != StatePlaying {
		t.Fatalf("state after restart = %v, expected playing", e.State())
	}
	if e.bird.Y != e.world.H*0.45 || e.bird.VY != 0 {
		t.Errorf("bird = %+v, expected reset to start height", e.bird)
	}
	started, ok := hasEvent[RunStarted](e.Update(0))
	if !ok {
		t.Fatal("expected RunStarted after restart")
	}
	if started.Seed != calls {
		t.Errorf("RunStarted.Seed = %d, expected fresh seed %d", started.Seed, calls)
	}
}

func TestResizeClamps(t *testing.T) {
	e := newTestEngine(21)
	e.Resize(100, math.NaN())
	if e.world.W != config.MinWorldWidth || e.world.H != config.MinWorldHeight {
		t.Errorf("world = %+v, expected %vx%v", e.world, config.MinWorldWidth, config.MinWorldHeight)
	}

	e.Resize(560, 840)
	if e.world.W != 560 || e.world.H != 840 || e.world.FloorY() != 750 {
		t.Errorf("world = %+v, expected 560x840 with floor at 750", e.world)
	}
}

func TestIdleBob(t *testing.T) {
	e := newTestEngine(22)
	start := e.bird.Y
	moved := false
	for i := 0; i < 60; i++ {
		e.Update(tick)
		if e.bird.Y != start {
			moved = true
		}
		if math.Abs(e.bird.Y-start) > 10 {
			t.Fatalf("idle bob drifted %v px", e.bird.Y-start)
		}
	}
	if !moved {
		t.Error("bird should bob while ready")
	}
	if e.State() != StateReady {
		t.Errorf("state = %v, expected ready", e.State())
	}
}

func TestPipeTopOscillationClamp(t *testing.T) {
	static := Pipe{BaseTop: 100}
	if got := static.TopAt(3, 40, 300); got != 100 {
		t.Errorf("static TopAt = %v, expected 100", got)
	}

	moving := Pipe{BaseTop: 100, OscAmp: 50, OscSpeed: 1, OscPhase: math.Pi / 2}
	if got := moving.TopAt(0, 40, 300); math.Abs(got-150) > 1e-9 {
		t.Errorf("TopAt = %v, expected 150", got)
	}
	if got := moving.TopAt(0, 40, 120); got != 120 {
		t.Errorf("clamped TopAt = %v, expected 120", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newFloatingEngine(23)
	e.awards = append(e.awards, Award{X: 300, Y: 100, R: 10, Payload: Star{Tier: TierGold}})
	snap := e.Snapshot()
	snap.Awards[0].X = -1000

	if e.awards[0].X == -1000 {
		t.Error("mutating the snapshot changed engine state")
	}
	if snap.Theme != Themes[0] {
		t.Errorf("Theme = %s, expected %s", snap.Theme.Name, Themes[0].Name)
	}
}

func TestAwardAccessors(t *testing.T) {
	star := Award{Payload: Star{Tier: TierPurple}}
	bomb := Award{Payload: Hazard{}}

	if star.IsHazard() || star.Value() != 2 || star.Kind() != "star2" {
		t.Errorf("star accessors = %v/%d/%s", star.IsHazard(), star.Value(), star.Kind())
	}
	if !bomb.IsHazard() || bomb.Value() != 0 || bomb.Kind() != "bomb" {
		t.Errorf("bomb accessors = %v/%d/%s", bomb.IsHazard(), bomb.Value(), bomb.Kind())
	}
}
