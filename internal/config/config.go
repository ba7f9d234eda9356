// Package config provides YAML/TOML game configuration loading and the
// score-driven difficulty curve for the flappy game.
package config

import "github.com/vovakirdan/flappy-arcade/internal/core"

// FlappyConfig contains all tunables for the flappy simulation.
// Lengths are in reference pixels of a 400x600 world; the engine rescales
// them to the live world size every tick.
type FlappyConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Bird       BirdConfig       `yaml:"bird" toml:"bird"`
	Pipes      PipesConfig      `yaml:"pipes" toml:"pipes"`
	Awards     AwardsConfig     `yaml:"awards" toml:"awards"`
	Effects    EffectsConfig    `yaml:"effects" toml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	MaxStep    float64          `yaml:"max_step" toml:"max_step"` // Longest tick in seconds
}

// WorldConfig defines the initial playfield.
type WorldConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	FloorHeight float64 `yaml:"floor_height" toml:"floor_height"`
}

// BirdConfig defines the player body and its forces.
type BirdConfig struct {
	X          float64 `yaml:"x" toml:"x"`
	Radius     float64 `yaml:"radius" toml:"radius"`
	Gravity    float64 `yaml:"gravity" toml:"gravity"` // px/s^2
	Jump       float64 `yaml:"jump" toml:"jump"`       // px/s, negative is up
	StartRatio float64 `yaml:"start_ratio" toml:"start_ratio"`
}

// PipesConfig defines obstacle geometry and cadence.
type PipesConfig struct {
	Speed        float64 `yaml:"speed" toml:"speed"` // px/s
	Width        float64 `yaml:"width" toml:"width"`
	SpawnEveryMs float64 `yaml:"spawn_every_ms" toml:"spawn_every_ms"`
	GapRatio     float64 `yaml:"gap_ratio" toml:"gap_ratio"`
	MinBaseGap   float64 `yaml:"min_base_gap" toml:"min_base_gap"`
	MinGap       float64 `yaml:"min_gap" toml:"min_gap"`
	MinTop       float64 `yaml:"min_top" toml:"min_top"`
	FloorMargin  float64 `yaml:"floor_margin" toml:"floor_margin"`
	MaxShift     float64 `yaml:"max_shift" toml:"max_shift"` // Fraction of world height
	MovingChance float64 `yaml:"moving_chance" toml:"moving_chance"`
	MaxAmplitude float64 `yaml:"max_amplitude" toml:"max_amplitude"`
	MinHeadroom  float64 `yaml:"min_headroom" toml:"min_headroom"`
}

// AwardsConfig defines collectibles, hazards and their cadence in pipes.
type AwardsConfig struct {
	HazardChance float64 `yaml:"hazard_chance" toml:"hazard_chance"`
	StarMin      int     `yaml:"star_min" toml:"star_min"`
	StarMax      int     `yaml:"star_max" toml:"star_max"`
	PowerMin     int     `yaml:"power_min" toml:"power_min"`
	PowerMax     int     `yaml:"power_max" toml:"power_max"`
	MagnetSpeed  float64 `yaml:"magnet_speed" toml:"magnet_speed"`
	StarDrag     float64 `yaml:"star_drag" toml:"star_drag"`
	PowerDrag    float64 `yaml:"power_drag" toml:"power_drag"`
}

// EffectsConfig defines power-up stacking and shield behavior.
type EffectsConfig struct {
	ShieldCap    int     `yaml:"shield_cap" toml:"shield_cap"`
	SlowAdd      float64 `yaml:"slow_add" toml:"slow_add"`
	SlowCap      float64 `yaml:"slow_cap" toml:"slow_cap"`
	SlowScale    float64 `yaml:"slow_scale" toml:"slow_scale"`
	MagnetAdd    float64 `yaml:"magnet_add" toml:"magnet_add"`
	MagnetCap    float64 `yaml:"magnet_cap" toml:"magnet_cap"`
	DoubleAdd    float64 `yaml:"double_add" toml:"double_add"`
	DoubleCap    float64 `yaml:"double_cap" toml:"double_cap"`
	HazardGrace  float64 `yaml:"hazard_grace" toml:"hazard_grace"`
	HazardBounce float64 `yaml:"hazard_bounce" toml:"hazard_bounce"`
	PipeGrace    float64 `yaml:"pipe_grace" toml:"pipe_grace"`
	PipeBounce   float64 `yaml:"pipe_bounce" toml:"pipe_bounce"`
}

// DifficultyConfig defines the score ramp.
type DifficultyConfig struct {
	Enabled     bool    `yaml:"enabled" toml:"enabled"`
	Ramp        float64 `yaml:"ramp" toml:"ramp"` // Score at which ~63% of the ramp is applied
	SpeedGain   float64 `yaml:"speed_gain" toml:"speed_gain"`
	GapShrink   float64 `yaml:"gap_shrink" toml:"gap_shrink"`
	SpawnShrink float64 `yaml:"spawn_shrink" toml:"spawn_shrink"`
}

// Documented minimums for a usable world.
const (
	MinWorldWidth  = 320
	MinWorldHeight = 480
)

// Normalize clamps invalid values to their documented minimums. A section
// left entirely zero takes its defaults; inside a section, sizes and rates
// that must be positive fall back to the default, while chances, stacks and
// caps keep an explicit zero. MaxStep is capped at the default 32 ms.
func (c *FlappyConfig) Normalize() {
	def := DefaultFlappyConfig()
	if c.World == (WorldConfig{}) {
		c.World = def.World
	}
	if c.Pipes == (PipesConfig{}) {
		c.Pipes = def.Pipes
	}
	if c.Awards == (AwardsConfig{}) {
		c.Awards = def.Awards
	}
	if c.Effects == (EffectsConfig{}) {
		c.Effects = def.Effects
	}
	if c.Difficulty == (DifficultyConfig{}) {
		c.Difficulty = def.Difficulty
	}

	c.World.Width = atLeast(c.World.Width, MinWorldWidth)
	c.World.Height = atLeast(c.World.Height, MinWorldHeight)
	c.World.FloorHeight = orDefault(c.World.FloorHeight, def.World.FloorHeight)
	if c.World.FloorHeight > c.World.Height/3 {
		c.World.FloorHeight = c.World.Height / 3
	}

	c.Bird.X = orDefault(c.Bird.X, def.Bird.X)
	c.Bird.Radius = orDefault(c.Bird.Radius, def.Bird.Radius)
	c.Bird.Gravity = orDefault(c.Bird.Gravity, def.Bird.Gravity)
	if c.Bird.Jump == 0 {
		c.Bird.Jump = def.Bird.Jump
	}
	if c.Bird.StartRatio <= 0 || c.Bird.StartRatio >= 1 {
		c.Bird.StartRatio = def.Bird.StartRatio
	}

	p := &c.Pipes
	p.Speed = orDefault(p.Speed, def.Pipes.Speed)
	p.Width = orDefault(p.Width, def.Pipes.Width)
	p.SpawnEveryMs = orDefault(p.SpawnEveryMs, def.Pipes.SpawnEveryMs)
	p.GapRatio = orDefault(p.GapRatio, def.Pipes.GapRatio)
	p.MinBaseGap = orDefault(p.MinBaseGap, def.Pipes.MinBaseGap)
	p.MinGap = orDefault(p.MinGap, def.Pipes.MinGap)
	p.MinTop = orDefault(p.MinTop, def.Pipes.MinTop)
	p.FloorMargin = orDefault(p.FloorMargin, def.Pipes.FloorMargin)
	p.MaxShift = orDefault(p.MaxShift, def.Pipes.MaxShift)
	p.MovingChance = clamp01(p.MovingChance)
	p.MaxAmplitude = atLeast(p.MaxAmplitude, 0)
	p.MinHeadroom = atLeast(p.MinHeadroom, 0)

	a := &c.Awards
	a.HazardChance = clamp01(a.HazardChance)
	a.StarMin, a.StarMax = cadence(a.StarMin, a.StarMax, def.Awards.StarMin, def.Awards.StarMax)
	a.PowerMin, a.PowerMax = cadence(a.PowerMin, a.PowerMax, def.Awards.PowerMin, def.Awards.PowerMax)
	a.MagnetSpeed = orDefault(a.MagnetSpeed, def.Awards.MagnetSpeed)
	if a.StarDrag <= 0 || a.StarDrag > 1 {
		a.StarDrag = def.Awards.StarDrag
	}
	if a.PowerDrag <= 0 || a.PowerDrag > 1 {
		a.PowerDrag = def.Awards.PowerDrag
	}

	e := &c.Effects
	if e.ShieldCap < 0 {
		e.ShieldCap = 0
	}
	e.SlowAdd = atLeast(e.SlowAdd, 0)
	e.SlowCap = atLeast(e.SlowCap, 0)
	if e.SlowScale <= 0 || e.SlowScale > 1 {
		e.SlowScale = def.Effects.SlowScale
	}
	e.MagnetAdd = atLeast(e.MagnetAdd, 0)
	e.MagnetCap = atLeast(e.MagnetCap, 0)
	e.DoubleAdd = atLeast(e.DoubleAdd, 0)
	e.DoubleCap = atLeast(e.DoubleCap, 0)
	e.HazardGrace = atLeast(e.HazardGrace, 0)
	e.HazardBounce = atLeast(e.HazardBounce, 0)
	e.PipeGrace = atLeast(e.PipeGrace, 0)
	e.PipeBounce = atLeast(e.PipeBounce, 0)

	d := &c.Difficulty
	d.Ramp = orDefault(d.Ramp, def.Difficulty.Ramp)
	d.SpeedGain = atLeast(d.SpeedGain, 0)
	d.GapShrink = clamp01(d.GapShrink)
	d.SpawnShrink = clamp01(d.SpawnShrink)

	if c.MaxStep <= 0 || c.MaxStep > def.MaxStep {
		c.MaxStep = def.MaxStep
	}
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func atLeast(v, lo float64) float64 {
	if v < lo {
		return lo
	}
	return v
}

func clamp01(v float64) float64 {
	return core.ClampF(v, 0, 1)
}

func cadence(lo, hi, defLo, defHi int) (int, int) {
	if lo < 1 {
		lo = defLo
	}
	if hi < lo {
		hi = max(lo, defHi)
	}
	return lo, hi
}
