package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the hard-coded default configuration.
// It matches defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:       400,
			Height:      600,
			FloorHeight: 90,
		},
		Bird: BirdConfig{
			X:          120,
			Radius:     14,
			Gravity:    1800,
			Jump:       -420,
			StartRatio: 0.45,
		},
		Pipes: PipesConfig{
			Speed:        170,
			Width:        68,
			SpawnEveryMs: 1400,
			GapRatio:     0.26,
			MinBaseGap:   90,
			MinGap:       70,
			MinTop:       40,
			FloorMargin:  40,
			MaxShift:     0.6,
			MovingChance: 0.35,
			MaxAmplitude: 50,
			MinHeadroom:  12,
		},
		Awards: AwardsConfig{
			HazardChance: 0.06,
			StarMin:      1,
			StarMax:      2,
			PowerMin:     2,
			PowerMax:     4,
			MagnetSpeed:  560,
			StarDrag:     0.98,
			PowerDrag:    0.985,
		},
		Effects: EffectsConfig{
			ShieldCap:    3,
			SlowAdd:      6,
			SlowCap:      10,
			SlowScale:    0.5,
			MagnetAdd:    8,
			MagnetCap:    12,
			DoubleAdd:    6,
			DoubleCap:    10,
			HazardGrace:  0.6,
			HazardBounce: 0.4,
			PipeGrace:    0.9,
			PipeBounce:   0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Ramp:        25,
			SpeedGain:   0.9,
			GapShrink:   0.35,
			SpawnShrink: 0.18,
		},
		MaxStep: 0.032,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
