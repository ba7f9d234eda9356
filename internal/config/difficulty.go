package config

import (
	"fmt"
	"math"
	"strings"
)

// Difficulty holds the multipliers applied to base pipe speed, gap and spawn interval.
type Difficulty struct {
	Speed float64 // >= 1, grows with score
	Gap   float64 // <= 1, shrinks with score
	Spawn float64 // <= 1, shrinks with score
}

// Neutral is the difficulty at score zero.
var Neutral = Difficulty{Speed: 1, Gap: 1, Spawn: 1}

// DifficultyCurve maps score to multipliers with an exponential approach:
// k = 1 - e^(-score/Ramp), never reaching 1.
type DifficultyCurve struct {
	Enabled     bool
	Ramp        float64
	SpeedGain   float64
	GapShrink   float64
	SpawnShrink float64
}

// DefaultCurve is the curve used when no configuration is supplied.
var DefaultCurve = NewDifficultyCurve(DefaultFlappyConfig().Difficulty)

// NewDifficultyCurve creates a curve from its config section.
func NewDifficultyCurve(cfg DifficultyConfig) DifficultyCurve {
	return DifficultyCurve{
		Enabled:     cfg.Enabled,
		Ramp:        cfg.Ramp,
		SpeedGain:   cfg.SpeedGain,
		GapShrink:   cfg.GapShrink,
		SpawnShrink: cfg.SpawnShrink,
	}
}

// maxProgress keeps k below 1 once e^(-score/Ramp) is lost to float64 rounding.
const maxProgress = 1 - 1e-9

// Progress returns k in [0, 1) for the given score. Negative scores count as zero.
func (c DifficultyCurve) Progress(score int) float64 {
	if !c.Enabled || c.Ramp <= 0 || score <= 0 {
		return 0
	}
	return min(1-math.Exp(-float64(score)/c.Ramp), maxProgress)
}

// At returns the multipliers for the given score.
// At(0) is exactly Neutral for every curve.
func (c DifficultyCurve) At(score int) Difficulty {
	k := c.Progress(score)
	if k == 0 {
		return Neutral
	}
	return Difficulty{
		Speed: 1 + c.SpeedGain*k,
		Gap:   1 - c.GapShrink*k,
		Spawn: 1 - c.SpawnShrink*k,
	}
}

// DifficultyAt evaluates the default curve.
func DifficultyAt(score int) Difficulty {
	return DefaultCurve.At(score)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset from gentlest to fixed.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", name)
	}
}

// RampForPreset returns the ramp length for a preset. Fixed returns 0.
func RampForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 40
	case DifficultyHard:
		return 15
	case DifficultyFixed:
		return 0
	default:
		return 25
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Ramp = RampForPreset(preset)
}
