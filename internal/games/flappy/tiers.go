package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// StarTier describes one collectible reward level.
type StarTier struct {
	Key         string
	Value       int
	Color       core.Color
	RadiusScale float64
}

// Star tiers in unlock order. All tiers share one radius so size never hints at value.
var (
	TierGold   = StarTier{Key: "star1", Value: 1, Color: "#f5c400", RadiusScale: 1.25}
	TierPurple = StarTier{Key: "star2", Value: 2, Color: "#a855f7", RadiusScale: 1.25}
	TierBlack  = StarTier{Key: "star3", Value: 3, Color: "#3A3A3A", RadiusScale: 1.25}
)

// Score thresholds at which higher tiers join the draw.
const (
	PurpleUnlockScore = 50
	BlackUnlockScore  = 100
)

// UnlockedTiers returns the tiers available at the given score, in order.
func UnlockedTiers(score int) []StarTier {
	tiers := []StarTier{TierGold}
	if score >= PurpleUnlockScore {
		tiers = append(tiers, TierPurple)
	}
	if score >= BlackUnlockScore {
		tiers = append(tiers, TierBlack)
	}
	return tiers
}

// SelectTier picks uniformly among the unlocked tiers using r in [0, 1).
// Out-of-range r is clamped.
func SelectTier(score int, r float64) StarTier {
	tiers := UnlockedTiers(score)
	if math.IsNaN(r) || r < 0 {
		r = 0
	}
	idx := min(len(tiers)-1, int(math.Floor(r*float64(len(tiers)))))
	return tiers[idx]
}
