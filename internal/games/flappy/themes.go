package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Decor is the surface pattern drawn on pipe bodies.
type Decor int

const (
	DecorNone Decor = iota
	DecorIce
	DecorBrick
	DecorMagma
	DecorGrid
)

// String returns the decor name.
func (d Decor) String() string {
	switch d {
	case DecorIce:
		return "ice"
	case DecorBrick:
		return "brick"
	case DecorMagma:
		return "magma"
	case DecorGrid:
		return "grid"
	default:
		return "none"
	}
}

// Theme is a visual palette for pipes and sky.
type Theme struct {
	Name  string
	Body  core.Color
	Rim   core.Color
	Decor Decor
	Sky   core.Color // Top of the sky gradient
}

// SkyHorizon is the bottom color of every sky gradient.
const SkyHorizon core.Color = "#e0f7ff"

const defaultSky core.Color = "#87CEEB"

// Themes in progression order.
var Themes = [...]Theme{
	{Name: "Forest", Body: "#4CAF50", Rim: "#3E8E41", Decor: DecorNone, Sky: defaultSky},
	{Name: "Ice", Body: "#9AD9FF", Rim: "#76C7F2", Decor: DecorIce, Sky: "#d9f2ff"},
	{Name: "Stone", Body: "#9AA0A6", Rim: "#7C8288", Decor: DecorBrick, Sky: defaultSky},
	{Name: "Lava", Body: "#ff6b6b", Rim: "#e04848", Decor: DecorMagma, Sky: "#ffd0d0"},
	{Name: "Tech", Body: "#7c3aed", Rim: "#5b21b6", Decor: DecorGrid, Sky: "#efe5ff"},
	{Name: "Desert", Body: "#E0C97A", Rim: "#C9B46A", Decor: DecorNone, Sky: defaultSky},
	{Name: "Ocean", Body: "#5EC1E8", Rim: "#359BC2", Decor: DecorGrid, Sky: defaultSky},
	{Name: "Jungle", Body: "#2E7D32", Rim: "#1B5E20", Decor: DecorNone, Sky: defaultSky},
	{Name: "Neon", Body: "#00E5FF", Rim: "#00B8D4", Decor: DecorGrid, Sky: "#e0ffff"},
	{Name: "Obsidian", Body: "#3A3A3A", Rim: "#2A2A2A", Decor: DecorBrick, Sky: "#f0f0f0"},
}

// ThemeStep is the number of points per theme.
const ThemeStep = 25

// ThemeIndex returns the palette index for a score. It saturates at the last theme.
func ThemeIndex(score int) int {
	if score <= 0 {
		return 0
	}
	return min(score/ThemeStep, len(Themes)-1)
}

// ThemeForScore returns the palette for a score.
func ThemeForScore(score int) Theme {
	return Themes[ThemeIndex(score)]
}
