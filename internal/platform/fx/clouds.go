package fx

import "math"

// Puff is one circle of a cloud, relative to the cloud origin at scale 1.
type Puff struct {
	DX, DY, R float64
}

// CloudPuffs is the three-circle cloud outline.
var CloudPuffs = []Puff{{0, 0, 20}, {22, -8, 16}, {44, 0, 20}}

// cloudLayer is one parallax band. Speed is in px/s, Margin is how far off
// the left edge the cloud restarts.
type cloudLayer struct {
	Speed  float64
	Height float64 // Fraction of world height
	Scale  float64
	Margin float64
}

var cloudLayers = []cloudLayer{
	{Speed: 25, Height: 0.2, Scale: 1, Margin: 120},
	{Speed: 1000.0 / 60, Height: 0.35, Scale: 0.8, Margin: 160},
}

// Cloud is a placed cloud origin.
type Cloud struct {
	X, Y  float64
	Scale float64
}

// Clouds places the parallax clouds for a clock in seconds and a w x h world.
// Clouds drift rightward from off the left edge and wrap once past the right.
func Clouds(clock, w, h float64) []Cloud {
	clouds := make([]Cloud, 0, len(cloudLayers))
	for _, l := range cloudLayers {
		span := w + l.Margin
		x := math.Mod(clock*l.Speed, span)
		if x < 0 {
			x += span
		}
		clouds = append(clouds, Cloud{X: x - l.Margin, Y: h * l.Height, Scale: l.Scale})
	}
	return clouds
}
