// Package core provides fundamental types and utilities shared by the game and
// its hosts. It contains no external dependencies (especially no Bubble Tea or
// Ebiten) to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned cell rectangle used by the terminal screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// CirclesOverlap reports whether two circles touch or overlap.
// Compares squared distances, so no square root is taken.
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	dx := ax - bx
	dy := ay - by
	sum := ar + br
	return dx*dx+dy*dy <= sum*sum
}

// Towards returns the unit vector pointing from (fx, fy) to (tx, ty).
// The distance is floored at eps so coincident points yield a finite result.
func Towards(fx, fy, tx, ty, eps float64) (ux, uy float64) {
	dx := tx - fx
	dy := ty - fy
	d := math.Max(eps, math.Hypot(dx, dy))
	return dx / d, dy / d
}

// Decay moves v toward zero by step, never crossing it.
func Decay(v, step float64) float64 {
	return math.Max(0, v-step)
}
