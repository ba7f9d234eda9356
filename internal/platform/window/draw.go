package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/fx"
)

const (
	skyBand   = 4 // Gradient step in pixels
	rimHeight = 6
)

// Cell size of the ebitenutil debug font.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	hudShade   = color.RGBA{A: 0x99}
	panelShade = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xdd}
	cloudShade = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xe6}
)

// rgba converts a hex color. The terminal default maps to transparent.
func rgba(c core.Color) color.RGBA {
	r, g, b, ok := c.RGB()
	if !ok {
		return color.RGBA{}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// faded scales a color by opacity a. The result is alpha-premultiplied.
func faded(c core.Color, a float64) color.RGBA {
	base := rgba(c)
	a = core.ClampF(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(base.R) * a),
		G: uint8(float64(base.G) * a),
		B: uint8(float64(base.B) * a),
		A: uint8(float64(base.A) * a),
	}
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), rgba(c), false)
}

func fillCircle(dst *ebiten.Image, x, y, r float64, c core.Color) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), rgba(c), true)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	w := snap.World

	g.drawSky(screen, snap.Theme, w)
	drawClouds(screen, snap.Clock, w)
	for _, p := range snap.Pipes {
		g.drawPipe(screen, p, snap.Theme, w)
	}
	fillRect(screen, 0, w.FloorY(), w.W, w.FloorH, core.ColorFloor)
	fillRect(screen, 0, w.FloorY(), w.W, 2, core.ColorFloorLn)

	for _, a := range snap.Awards {
		if a.IsHazard() {
			fillCircle(screen, a.X, a.Y, a.R, core.ColorHazard)
			fillCircle(screen, a.X+a.R*0.6, a.Y-a.R*0.9, a.R*0.3, core.ColorFuse)
			continue
		}
		fillCircle(screen, a.X, a.Y, a.R, a.Color())
	}
	for _, p := range snap.Powerups {
		fillCircle(screen, p.X, p.Y, p.R, p.Kind.Color())
		ebitenutil.DebugPrintAt(screen, string(p.Kind.Glyph()), int(p.X)-glyphWidth/2, int(p.Y)-glyphHeight/2)
	}
	for _, pt := range g.pops.Particles() {
		vector.DrawFilledCircle(screen, float32(pt.X), float32(pt.Y), float32(pt.R), faded(pt.Color, pt.A), true)
	}
	g.drawBird(screen, snap)
	g.drawHUD(screen, snap)
	g.drawOverlay(screen, snap)
}

func (g *Game) drawSky(dst *ebiten.Image, theme flappy.Theme, w flappy.World) {
	for y := 0.0; y < w.H; y += skyBand {
		c := theme.Sky.Lerp(flappy.SkyHorizon, y/w.H)
		fillRect(dst, 0, y, w.W, skyBand, c)
	}
}

func drawClouds(dst *ebiten.Image, clock float64, w flappy.World) {
	for _, c := range fx.Clouds(clock, w.W, w.H) {
		for _, p := range fx.CloudPuffs {
			x := c.X + p.DX*c.Scale
			y := c.Y + p.DY*c.Scale
			vector.DrawFilledCircle(dst, float32(x), float32(y), float32(p.R*c.Scale), cloudShade, true)
		}
	}
}

func (g *Game) drawPipe(dst *ebiten.Image, p flappy.PipeView, theme flappy.Theme, w flappy.World) {
	bottom := p.Top + p.Gap
	floorY := w.FloorY()

	fillRect(dst, p.X, 0, p.W, p.Top, theme.Body)
	fillRect(dst, p.X, bottom, p.W, floorY-bottom, theme.Body)
	if theme.Decor != flappy.DecorNone {
		stroke := rgba(theme.Rim)
		for y := 8.0; y < p.Top-rimHeight; y += 8 {
			vector.StrokeLine(dst, float32(p.X), float32(y), float32(p.X+p.W), float32(y), 1, stroke, false)
		}
		for y := bottom + rimHeight + 8; y < floorY; y += 8 {
			vector.StrokeLine(dst, float32(p.X), float32(y), float32(p.X+p.W), float32(y), 1, stroke, false)
		}
	}
	fillRect(dst, p.X-2, p.Top-rimHeight, p.W+4, rimHeight, theme.Rim)
	fillRect(dst, p.X-2, bottom, p.W+4, rimHeight, theme.Rim)
}

func (g *Game) drawBird(dst *ebiten.Image, snap flappy.Snapshot) {
	b := snap.Bird
	radius := max(10, b.R*snap.World.H/flappy.RefHeight)
	eff := snap.Effects

	if eff.Invuln > 0 && int(snap.Clock*10)%2 == 0 {
		vector.StrokeCircle(dst, float32(b.X), float32(b.Y), float32(radius+9), 2, rgba(core.ColorText), true)
	}
	if eff.Shield > 0 {
		vector.StrokeCircle(dst, float32(b.X), float32(b.Y), float32(radius+6), 3, rgba(core.ColorShield), true)
	}

	tilt := core.ClampF(b.VY/600, -0.5, 0.5)
	fillCircle(dst, b.X, b.Y, radius, core.ColorBird)
	fillCircle(dst, b.X-radius*0.35, b.Y+radius*(0.15+tilt*0.3), radius*0.45, core.ColorWing)
	fillCircle(dst, b.X+radius*0.4, b.Y-radius*0.3, radius*0.22, core.ColorEye)
	fillCircle(dst, b.X+radius*1.0, b.Y+radius*tilt*0.5, radius*0.3, core.ColorBeak)
}

func (g *Game) drawHUD(dst *ebiten.Image, snap flappy.Snapshot) {
	vector.DrawFilledRect(dst, 0, 0, float32(snap.World.W), glyphHeight+4, hudShade, false)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score %d  Stars %d  Best %d", snap.Score, snap.Stars, snap.Best), 6, 2)

	if status := effectsLine(snap.Effects, g.session.Muted()); status != "" {
		ebitenutil.DebugPrintAt(dst, status, int(snap.World.W)-len(status)*glyphWidth-6, 2)
	}
}

// effectsLine lists the active power-ups for the HUD.
func effectsLine(eff flappy.Effects, muted bool) string {
	var parts []string
	if eff.Shield > 0 {
		parts = append(parts, fmt.Sprintf("S x%d", eff.Shield))
	}
	if eff.Slow > 0 {
		parts = append(parts, fmt.Sprintf("Z %.1f", eff.Slow))
	}
	if eff.Magnet > 0 {
		parts = append(parts, fmt.Sprintf("U %.1f", eff.Magnet))
	}
	if eff.Double > 0 {
		parts = append(parts, fmt.Sprintf("2x %.1f", eff.Double))
	}
	if muted {
		parts = append(parts, "muted")
	}
	return strings.Join(parts, "  ")
}

// overlayLines is the centered message for the ready and game over states.
func overlayLines(snap flappy.Snapshot, newBest bool) []string {
	switch snap.State {
	case flappy.StateReady:
		return []string{"FLAPPY", "Space / click to flap", "M mute  Esc quit"}
	case flappy.StateOver:
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("Score %d  Stars %d", snap.Score, snap.Stars),
			fmt.Sprintf("Best %d", snap.Best),
		}
		if newBest {
			lines = append(lines, "NEW BEST!")
		}
		return append(lines, "Enter / Space to restart")
	}
	return nil
}

func (g *Game) drawOverlay(dst *ebiten.Image, snap flappy.Snapshot) {
	lines := overlayLines(snap, g.newBest)
	if len(lines) == 0 {
		return
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*glyphWidth)
	}
	width += 24
	height := len(lines)*glyphHeight + 16
	x := (snap.World.W - float64(width)) / 2
	y := snap.World.H/3 - float64(height)/2
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(width), float32(height), panelShade, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(width), float32(height), 2, rgba(core.ColorText), false)

	for i, l := range lines {
		lx := int(snap.World.W)/2 - len(l)*glyphWidth/2
		ebitenutil.DebugPrintAt(dst, l, lx, int(y)+8+i*glyphHeight)
	}
}
