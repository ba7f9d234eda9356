package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/fx"
)

const (
	hudRows   = 1
	halfBlock = '▀'
	hudBg     = core.Color("#1f2937")
	rimPx     = 2
)

// Renderer draws snapshots into a cell screen. The playfield is rasterized
// at two pixels per cell, one in the foreground of an upper half block and
// one in its background, which keeps pixels roughly square.
type Renderer struct {
	screen *core.Screen
	pixels *core.Screen // One cell per pixel; Bg carries the color
	pops   *fx.Popper

	newBest bool
	// Playfield placement in cells
	offX, offY int
	cols, rows int
	// World to pixel scale
	sx, sy float64
}

// NewRenderer creates a renderer for a cols x rows terminal.
func NewRenderer(cols, rows int, seed uint64) *Renderer {
	r := &Renderer{
		screen: core.NewScreen(cols, rows),
		pixels: core.NewScreen(0, 0),
		pops:   fx.NewPopper(seed),
	}
	r.Resize(cols, rows)
	return r
}

// Resize fits the playfield into a new terminal size.
func (r *Renderer) Resize(cols, rows int) {
	r.screen.Resize(cols, rows)
	r.rows = max(1, rows-hudRows)
	r.cols = max(1, cols)
}

// fit sizes the pixel grid for the world aspect ratio.
func (r *Renderer) fit(w flappy.World) (pw, ph int) {
	ph = r.rows * 2
	pw = int(math.Round(float64(ph) * w.W / w.H))
	if pw > r.cols {
		pw = r.cols
		ph = int(math.Round(float64(pw) * w.H / w.W))
		ph -= ph % 2
		ph = max(2, ph)
	}
	pw = max(1, pw)
	r.offX = (r.screen.Width() - pw) / 2
	r.offY = hudRows + (r.rows-ph/2)/2
	r.sx = float64(pw) / w.W
	r.sy = float64(ph) / w.H
	r.pixels.Resize(pw, ph)
	return pw, ph
}

// Observe feeds the events of the last tick to the cosmetic layer.
func (r *Renderer) Observe(events []flappy.Event) {
	r.pops.Observe(events)
	for _, ev := range events {
		switch ev := ev.(type) {
		case flappy.RunStarted:
			r.newBest = false
		case flappy.RunEnded:
			r.newBest = ev.NewBest
		}
	}
}

// Step advances cosmetic animation by dt seconds.
func (r *Renderer) Step(dt float64) {
	r.pops.Step(dt)
}

// Screen returns the last drawn frame.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Draw renders a snapshot and returns the screen.
func (r *Renderer) Draw(snap flappy.Snapshot, muted bool) *core.Screen {
	r.screen.Clear(core.ColorDefault)
	pw, ph := r.fit(snap.World)

	r.drawSky(snap.Theme, ph)
	for _, p := range snap.Pipes {
		r.drawPipe(p, snap.Theme, snap.World)
	}
	r.drawFloor(snap.World)
	for _, a := range snap.Awards {
		r.drawAward(a)
	}
	for _, p := range snap.Powerups {
		r.circle(p.X, p.Y, p.R, p.Kind.Color())
	}
	r.drawParticles(snap.Theme)
	r.drawBird(snap)

	r.flush(pw, ph)
	for _, p := range snap.Powerups {
		r.glyph(p.X, p.Y, p.Kind.Glyph())
	}
	r.drawHUD(snap, muted)
	r.drawOverlay(snap)
	return r.screen
}

func (r *Renderer) rect(x, y, w, h float64, c core.Color) {
	x0 := int(math.Floor(x * r.sx))
	y0 := int(math.Floor(y * r.sy))
	x1 := int(math.Ceil((x + w) * r.sx))
	y1 := int(math.Ceil((y + h) * r.sy))
	r.pixels.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), core.Cell{Bg: c})
}

func (r *Renderer) circle(x, y, radius float64, c core.Color) {
	rx := max(0.75, radius*r.sx)
	ry := max(0.75, radius*r.sy)
	r.pixels.FillCircle(x*r.sx, y*r.sy, rx, ry, core.Cell{Bg: c})
}

func (r *Renderer) drawSky(theme flappy.Theme, ph int) {
	for y := 0; y < ph; y++ {
		c := theme.Sky.Lerp(flappy.SkyHorizon, float64(y)/float64(max(1, ph-1)))
		r.pixels.FillRect(core.NewRect(0, y, r.pixels.Width(), 1), core.Cell{Bg: c})
	}
}

func (r *Renderer) drawPipe(p flappy.PipeView, theme flappy.Theme, w flappy.World) {
	floorY := w.FloorY()
	bottom := p.Top + p.Gap

	r.rect(p.X, 0, p.W, p.Top, theme.Body)
	r.rect(p.X, bottom, p.W, floorY-bottom, theme.Body)
	r.decorate(p, theme, floorY)

	rim := rimPx / r.sy
	r.rect(p.X-2, p.Top-rim, p.W+4, rim, theme.Rim)
	r.rect(p.X-2, bottom, p.W+4, rim, theme.Rim)
}

// decorate paints the theme's surface pattern over both pipe bodies.
func (r *Renderer) decorate(p flappy.PipeView, theme flappy.Theme, floorY float64) {
	if theme.Decor == flappy.DecorNone {
		return
	}
	x0 := int(math.Floor(p.X * r.sx))
	x1 := int(math.Ceil((p.X + p.W) * r.sx))
	top := int(p.Top * r.sy)
	bottom := int((p.Top + p.Gap) * r.sy)
	floor := int(floorY * r.sy)
	line := core.Cell{Bg: theme.Rim}

	inBody := func(y int) bool { return y < top-rimPx || (y > bottom+rimPx && y < floor) }
	for y := 0; y < floor; y++ {
		if !inBody(y) {
			continue
		}
		for x := x0; x < x1; x++ {
			if decorPixel(theme.Decor, x-x0, y) {
				r.pixels.SetCell(x, y, line)
			}
		}
	}
}

func decorPixel(d flappy.Decor, x, y int) bool {
	switch d {
	case flappy.DecorIce:
		return (x+y)%7 == 0
	case flappy.DecorBrick:
		if y%4 == 0 {
			return true
		}
		offset := 0
		if (y/4)%2 == 1 {
			offset = 3
		}
		return (x+offset)%6 == 0
	case flappy.DecorMagma:
		return (x*3+y*5)%11 == 0
	case flappy.DecorGrid:
		return x%4 == 0 || y%4 == 0
	default:
		return false
	}
}

func (r *Renderer) drawFloor(w flappy.World) {
	r.rect(0, w.FloorY(), w.W, w.FloorH, core.ColorFloor)
	r.rect(0, w.FloorY(), w.W, 1/r.sy, core.ColorFloorLn)
}

func (r *Renderer) drawAward(a flappy.Award) {
	if a.IsHazard() {
		r.circle(a.X, a.Y, a.R, core.ColorHazard)
		r.circle(a.X+a.R*0.6, a.Y-a.R*0.9, a.R*0.3, core.ColorFuse)
		return
	}
	r.circle(a.X, a.Y, a.R, a.Color())
}

func (r *Renderer) drawParticles(theme flappy.Theme) {
	for _, pt := range r.pops.Particles() {
		c := pt.Color.Lerp(theme.Sky, 1-pt.A)
		r.circle(pt.X, pt.Y, pt.R, c)
	}
}

func (r *Renderer) drawBird(snap flappy.Snapshot) {
	b := snap.Bird
	radius := max(10, b.R*snap.World.H/flappy.RefHeight)
	eff := snap.Effects

	if eff.Shield > 0 {
		r.circle(b.X, b.Y, radius+6, core.ColorShield)
	}
	if eff.Invuln > 0 && int(snap.Clock*10)%2 == 0 {
		r.circle(b.X, b.Y, radius+9, core.ColorText)
		if eff.Shield > 0 {
			r.circle(b.X, b.Y, radius+6, core.ColorShield)
		}
	}

	tilt := core.ClampF(b.VY/600, -0.5, 0.5)
	r.circle(b.X, b.Y, radius, core.ColorBird)
	r.circle(b.X-radius*0.35, b.Y+radius*(0.15+tilt*0.3), radius*0.45, core.ColorWing)
	r.circle(b.X+radius*0.4, b.Y-radius*0.3, radius*0.22, core.ColorEye)
	r.circle(b.X+radius*1.0, b.Y+radius*tilt*0.5, radius*0.3, core.ColorBeak)
}

// flush packs pixel pairs into half-block cells.
func (r *Renderer) flush(pw, ph int) {
	for cy := 0; cy < ph/2; cy++ {
		for x := 0; x < pw; x++ {
			top := r.pixels.GetCell(x, cy*2).Bg
			bottom := r.pixels.GetCell(x, cy*2+1).Bg
			r.screen.SetCell(r.offX+x, r.offY+cy, core.Cell{Rune: halfBlock, Fg: top, Bg: bottom})
		}
	}
}

// glyph writes a letter over the cell that holds world point (x, y).
func (r *Renderer) glyph(x, y float64, g rune) {
	cx := r.offX + int(x*r.sx)
	cy := r.offY + int(y*r.sy)/2
	if cx < r.offX || cx >= r.offX+r.pixels.Width() || cy < r.offY || cy >= r.offY+r.pixels.Height()/2 {
		return
	}
	cell := r.screen.GetCell(cx, cy)
	r.screen.SetCell(cx, cy, core.Cell{Rune: g, Fg: core.ColorText, Bg: cell.Bg})
}

func (r *Renderer) drawHUD(snap flappy.Snapshot, muted bool) {
	width := r.screen.Width()
	r.screen.FillRect(core.NewRect(0, 0, width, hudRows), core.Cell{Rune: ' ', Bg: hudBg})

	left := fmt.Sprintf(" Score %d  ★ %d  Best %d", snap.Score, snap.Stars, snap.Best)
	r.screen.DrawText(0, 0, left, core.ColorText)

	var active []string
	if snap.Effects.Shield > 0 {
		active = append(active, fmt.Sprintf("S×%d", snap.Effects.Shield))
	}
	if snap.Effects.Slow > 0 {
		active = append(active, fmt.Sprintf("Z %.1f", snap.Effects.Slow))
	}
	if snap.Effects.Magnet > 0 {
		active = append(active, fmt.Sprintf("U %.1f", snap.Effects.Magnet))
	}
	if snap.Effects.Double > 0 {
		active = append(active, fmt.Sprintf("2× %.1f", snap.Effects.Double))
	}
	if muted {
		active = append(active, "muted")
	}
	right := strings.Join(active, "  ") + " "
	r.screen.DrawText(width-len([]rune(right)), 0, right, core.ColorShield)
}

func (r *Renderer) drawOverlay(snap flappy.Snapshot) {
	mid := r.offY + r.pixels.Height()/4
	switch snap.State {
	case flappy.StateReady:
		r.panel(mid, []line{
			{"FLAPPY", core.ColorInk},
			{"Space / click to flap", core.ColorInk},
			{"M mute · Q quit", core.ColorInk},
		})
	case flappy.StateOver:
		lines := []line{
			{"GAME OVER", core.ColorAlert},
			{fmt.Sprintf("Score %d  ★ %d", snap.Score, snap.Stars), core.ColorInk},
			{fmt.Sprintf("Best %d", snap.Best), core.ColorInk},
		}
		if r.newBest {
			lines = append(lines, line{"NEW BEST!", core.ColorAlert})
		}
		lines = append(lines, line{"Enter / R / Space to restart", core.ColorInk})
		r.panel(mid, lines)
	}
}

type line struct {
	text  string
	color core.Color
}

// panel draws a light box of centered lines starting at row y.
func (r *Renderer) panel(y int, lines []line) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	width += 4
	x := (r.screen.Width() - width) / 2
	r.screen.FillRect(core.NewRect(x, y-1, width, len(lines)+2), core.Cell{Rune: ' ', Bg: core.ColorPanel})
	for i, l := range lines {
		r.screen.DrawTextCentered(y+i, l.text, l.color)
	}
}
