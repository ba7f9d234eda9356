package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position with its colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blank returns an empty cell on the given background.
func blank(bg Color) Cell {
	return Cell{Rune: ' ', Bg: bg}
}

// Screen is a 2D buffer of colored cells. Renderers draw into it and the
// terminal host turns it into styled text, so drawing code never touches
// the terminal directly.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: max(0, width), height: max(0, height)}
	s.allocate()
	s.Clear(ColorDefault)
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded since every
// frame is redrawn from scratch.
func (s *Screen) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(ColorDefault)
}

// Clear fills the screen with blank cells on the given background.
func (s *Screen) Clear(bg Color) {
	c := blank(bg)
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune at the given position, keeping the cell's colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell replaces the cell at the given position.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	if !s.inBounds(x, y) {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the cell at the given position, or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blank(ColorDefault)
	}
	return s.cells[y][x]
}

// DrawText writes a string starting at (x, y) in the given foreground color.
// The background under each character is preserved.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		if s.inBounds(x+i, y) {
			s.cells[y][x+i].Rune = r
			s.cells[y][x+i].Fg = fg
		}
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawText(x, y, text, fg)
}

// FillRect fills a rectangular area with the given cell.
func (s *Screen) FillRect(r Rect, c Cell) {
	x0, y0 := max(0, r.X), max(0, r.Y)
	x1, y1 := min(s.width, r.Right()), min(s.height, r.Bottom())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.cells[y][x] = c
		}
	}
}

// FillCircle fills every cell whose center lies inside the ellipse with
// horizontal radius rx and vertical radius ry centered at (cx, cy).
func (s *Screen) FillCircle(cx, cy, rx, ry float64, c Cell) {
	if rx <= 0 || ry <= 0 {
		return
	}
	y0 := max(0, int(cy-ry))
	y1 := min(s.height-1, int(cy+ry))
	x0 := max(0, int(cx-rx))
	x1 := min(s.width-1, int(cx+rx))
	for y := y0; y <= y1; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				s.cells[y][x] = c
			}
		}
	}
}

// String converts the screen to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
