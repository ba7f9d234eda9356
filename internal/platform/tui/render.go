package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleFor builds the lipgloss style for a color pair.
func styleFor(r *lipgloss.Renderer, p colorPair) lipgloss.Style {
	style := r.NewStyle()
	if p.fg != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(string(p.fg)))
	}
	if p.bg != core.ColorDefault {
		style = style.Background(lipgloss.Color(string(p.bg)))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for the local terminal.
func RenderScreen(s *core.Screen) string {
	return RenderScreenWith(lipgloss.DefaultRenderer(), s)
}

// RenderScreenWith converts a Screen buffer to a styled string using the
// color profile of r, e.g. one detected for a remote SSH client.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreenWith(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())
	styles := make(map[colorPair]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.Fg, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[start]
			if !ok {
				style = styleFor(r, start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
