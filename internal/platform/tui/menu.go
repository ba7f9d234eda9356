package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/platform/session"
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Preset config.DifficultyPreset
	Title  string
	Hint   string
}

// DefaultMenuItems returns one item per difficulty preset.
func DefaultMenuItems() []MenuItem {
	hints := map[config.DifficultyPreset]string{
		config.DifficultyEasy:   "slow ramp",
		config.DifficultyNormal: "full speed by 25",
		config.DifficultyHard:   "full speed by 15",
		config.DifficultyFixed:  "no ramp",
	}
	items := make([]MenuItem, 0, len(config.Presets))
	for _, p := range config.Presets {
		items = append(items, MenuItem{
			Preset: p,
			Title:  strings.ToUpper(string(p[:1])) + string(p[1:]),
			Hint:   hints[p],
		})
	}
	return items
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	best           int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a difficulty
	openScoreboard bool      // True if user pressed Tab for scoreboard
	styles         menuStyles
}

type menuStyles struct {
	title  lipgloss.Style
	cursor lipgloss.Style
	dim    lipgloss.Style
	card   lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return menuStyles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107")),
		cursor: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("241")),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#06b6d4")).
			Padding(1, 3),
	}
}

// WithRenderer styles the menu for a specific terminal, such as an SSH client.
func (m MenuModel) WithRenderer(r *lipgloss.Renderer) MenuModel {
	m.styles = newMenuStyles(r)
	return m
}

// NewMenuModel creates a new menu model. The cursor starts on current.
func NewMenuModel(best session.BestStore, cfg core.RuntimeConfig, current config.DifficultyPreset) MenuModel {
	m := MenuModel{
		items:     DefaultMenuItems(),
		width:     cfg.Cols,
		height:    cfg.Rows,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		styles:    newMenuStyles(nil),
	}
	for i, item := range m.items {
		if item.Preset == current {
			m.cursor = i
		}
	}
	if best != nil {
		if b, err := best.LoadBest(); err == nil {
			m.best = b
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.Cols = msg.Width
		m.config.Rows = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu as a bordered card in the middle of the terminal.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	st := m.styles

	var rows []string
	rows = append(rows, st.title.Render("F L A P P Y"))
	if m.best > 0 {
		rows = append(rows, st.dim.Render(fmt.Sprintf("Best %d", m.best)))
	}
	rows = append(rows, "", "Select a difficulty", "")

	for i, item := range m.items {
		line := fmt.Sprintf("%-7s %s", item.Title, st.dim.Render(item.Hint))
		if i == m.cursor {
			rows = append(rows, st.cursor.Render("> "+line))
			continue
		}
		rows = append(rows, "  "+line)
	}

	card := st.card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	controls := st.dim.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit")
	body := lipgloss.JoinVertical(lipgloss.Center, card, "", controls)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(best session.BestStore, cfg core.RuntimeConfig, current config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(best, cfg, current)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Preset = m.Selected().Preset
	default:
		result.Quit = true
	}
	return result, nil
}
