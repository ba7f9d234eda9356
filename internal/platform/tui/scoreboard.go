package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show player list sidebar
	sidebarWidth       = 20  // Width of player list sidebar
	maxRuns            = 100 // Max runs to load
	allPlayers         = "All players"
)

// RunSource is the read side of the run log.
type RunSource interface {
	TopRuns(limit int) ([]storage.Run, error)
	PlayerRuns(player string, limit int) ([]storage.Run, error)
	Players() ([]string, error)
	Stats() (*storage.Stats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll     key.Binding
	NextPlayer key.Binding
	PrevPlayer key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.NextPlayer, k.PrevPlayer, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll:     key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
		NextPlayer: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next player")),
		PrevPlayer: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev player")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type scoreboardStyles struct {
	title   lipgloss.Style
	box     lipgloss.Style
	pick    lipgloss.Style
	dim     lipgloss.Style
	empty   lipgloss.Style
	header  lipgloss.Style
	current lipgloss.Style
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return scoreboardStyles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107")),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		pick:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("241")),
		empty:   r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
		header:  r.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true),
		current: r.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	filters []string // allPlayers followed by every player name
	cursor  int      // Currently selected filter
	source  RunSource
	runs    []storage.Run
	stats   *storage.Stats

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	styles scoreboardStyles

	width, height int
	quitting      bool
	goingBack     bool // Back to the menu rather than quit
}

// NewScoreboardModel creates a new scoreboard model. source may be nil.
func NewScoreboardModel(source RunSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		filters: []string{allPlayers},
		source:  source,
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		styles:  newScoreboardStyles(nil),
		width:   width,
		height:  height,
	}
	if source != nil {
		if players, err := source.Players(); err == nil {
			m.filters = append(m.filters, players...)
		}
		m.stats, _ = source.Stats()
	}
	m.table = m.newTable()
	m.loadRuns()
	return m
}

// WithRenderer styles the scoreboard for a specific terminal.
func (m ScoreboardModel) WithRenderer(r *lipgloss.Renderer) ScoreboardModel {
	m.styles = newScoreboardStyles(r)
	m.table = m.newTable()
	m.fillTable()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 12},
			{Title: "Score", Width: 7},
			{Title: "Stars", Width: 7},
			{Title: "Time", Width: 8},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		// Title, switcher, stats and help take the rest
		table.WithHeight(max(3, m.height-10)),
	)
	st := table.DefaultStyles()
	st.Header = m.styles.header
	st.Selected = m.styles.current
	t.SetStyles(st)
	return t
}

// loadRuns queries the runs for the selected filter.
func (m *ScoreboardModel) loadRuns() {
	m.runs = nil
	if m.source != nil {
		var err error
		if m.cursor == 0 {
			m.runs, err = m.source.TopRuns(maxRuns)
		} else {
			m.runs, err = m.source.PlayerRuns(m.filters[m.cursor], maxRuns)
		}
		if err != nil {
			m.runs = nil
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Stars),
			formatDuration(r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextPlayer):
			m.selectFilter(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevPlayer):
			m.selectFilter(m.cursor - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectFilter moves to filter i, wrapping around.
func (m *ScoreboardModel) selectFilter(i int) {
	n := len(m.filters)
	m.cursor = (i%n + n) % n
	m.loadRuns()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	st := m.styles

	parts := []string{
		st.title.Render(centerText("HIGH SCORES - "+m.filters[m.cursor], m.width)),
		"",
	}
	if m.wide() {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
			st.box.Width(sidebarWidth).Render(m.sidebar()), "  ", st.box.Render(m.tableView())))
	} else {
		parts = append(parts,
			centerText(fmt.Sprintf("< %s >", m.filters[m.cursor]), m.width),
			"",
			st.box.Render(m.tableView()))
	}
	if line := m.statsLine(); line != "" {
		parts = append(parts, "", centerText(line, m.width))
	}
	parts = append(parts, "", st.dim.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// sidebar lists the filters with the current one marked.
func (m ScoreboardModel) sidebar() string {
	lines := []string{"Players", strings.Repeat("-", sidebarWidth-4)}
	for i, name := range m.filters {
		name = truncate(name, sidebarWidth-6)
		if i == m.cursor {
			lines = append(lines, m.styles.pick.Render("> "+name))
			continue
		}
		lines = append(lines, "  "+name)
	}
	return strings.Join(lines, "\n")
}

// truncate shortens s to n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// statsLine summarizes the whole run log.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  ·  best %d  ·  avg %.1f  ·  %d stars  ·  %s played",
		m.stats.Runs, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalStars,
		m.stats.TotalTime.Round(time.Second))
}

// tableView renders the table, or a hint when there is nothing to show.
func (m ScoreboardModel) tableView() string {
	if len(m.runs) == 0 {
		return m.styles.empty.Render("No runs recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(source RunSource, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(source, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
