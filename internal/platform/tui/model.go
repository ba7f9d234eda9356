package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/session"
)

// maxCosmeticStep bounds particle animation after a stalled frame.
const maxCosmeticStep = 0.1

// ModelOptions configures a game Model.
type ModelOptions struct {
	// ScreenshotDir receives ctrl+s captures. Defaults to ~/.flappy/screenshots.
	ScreenshotDir string
	// AllowBack lets b/esc leave a finished or unstarted run.
	AllowBack bool
	Logger    *log.Logger
	// Lipgloss renders colors for the client terminal. Defaults to the local one.
	Lipgloss *lipgloss.Renderer
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	session  *session.Session
	renderer *Renderer
	keys     *KeyMapper
	config   core.RuntimeConfig
	frame    core.InputFrame
	last     time.Time
	opts     ModelOptions
	logger   *log.Logger

	standalone bool // Quit the program instead of handing back to a parent
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model around a session.
func NewModel(s *session.Session, cfg core.RuntimeConfig, opts ModelOptions) Model {
	cfg.Normalize()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Lipgloss == nil {
		opts.Lipgloss = lipgloss.DefaultRenderer()
	}
	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return Model{
		session:  s,
		renderer: NewRenderer(cfg.Cols, cfg.Rows, seed),
		keys:     NewKeyMapper(),
		config:   cfg,
		frame:    core.NewInputFrame(),
		opts:     opts,
		logger:   logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.frame.Add(m.keys.MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.config.Cols = msg.Width
		m.config.Rows = msg.Height
		m.renderer.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Game actions wait for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.frame.Has(core.ActionScreenshot) {
		m.saveScreenshot()
	}

	if m.opts.AllowBack && m.keys.MapKeyToMenuAction(msg) == MenuActionBack {
		if m.session.Engine().State() != flappy.StatePlaying {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// handleTick applies buffered input and advances the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.last.IsZero() {
		dt = now.Sub(m.last)
	}
	m.last = now

	if m.session.Apply(m.frame) {
		m.quitting = true
		return m, tea.Quit
	}
	m.frame.Clear()

	events := m.session.Advance(dt)
	m.renderer.Observe(events)
	m.renderer.Step(min(dt.Seconds(), maxCosmeticStep))

	return m, tickCmd(m.config.FPS)
}

// saveScreenshot writes the current frame, ANSI colors included, to a file.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("Cannot resolve screenshot directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("Cannot create screenshot directory", "error", err)
		return
	}

	screen := m.renderer.Draw(m.session.Snapshot(), m.session.Muted())
	filename := fmt.Sprintf("flappy_%s.ans", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(RenderScreenWith(m.opts.Lipgloss, screen)), 0o600); err != nil {
		m.logger.Warn("Cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("Screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	screen := m.renderer.Draw(m.session.Snapshot(), m.session.Muted())
	return RenderScreenWith(m.opts.Lipgloss, screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one session in the terminal until the player quits or goes back.
func Run(s *session.Session, cfg core.RuntimeConfig, opts ModelOptions) (backToMenu bool, err error) {
	model := NewModel(s, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
