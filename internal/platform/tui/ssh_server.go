package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/session"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.flappy/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// FPS is the tick rate of every session.
	FPS int

	// Game is the rule set every session starts from.
	Game config.FlappyConfig

	// Preset is the difficulty preselected in the menu.
	Preset config.DifficultyPreset
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.flappy/runs.db",
		IdleTimeout: 30 * time.Minute,
		FPS:         30,
		Game:        config.DefaultFlappyConfig(),
		Preset:      config.DifficultyNormal,
	}
}

// SSHServer wraps a Wish SSH server. Every connection plays its own engine;
// only the run log and the per-user best scores are shared.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	registry *session.Registry
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "flappy-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		registry: session.NewRegistry(),
		logger:   logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".flappy", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rt := core.RuntimeConfig{
		Cols: pty.Window.Width,
		Rows: pty.Window.Height,
		FPS:  s.config.FPS,
	}
	rt.Normalize()

	user := sshSession.User()
	deps := SessionDeps{
		Factory:  s.factoryFor(user),
		Best:     s.bestFor(user),
		Runs:     s.runSource(),
		Registry: s.registry,
		ID:       sshSession.Context().SessionID(),
		Lipgloss: bubbletea.MakeRenderer(sshSession),
	}
	model := NewSessionModel(deps, rt, s.config.Preset)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// factoryFor builds engines for one SSH user.
func (s *SSHServer) factoryFor(user string) GameFactory {
	return func(preset config.DifficultyPreset) *session.Session {
		cfg := s.config.Game
		config.ApplyFlappyPreset(&cfg, preset)
		opts := session.Options{
			Best:       s.bestFor(user),
			Logger:     s.logger.With("user", user),
			Player:     user,
			Difficulty: string(preset),
		}
		if s.store != nil {
			opts.Runs = s.store
		}
		return session.New(flappy.NewEngine(cfg), opts)
	}
}

func (s *SSHServer) bestFor(user string) session.BestStore {
	if s.store == nil {
		return nil
	}
	return s.store.BestFor(user)
}

func (s *SSHServer) runSource() RunSource {
	if s.store == nil {
		return nil
	}
	return s.store
}

// loggingMiddleware logs SSH session events and drops finished sessions from the registry.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.registry.Unregister(sshSession.Context().SessionID())
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"playing", s.registry.Count(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// GameFactory builds a fresh game session for a difficulty preset.
type GameFactory func(preset config.DifficultyPreset) *session.Session

// SessionDeps are the collaborators of a SessionModel.
type SessionDeps struct {
	Factory  GameFactory
	Best     session.BestStore // May be nil
	Runs     RunSource         // May be nil
	Registry *session.Registry // May be nil
	ID       string
	Lipgloss *lipgloss.Renderer
}

type screenMode int

const (
	modeMenu screenMode = iota
	modeGame
	modeScores
)

// SessionModel manages the full flow of one connection: menu -> game -> menu,
// with the scoreboard one key away.
type SessionModel struct {
	deps       SessionDeps
	config     core.RuntimeConfig
	preset     config.DifficultyPreset
	mode       screenMode
	menu       MenuModel
	game       *Model
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps SessionDeps, cfg core.RuntimeConfig, preset config.DifficultyPreset) SessionModel {
	return SessionModel{
		deps:   deps,
		config: cfg,
		preset: preset,
		menu:   NewMenuModel(deps.Best, cfg, preset).WithRenderer(deps.Lipgloss),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.Cols = wsm.Width
		m.config.Rows = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.deps.Runs, m.config.Cols, m.config.Rows).WithRenderer(m.deps.Lipgloss)
		m.scoreboard = &sb
		m.mode = modeScores
		return m, sb.Init()

	case m.menu.Selected() != nil:
		m.preset = m.menu.Selected().Preset
		sess := m.deps.Factory(m.preset)
		if m.deps.Registry != nil {
			m.deps.Registry.Register(m.deps.ID, sess)
		}
		game := NewModel(sess, m.config, ModelOptions{AllowBack: true, Lipgloss: m.deps.Lipgloss})
		m.game = &game
		m.mode = modeGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.toMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// toMenu drops the current screen and rebuilds the menu.
func (m *SessionModel) toMenu() {
	if m.deps.Registry != nil {
		m.deps.Registry.Unregister(m.deps.ID)
	}
	m.game = nil
	m.scoreboard = nil
	m.mode = modeMenu
	m.menu = NewMenuModel(m.deps.Best, m.config, m.preset).WithRenderer(m.deps.Lipgloss)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
