package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/session"
)

func newTestSession(seed int64) *session.Session {
	e := flappy.NewEngine(config.DefaultFlappyConfig(), flappy.WithSeed(seed))
	return session.New(e, session.Options{})
}

func newTestModel(t *testing.T, opts ModelOptions) Model {
	t.Helper()
	cfg := core.RuntimeConfig{Cols: 80, Rows: 30, FPS: 60, Seed: 1}
	return NewModel(newTestSession(1), cfg, opts)
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelFlapOnTick(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	t0 := time.Now()

	m, _ = step(t, m, TickMsg(t0))
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.session.Engine().State() != flappy.StateReady {
		t.Error("input should wait for the next tick")
	}

	m, cmd := step(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if m.session.Engine().State() != flappy.StatePlaying {
		t.Errorf("state = %v, expected playing", m.session.Engine().State())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(m.frame.Actions) != 0 {
		t.Errorf("frame not cleared: %v", m.frame.Actions)
	}
	if m.session.Snapshot().Elapsed <= 0 {
		t.Error("expected simulated time to pass")
	}
}

func TestModelMouseFlaps(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	m, _ = step(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = step(t, m, TickMsg(time.Now()))
	if m.session.Engine().State() != flappy.StatePlaying {
		t.Errorf("state = %v, expected playing after click", m.session.Engine().State())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	m, cmd := step(t, m, runeKey("q"))
	if !m.IsQuitting() || !isQuit(cmd) {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back is disabled unless allowed")
	}

	m = newTestModel(t, ModelOptions{AllowBack: true})
	m.session.Flap()
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back should be ignored mid-run")
	}

	m = newTestModel(t, ModelOptions{AllowBack: true})
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc should go back from the ready screen")
	}
	if isQuit(cmd) {
		t.Error("an embedded model must not quit the program")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, ModelOptions{})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.config.Cols != 100 || m.config.Rows != 40 {
		t.Errorf("config = %dx%d, expected 100x40", m.config.Cols, m.config.Rows)
	}
	m.View()
	if w := m.renderer.Screen().Width(); w != 100 {
		t.Errorf("screen width = %d, expected 100", w)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, ModelOptions{ScreenshotDir: dir})
	step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), ".ans") {
		t.Fatalf("entries = %v, expected one .ans file", entries)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Score 0") {
		t.Error("screenshot should contain the HUD")
	}
}
