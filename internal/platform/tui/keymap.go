package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// Bindings are checked in order; the first match wins.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: []actionBinding{
			{key.NewBinding(key.WithKeys("ctrl+c", "q")), core.ActionQuit},
			{key.NewBinding(key.WithKeys(" ", "up", "w", "k")), core.ActionFlap},
			{key.NewBinding(key.WithKeys("m")), core.ActionMute},
			{key.NewBinding(key.WithKeys("enter", "r")), core.ActionRestart},
			{key.NewBinding(key.WithKeys("ctrl+s")), core.ActionScreenshot},
		},
		menu: []menuBinding{
			{key.NewBinding(key.WithKeys("ctrl+c", "q")), MenuActionQuit},
			{key.NewBinding(key.WithKeys("w", "up", "k")), MenuActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j")), MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
			{key.NewBinding(key.WithKeys("b", "esc")), MenuActionBack},
			{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
		},
	}
}

// MapKey translates a key message to an action (possibly ActionNone) and
// reports whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the action for msg to frame and reports a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Add(action)
	return isQuit
}

// MapMouse turns a left press into a flap, like a tap on a touch screen.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionFlap
	}
	return core.ActionNone
}

// MenuAction is a navigation step in the menu and scoreboard screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
