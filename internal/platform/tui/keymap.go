package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gem-catcher/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Forward  key.Binding
	Backward key.Binding
	Left     key.Binding
	Right    key.Binding
	TurnL    key.Binding
	TurnR    key.Binding
	Jump     key.Binding
	Recenter key.Binding
	Ghost    key.Binding
	Restart  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.TurnL, k.Jump, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.Left, k.Right},
		{k.TurnL, k.TurnR, k.Jump},
		{k.Recenter, k.Ghost, k.Restart},
		{k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Forward: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "forward"),
		),
		Backward: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "back"),
		),
		Left: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "strafe left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "strafe right"),
		),
		TurnL: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "turn left"),
		),
		TurnR: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "turn right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		Recenter: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "recenter"),
		),
		Ghost: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "ghost"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Turning is not an action; see TurnDirection.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Forward):
		return core.ActionForward, false
	case key.Matches(msg, k.Backward):
		return core.ActionBackward, false
	case key.Matches(msg, k.Left):
		return core.ActionStrafeLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionStrafeRight, false
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.Recenter):
		return core.ActionRecenter, false
	case key.Matches(msg, k.Ghost):
		return core.ActionGhost, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// TurnDirection returns +1 for a left turn, -1 for a right turn and 0 otherwise.
// Yaw grows counter-clockwise, so turning left increases it.
func (km *KeyMapper) TurnDirection(msg tea.KeyMsg) int {
	switch {
	case key.Matches(msg, km.keys.TurnL):
		return 1
	case key.Matches(msg, km.keys.TurnR):
		return -1
	}
	return 0
}
