package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap defines the key bindings for the game screen.
// Space is bound to both Jump and Restart: the game ignores whichever one
// does not apply to the current phase.
type KeyMap struct {
	Jump    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Jump, k.Restart}, {k.Quit}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/w", "flap"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" ", "r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Events translates a key message to game events, in routing order.
// Returns nil for unbound keys.
func (k KeyMap) Events(msg tea.KeyMsg) []core.Event {
	if key.Matches(msg, k.Quit) {
		return []core.Event{core.EventQuit}
	}

	var events []core.Event
	if key.Matches(msg, k.Jump) {
		events = append(events, core.EventJump)
	}
	if key.Matches(msg, k.Restart) {
		events = append(events, core.EventRestart)
	}
	return events
}
