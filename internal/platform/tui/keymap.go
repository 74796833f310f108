package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calderforge/runeward/internal/game"
)

// KeyMap defines the key bindings for playing an episode.
// Centralizing them keeps the bindings testable and feeds the help view.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows, WASD, and vim
// keys move; r restarts; q quits.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "north"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "south"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "west"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "east"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CommandFor translates a key message into an engine command.
// The second return is false when the key is not a game command.
func (k KeyMap) CommandFor(msg tea.KeyMsg) (game.Command, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return game.CmdUp, true
	case key.Matches(msg, k.Down):
		return game.CmdDown, true
	case key.Matches(msg, k.Left):
		return game.CmdLeft, true
	case key.Matches(msg, k.Right):
		return game.CmdRight, true
	case key.Matches(msg, k.Restart):
		return game.CmdRestart, true
	}
	return 0, false
}
