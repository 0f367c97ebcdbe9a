package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zxarcade/thruwall/internal/core"
)

// KeyMap holds the key bindings for the game. The bindings double as the
// source for the help footer.
type KeyMap struct {
	Left       key.Binding
	LeftFast   key.Binding
	Right      key.Binding
	RightFast  key.Binding
	Restart    key.Binding
	Exit       key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "left"),
		),
		LeftFast: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "left fast"),
		),
		Right: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "right"),
		),
		RightFast: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "right fast"),
		),
		Restart: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "play again"),
		),
		Exit: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "exit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns the bindings for the one-line help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.LeftFast, k.Right, k.RightFast},
		{k.Restart, k.Exit, k.Pause},
		{k.Screenshot, k.Quit},
	}
}

// ActionFor translates a key message to a game action. Keys without a
// binding map to ActionStart, so any key works on the title screen.
func (k KeyMap) ActionFor(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.LeftFast):
		return core.ActionLeftFast
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.RightFast):
		return core.ActionRightFast
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Exit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Quit), key.Matches(msg, k.Screenshot):
		return core.ActionNone
	}
	return core.ActionStart
}
