package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the in-game key bindings. It satisfies help.KeyMap so
// the help footer renders directly from it.
type KeyMap struct {
	Left    key.Binding
	Center  key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings: arrows, WASD-style letters
// and vim keys all work.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left lane"),
		),
		Center: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "center lane"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right lane"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Center, k.Right, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Center, k.Right},
		{k.Pause, k.Restart, k.Quit},
	}
}
