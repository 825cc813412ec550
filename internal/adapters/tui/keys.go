package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application key bindings
type KeyMap struct {
	Enum   key.Binding
	Import key.Binding
	Panel  key.Binding
	Copy   key.Binding
	Edit   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var Keys = KeyMap{
	Enum: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "update enum"),
	),
	Import: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "update imports"),
	),
	Panel: key.NewBinding(
		key.WithKeys("p", "tab"),
		key.WithHelp("p", "toggle panel"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy panel"),
	),
	Edit: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in $EDITOR"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
