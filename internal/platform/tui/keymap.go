package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the simulator. The single game
// button maps to space; the diagnostic toggle and cursor advance stand
// in for the out-of-band control channel of the real panel.
type KeyMap struct {
	Button  key.Binding
	Diag    key.Binding
	Advance key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default simulator bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Button: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "button"),
		),
		Diag: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "diagnostic"),
		),
		Advance: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "advance row"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Button, k.Diag, k.Advance, k.Quit}
}

// FullHelp returns the full help layout.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Button, k.Diag}, {k.Advance, k.Quit}}
}
