package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the TUI calculator.
type KeyMap struct {
	Eval      key.Binding
	ToggleHex key.Binding
	ClearLog  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Eval: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "evaluate"),
		),
		ToggleHex: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "hex/dec"),
		),
		ClearLog: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear log"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Eval, k.ToggleHex, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help footer.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Eval, k.ToggleHex},
		{k.ClearLog, k.Help, k.Quit},
	}
}
