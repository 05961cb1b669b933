package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Next     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Apply    key.Binding
	Break    key.Binding
	Quit     key.Binding
}

func defaultKeys() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply preset"),
		),
		Break: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle break reminder"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Decrease, k.Increase, k.Apply, k.Break, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Decrease, k.Increase}, {k.Apply, k.Break, k.Quit}}
}
