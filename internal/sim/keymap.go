package sim

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Button1 key.Binding
	Button2 key.Binding
	Button3 key.Binding
	Latch1  key.Binding
	Latch2  key.Binding
	Latch3  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Button1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "button 1"),
		),
		Button2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "button 2"),
		),
		Button3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "button 3"),
		),
		Latch1: key.NewBinding(
			key.WithKeys("!"),
			key.WithHelp("!", "hold button 1"),
		),
		Latch2: key.NewBinding(
			key.WithKeys("@"),
			key.WithHelp("@", "hold button 2"),
		),
		Latch3: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "hold button 3"),
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
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Button1, k.Button2, k.Button3, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Button1, k.Button2, k.Button3},
		{k.Latch1, k.Latch2, k.Latch3},
		{k.Help, k.Quit},
	}
}
