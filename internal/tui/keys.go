package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Confirm   key.Binding
	Undo      key.Binding
	NextPhase key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Confirm: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "record bound"),
		),
		Undo: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "undo"),
		),
		NextPhase: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "right edges"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Undo, k.NextPhase, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Undo, k.NextPhase, k.Quit}}
}
