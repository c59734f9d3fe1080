package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Lap    key.Binding
	Reset  key.Binding
	Clear  key.Binding
	Copy   key.Binding
	Export key.Binding
	Drawer key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" "),
			key.WithHelp("space", "start/pause")),
		Lap: key.NewBinding(key.WithKeys("enter", "l"),
			key.WithHelp("enter", "lap")),
		Reset: key.NewBinding(key.WithKeys("r"),
			key.WithHelp("r", "reset")),
		Clear: key.NewBinding(key.WithKeys("c"),
			key.WithHelp("c", "clear laps")),
		Copy: key.NewBinding(key.WithKeys("y"),
			key.WithHelp("y", "copy")),
		Export: key.NewBinding(key.WithKeys("e"),
			key.WithHelp("e", "export")),
		Drawer: key.NewBinding(key.WithKeys("d"),
			key.WithHelp("d", "laps")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Lap, k.Reset, k.Drawer, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Lap, k.Reset, k.Clear},
		{k.Copy, k.Export, k.Drawer, k.Quit},
	}
}

var confirmKeys = struct {
	Switch  key.Binding
	Submit  key.Binding
	Accept  key.Binding
	Decline key.Binding
}{
	Switch:  key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l")),
	Submit:  key.NewBinding(key.WithKeys("enter")),
	Accept:  key.NewBinding(key.WithKeys("y")),
	Decline: key.NewBinding(key.WithKeys("n", "esc")),
}
