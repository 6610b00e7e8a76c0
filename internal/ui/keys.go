package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap groups every binding the game responds to. Movement accepts
// both WASD and arrows; shifted movement sprints. Mini-games read raw
// key names on top of these, since a reaction prompt asks for one
// specific key.
type keyMap struct {
	Move     key.Binding // display only, the four directions match
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Sprint   key.Binding
	Interact key.Binding
	Action   key.Binding
	Panels   key.Binding
	Confirm  key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Move:     key.NewBinding(key.WithHelp("wasd/arrows", "move")),
		Up:       key.NewBinding(key.WithKeys("w", "up")),
		Down:     key.NewBinding(key.WithKeys("s", "down")),
		Left:     key.NewBinding(key.WithKeys("a", "left")),
		Right:    key.NewBinding(key.WithKeys("d", "right")),
		Sprint:   key.NewBinding(key.WithKeys("W", "A", "S", "D", "shift+up", "shift+down", "shift+left", "shift+right"), key.WithHelp("shift+move", "sprint")),
		Interact: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "interact")),
		Action:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "press/hold")),
		Panels:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "panels")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Interact, k.Panels, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Sprint, k.Interact, k.Action},
		{k.Panels, k.Confirm, k.Back},
		{k.Help, k.Quit},
	}
}
