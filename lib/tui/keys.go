package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevProduct key.Binding
	NextProduct key.Binding
	Landing     key.Binding
	Input       key.Binding
	Output      key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Filter      key.Binding
	Up          key.Binding
	Down        key.Binding
	Edit        key.Binding
	Cancel      key.Binding
	AddBattle   key.Binding
	Remove      key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	PrevProduct: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev product")),
	NextProduct: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next product")),
	Landing:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "landing")),
	Input:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "input")),
	Output:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "output")),
	NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	Filter:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "status filter")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Edit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
	Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	AddBattle:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add battle")),
	Remove:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove battle")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) common() []key.Binding {
	return []key.Binding{k.PrevProduct, k.NextProduct, k.Landing, k.Input, k.Output}
}
