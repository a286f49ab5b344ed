package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Next         key.Binding
	Prev         key.Binding
	Deactivate   key.Binding
	Toggle       key.Binding
	Repayment    key.Binding
	InterestOnly key.Binding
	Submit       key.Binding
	Clear        key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:         key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:         key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Deactivate:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave field")),
		Toggle:       key.NewBinding(key.WithKeys("left", "right", " "), key.WithHelp("←/→", "switch type")),
		Repayment:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "repayment")),
		InterestOnly: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "interest only")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate repayments")),
		Clear:        key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear all")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Deactivate},
		{k.Toggle, k.Repayment, k.InterestOnly},
		{k.Submit, k.Clear, k.Quit},
	}
}
