package cli

import "github.com/charmbracelet/bubbles/key"

type applicationKeyMap struct {
	Personal  key.Binding
	Marks     key.Binding
	Income    key.Binding
	Next      key.Binding
	Back      key.Binding
	Advance   key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	AddRow    key.Binding
	RemoveRow key.Binding
}

func newApplicationKeyMap() applicationKeyMap {
	return applicationKeyMap{
		Personal:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1-f3", "tabs")),
		Marks:     key.NewBinding(key.WithKeys("f2")),
		Income:    key.NewBinding(key.WithKeys("f3")),
		Next:      key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next")),
		Back:      key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "back")),
		Advance:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		FocusNext: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "field")),
		FocusPrev: key.NewBinding(key.WithKeys("shift+tab", "up")),
		AddRow:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add subject")),
		RemoveRow: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove subject")),
	}
}
