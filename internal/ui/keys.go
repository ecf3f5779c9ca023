package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit      key.Binding
	Back      key.Binding
	Enter     key.Binding
	Refresh   key.Binding
	Login     key.Binding
	Notify    key.Binding
	New       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Duplicate key.Binding
	Up        key.Binding
	Down      key.Binding
	Tab1      key.Binding
	Tab2      key.Binding
	Tab3      key.Binding
	Tab4      key.Binding
	Submit    key.Binding
	Filter    key.Binding
	Account   key.Binding
}

var Keys = KeyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Login:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "login")),
	Notify:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
	New:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit template")),
	Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Duplicate: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "duplicate")),
	Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "up")),
	Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/down", "down")),
	Tab1:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "templates")),
	Tab2:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "plans")),
	Tab3:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "support")),
	Tab4:      key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "account")),
	Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Account:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "account")),
}
