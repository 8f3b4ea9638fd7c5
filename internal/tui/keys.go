package tui

import "github.com/charmbracelet/bubbles/key"

// listKeys holds key bindings for the list pane.
type listKeys struct {
	Up      key.Binding
	Down    key.Binding
	Edit    key.Binding
	New     key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Seed    key.Binding
	Tab     key.Binding
	Quit    key.Binding
}

// ShortHelp returns the list bindings for the help bar.
func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.New, k.Delete, k.Refresh, k.Seed, k.Quit}
}

// FullHelp returns the list bindings grouped for expanded help.
func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit, k.New},
		{k.Delete, k.Refresh, k.Seed},
		{k.Tab, k.Quit},
	}
}

// formKeys holds key bindings for the form pane.
type formKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Reset  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns the form bindings for the help bar.
func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Reset, k.Back, k.Quit}
}

// FullHelp returns the form bindings grouped for expanded help.
func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Submit, k.Reset},
		{k.Back, k.Quit},
	}
}

// ListKeyMap returns the key bindings for the list pane.
func ListKeyMap() listKeys {
	return listKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Seed: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "seed"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "form"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FormKeyMap returns the key bindings for the form pane.
func FormKeyMap() formKeys {
	return formKeys{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s", "enter"),
			key.WithHelp("enter", "save"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "list"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
