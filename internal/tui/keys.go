package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the app reacts to. It implements help.KeyMap.
type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Autoplay   key.Binding
	Minimize   key.Binding
	Maximize   key.Binding
	Close      key.Binding
	Reopen     key.Binding
	Theme      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next step"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "previous step"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "maximize"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Reopen: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o/enter", "reopen"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Autoplay, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Autoplay},
		{k.Minimize, k.Maximize, k.Close, k.Reopen},
		{k.ScrollUp, k.ScrollDown, k.Theme},
		{k.Help, k.Quit},
	}
}
