package tui

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Success key.Binding
	Info    key.Binding
	Warning key.Binding
	Error   key.Binding
	Sticky  key.Binding
	Close   key.Binding
	Clear   key.Binding
	Theme   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Success: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
		Info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Warning: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warning")),
		Error:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Sticky:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "sticky error")),
		Close:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close newest")),
		Clear:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear all")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpBindings returns the bindings shown in the help line, in display order.
func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.Success, k.Info, k.Warning, k.Error, k.Sticky,
		k.Close, k.Clear, k.Theme, k.Quit,
	}
}
