package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit key.Binding
	copy key.Binding
}

var keys = keyMap{
	quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	copy: key.NewBinding(key.WithKeys("c")),
}
