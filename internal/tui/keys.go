package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	esc       key.Binding
	send      key.Binding
	copyLast  key.Binding
	buildInfo key.Binding
	// buildInfoAlt works only on screens without text input.
	buildInfoAlt key.Binding
}

var keys = keyMap{
	quit:         key.NewBinding(key.WithKeys("ctrl+c")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	send:         key.NewBinding(key.WithKeys("enter")),
	copyLast:     key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo:    key.NewBinding(key.WithKeys("ctrl+b")),
	buildInfoAlt: key.NewBinding(key.WithKeys("v")),
}
