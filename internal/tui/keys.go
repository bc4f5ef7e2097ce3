package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	nextTab   key.Binding
	prevTab   key.Binding
	tabs      [4]key.Binding
	next      key.Binding
	prev      key.Binding
	left      key.Binding
	right     key.Binding
	toggle    key.Binding
	reveal    key.Binding
	submit    key.Binding
	dismiss   key.Binding
	copy      [3]key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	nextTab: key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+→", "next tab")),
	prevTab: key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+←", "previous tab")),
	tabs: [4]key.Binding{
		key.NewBinding(key.WithKeys("f1")),
		key.NewBinding(key.WithKeys("f2")),
		key.NewBinding(key.WithKeys("f3")),
		key.NewBinding(key.WithKeys("f4")),
	},
	next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	prev:    key.NewBinding(key.WithKeys("shift+tab", "up")),
	left:    key.NewBinding(key.WithKeys("left")),
	right:   key.NewBinding(key.WithKeys("right")),
	toggle:  key.NewBinding(key.WithKeys(" ")),
	reveal:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "show/hide")),
	submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate")),
	dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	copy: [3]key.Binding{
		key.NewBinding(key.WithKeys("alt+1")),
		key.NewBinding(key.WithKeys("alt+2")),
		key.NewBinding(key.WithKeys("alt+3")),
	},
	buildInfo: key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "about")),
}
