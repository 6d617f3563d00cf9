package ui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	nextTab key.Binding
	prevTab key.Binding
	jumpTab key.Binding
	left    key.Binding
	right   key.Binding
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	start   key.Binding
	pause   key.Binding
	stop    key.Binding
	esc     key.Binding
	help    key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	nextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	prevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	jumpTab: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6"),
		key.WithHelp("1-6", "jump to tab"),
	),
	left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop sound"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// tabKeys returns the bindings relevant to a tab, in display order.
func (k keymap) tabKeys(t tab) []key.Binding {
	switch t {
	case tabMood:
		return []key.Binding{k.left, k.right, k.enter}
	case tabBubble:
		return []key.Binding{k.left, k.right, k.start, k.pause}
	case tabBox:
		return []key.Binding{k.start, k.pause}
	case tabSounds:
		return []key.Binding{k.up, k.down, k.enter, k.stop}
	case tabStories:
		return []key.Binding{k.up, k.down, k.enter, k.esc}
	case tabThemes:
		return []key.Binding{k.left, k.right, k.enter}
	}

	return nil
}

// keyHelp adapts the keymap to help.KeyMap for the active tab.
type keyHelp struct {
	keys keymap
	tab  tab
}

func (h keyHelp) ShortHelp() []key.Binding {
	return append(h.keys.tabKeys(h.tab), h.keys.nextTab, h.keys.help, h.keys.quit)
}

func (h keyHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.keys.tabKeys(h.tab),
		{h.keys.nextTab, h.keys.prevTab, h.keys.jumpTab},
		{h.keys.help, h.keys.quit},
	}
}
