package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active.
type GlobalKeys struct {
	Quit      key.Binding
	Tab       key.Binding
	Indicator key.Binding
	Probe     key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch view"),
	),
	Indicator: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "toggle indicator"),
	),
	Probe: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "probe now"),
	),
}
