package browse

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings of the browser.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	NextSection key.Binding
	PrevSection key.Binding

	// Section controls
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Facet  key.Binding
	Clear  key.Binding
	Open   key.Binding
	Escape key.Binding
	Copy   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Close / quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous section"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right", "pgdown"),
			key.WithHelp("l/right", "Next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("h", "left", "pgup"),
			key.WithHelp("h/left", "Previous page"),
		),
		Facet: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Toggle filter"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear filters"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Details"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close details"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy link"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Next, k.Open, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.Up, k.Down},
		{k.Next, k.Prev, k.Facet, k.Clear},
		{k.Open, k.Escape, k.Copy},
		{k.Help, k.Quit},
	}
}
