package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the input modes react to.
// It satisfies help.KeyMap so the footer and the help view stay in sync with the handlers.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Focus     key.Binding
	Blur      key.Binding
	Clear     key.Binding
	Open      key.Binding
	Pager     key.Binding
	HelpPager key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "top")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),
		Focus:     key.NewBinding(key.WithKeys("/", "tab"), key.WithHelp("/", "edit query")),
		Blur:      key.NewBinding(key.WithKeys("tab", "esc", "enter"), key.WithHelp("tab/esc", "browse results")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear query")),
		Open:      key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o", "open in browser")),
		Pager:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "results in pager")),
		HelpPager: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help in pager")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Blur, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Focus, k.Blur, k.Clear},
		{k.Open, k.Pager, k.HelpPager},
		{k.Help, k.Quit},
	}
}
