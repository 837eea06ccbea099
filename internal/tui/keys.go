package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	NextHeader key.Binding
	PrevHeader key.Binding
	Activate   key.Binding
	SortColumn key.Binding
	Leave      key.Binding
	Copy       key.Binding
	Jump       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "page down")),
		Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first row")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last row")),
		NextHeader: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next header")),
		PrevHeader: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev header")),
		Activate:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "sort by header")),
		SortColumn: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort cursor column")),
		Leave:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to rows")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy cell")),
		Jump:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump to column")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp 实现 help.KeyMap。
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextHeader, k.Activate, k.SortColumn, k.Jump, k.Copy, k.Help, k.Quit}
}

// FullHelp 实现 help.KeyMap。
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextHeader, k.PrevHeader, k.Activate, k.Leave},
		{k.SortColumn, k.Jump, k.Copy, k.Help, k.Quit},
	}
}
