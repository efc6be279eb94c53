package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Help      key.Binding
	Ask       key.Binding
	Browse    key.Binding
	Back      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Activate  key.Binding
	Reply     key.Binding
	Submit    key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
}

var keys = keyMap{
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle keys")),
	Ask:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "ask a question")),
	Browse:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "browse & answer")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous option")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next option")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
	Activate:  key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select")),
	Reply:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "write an answer")),
	Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
}

func (k keyMap) forView(v view) []key.Binding {
	switch v {
	case viewAsk:
		return []key.Binding{k.NextFocus, k.PrevFocus, k.Left, k.Right, k.Submit, k.Back, k.ForceQuit}
	case viewBrowse:
		return []key.Binding{k.NextFocus, k.Up, k.Down, k.Activate, k.Reply, k.Left, k.Right, k.Submit, k.PageUp, k.PageDown, k.Back, k.ForceQuit}
	default:
		return []key.Binding{k.Ask, k.Browse, k.Left, k.Right, k.Activate, k.Help, k.Quit}
	}
}
