package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Refresh   key.Binding
	Add       key.Binding
	Remove    key.Binding
	Search    key.Binding
	Run       key.Binding
	Copy      key.Binding
	Mode      key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Quit      key.Binding
	Cancel    key.Binding
	Interrupt key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Remove:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Run:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run search")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Mode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "search mode")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Cancel:    key.NewBinding(key.WithKeys("esc")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) help(p panel) []key.Binding {
	common := []key.Binding{k.Next, k.Refresh}
	switch p {
	case panelRoots, panelIgnore:
		common = append(common, k.Add, k.Remove)
	case panelSearch:
		common = append(common, k.Search, k.Run, k.Mode)
	}
	return append(common, k.Copy, k.Quit)
}
