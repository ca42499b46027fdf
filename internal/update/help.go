package update

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Complete  key.Binding
	Important key.Binding
	Delete    key.Binding
	New       key.Binding
	FilterAll key.Binding
	FilterImp key.Binding
	FilterRec key.Binding
	Cycle     key.Binding
	Palette   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Complete:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle done")),
		Important: key.NewBinding(key.WithKeys("s", "*"), key.WithHelp("s/*", "toggle important")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d/x", "delete")),
		New:       key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a/n", "new task")),
		FilterAll: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterImp: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "important")),
		FilterRec: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "recent")),
		Cycle:     key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "next filter")),
		Palette:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Complete, k.Important, k.Delete, k.Cycle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Complete, k.Important, k.Delete},
		{k.New, k.Palette},
		{k.FilterAll, k.FilterImp, k.FilterRec, k.Cycle},
		{k.Help, k.Quit},
	}
}

func (m Model) renderHelp() string {
	h := m.helpModel
	h.ShowAll = m.HelpVisible
	return h.View(m.keys)
}
