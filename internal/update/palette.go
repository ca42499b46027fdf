package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/daybook/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		return m.executePaletteCommand(m.commandInput.Value())
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m *Model) closePalette() {
	m.Mode = ModeList
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand(input string) (tea.Model, tea.Cmd) {
	m.closePalette()

	parsed, err := commands.Parse(strings.TrimSpace(input))
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var notifyCmd tea.Cmd
	res, err := commands.Execute(parsed, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			_, notifyCmd = m.addTask(a.Title, a.Description)
			return commands.Result{Message: fmt.Sprintf("add: %s", a.Title)}, nil
		},
		Important: func(a commands.TaskArgs) (commands.Result, error) {
			notifyCmd = m.toggleImportant(a.ID)
			return taskResult("important", a.ID, notifyCmd), nil
		},
		Done: func(a commands.TaskArgs) (commands.Result, error) {
			notifyCmd = m.toggleCompleted(a.ID)
			return taskResult("done", a.ID, notifyCmd), nil
		},
		Delete: func(a commands.TaskArgs) (commands.Result, error) {
			notifyCmd = m.deleteTask(a.ID)
			return taskResult("delete", a.ID, notifyCmd), nil
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			m.setFilter(a.Filter)
			return commands.Result{Message: fmt.Sprintf("filter: %s", a.Filter)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, notifyCmd
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, notifyCmd
}

// taskResult reports a stale id without treating it as a failure.
func taskResult(verb string, id int, applied tea.Cmd) commands.Result {
	if applied == nil {
		return commands.Result{Message: fmt.Sprintf("%s: no task #%d", verb, id)}
	}
	return commands.Result{Message: fmt.Sprintf("%s: #%d", verb, id)}
}
