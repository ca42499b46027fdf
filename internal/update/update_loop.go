package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/daybook/internal/model"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.Mode {
		case ModeForm:
			return m.handleFormKey(typed)
		case ModePalette:
			return m.handlePaletteKey(typed)
		default:
			return m.handleListKey(typed)
		}
	case AddTaskMsg:
		_, cmd := m.addTask(typed.Title, typed.Description)
		return m, cmd
	case ToggleImportantMsg:
		return m, m.toggleImportant(typed.ID)
	case ToggleCompletedMsg:
		return m, m.toggleCompleted(typed.ID)
	case DeleteTaskMsg:
		return m, m.deleteTask(typed.ID)
	case SetFilterMsg:
		m.setFilter(typed.Filter)
		return m, nil
	case DismissNotificationMsg:
		m.dismissNotification(typed.ID)
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Complete):
		if m.SelectedTaskID == 0 {
			return m, nil
		}
		return m, m.toggleCompleted(m.SelectedTaskID)
	case key.Matches(msg, m.keys.Important):
		if m.SelectedTaskID == 0 {
			return m, nil
		}
		return m, m.toggleImportant(m.SelectedTaskID)
	case key.Matches(msg, m.keys.Delete):
		if m.SelectedTaskID == 0 {
			return m, nil
		}
		return m, m.deleteTask(m.SelectedTaskID)
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(model.FilterAll)
		return m, nil
	case key.Matches(msg, m.keys.FilterImp):
		m.setFilter(model.FilterImportant)
		return m, nil
	case key.Matches(msg, m.keys.FilterRec):
		m.setFilter(model.FilterRecent)
		return m, nil
	case key.Matches(msg, m.keys.Cycle):
		m.setFilter(m.Filter.Next())
		return m, nil
	case key.Matches(msg, m.keys.New):
		return m, m.openForm()
	case key.Matches(msg, m.keys.Palette):
		m.Mode = ModePalette
		m.commandInput.SetValue("")
		return m, m.commandInput.Focus()
	}
	var cmd tea.Cmd
	m.listViewport, cmd = m.listViewport.Update(msg)
	return m, cmd
}

func (m *Model) resize(width, height int) {
	if width > 0 {
		m.width = width
	}
	// header, notification, help and borders
	h := height - 8
	if h < 5 {
		h = 5
	}
	m.listViewport.Height = h
	m.scrollToCursor()
}

func (m Model) headerLine() string {
	return fmt.Sprintf("daybook | filter: %s | tasks: %d/%d | selected: %s",
		m.Filter, m.Render().Count, m.Store.Len(), selectedLabel(m.SelectedTaskID))
}

func selectedLabel(id int) string {
	if id == 0 {
		return "-"
	}
	return fmt.Sprintf("#%d", id)
}
