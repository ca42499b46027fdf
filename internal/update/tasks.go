package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/daybook/internal/model"
)

const (
	msgTaskAdded       = "Task added"
	msgTitleRequired   = "Please enter a task title"
	msgTaskDeleted     = "Task deleted"
	msgMarkedImportant = "Task marked as important"
	msgNotImportant    = "Task is no longer important"
	msgMarkedDone      = "Task marked as completed"
	msgActiveAgain     = "Task is active again"
)

// RenderResult is one render pass: the projection of the store under the
// current filter. It is recomputed on every call.
type RenderResult struct {
	Filter       model.Filter
	Tasks        []model.Task
	Count        int
	EmptyMessage string
}

func (r RenderResult) Empty() bool { return r.Count == 0 }

func (m Model) Render() RenderResult {
	tasks := model.Project(m.Store.Tasks(), m.Filter, m.Store.Now())
	out := RenderResult{Filter: m.Filter, Tasks: tasks, Count: len(tasks)}
	if out.Count == 0 {
		out.EmptyMessage = model.EmptyMessage(m.Filter)
	}
	return out
}

func (m *Model) addTask(title, description string) (bool, tea.Cmd) {
	task, err := m.Store.Add(m.ctx, title, description)
	if errors.Is(err, model.ErrEmptyTitle) {
		return false, m.notify(LevelError, msgTitleRequired)
	}
	m.selectTask(task.ID)
	if err != nil {
		return m.persistFailed(err)
	}
	return true, m.notify(LevelSuccess, msgTaskAdded)
}

func (m *Model) toggleImportant(id int) tea.Cmd {
	task, found, err := m.Store.ToggleImportant(m.ctx, id)
	if !found {
		return nil
	}
	m.clampCursor()
	if err != nil {
		_, cmd := m.persistFailed(err)
		return cmd
	}
	if task.Important {
		return m.notify(LevelSuccess, msgMarkedImportant)
	}
	return m.notify(LevelInfo, msgNotImportant)
}

func (m *Model) toggleCompleted(id int) tea.Cmd {
	task, found, err := m.Store.ToggleCompleted(m.ctx, id)
	if !found {
		return nil
	}
	if err != nil {
		_, cmd := m.persistFailed(err)
		return cmd
	}
	if task.Completed {
		return m.notify(LevelSuccess, msgMarkedDone)
	}
	return m.notify(LevelInfo, msgActiveAgain)
}

func (m *Model) deleteTask(id int) tea.Cmd {
	_, found, err := m.Store.Delete(m.ctx, id)
	if !found {
		return nil
	}
	m.clampCursor()
	if err != nil {
		_, cmd := m.persistFailed(err)
		return cmd
	}
	return m.notify(LevelInfo, msgTaskDeleted)
}

func (m *Model) setFilter(f model.Filter) {
	if !f.IsValid() {
		f = model.FilterAll
	}
	m.Filter = f
	m.Cursor = 0
	m.clampCursor()
}

func (m *Model) persistFailed(err error) (bool, tea.Cmd) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	return false, m.notify(LevelError, fmt.Sprintf("could not save: %v", err))
}

func (m *Model) moveCursor(delta int) {
	m.Cursor += delta
	m.clampCursor()
}

// clampCursor keeps the cursor inside the current projection and syncs SelectedTaskID.
func (m *Model) clampCursor() {
	visible := m.Render().Tasks
	if len(visible) == 0 {
		m.Cursor = 0
		m.SelectedTaskID = 0
		return
	}
	if m.Cursor >= len(visible) {
		m.Cursor = len(visible) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.SelectedTaskID = visible[m.Cursor].ID
	m.scrollToCursor()
}

func (m *Model) selectTask(id int) {
	for i, t := range m.Render().Tasks {
		if t.ID == id {
			m.Cursor = i
			break
		}
	}
	m.clampCursor()
}

func (m Model) selectedTask() (model.Task, bool) {
	if m.SelectedTaskID == 0 {
		return model.Task{}, false
	}
	return m.Store.Get(m.SelectedTaskID)
}
