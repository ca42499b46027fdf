package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openForm() tea.Cmd {
	m.Mode = ModeForm
	m.FormFocus = FieldTitle
	m.descArea.Blur()
	return m.titleInput.Focus()
}

func (m *Model) clearForm() {
	m.titleInput.SetValue("")
	m.descArea.Reset()
}

func (m *Model) focusField(f FormField) tea.Cmd {
	m.FormFocus = f
	if f == FieldDescription {
		m.titleInput.Blur()
		return m.descArea.Focus()
	}
	m.descArea.Blur()
	return m.titleInput.Focus()
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.clearForm()
		m.titleInput.Blur()
		m.descArea.Blur()
		m.Mode = ModeList
		return m, nil
	case "tab", "shift+tab":
		next := FieldDescription
		if m.FormFocus == FieldDescription {
			next = FieldTitle
		}
		return m, m.focusField(next)
	case "ctrl+s":
		return m.submitForm()
	case "enter":
		if m.FormFocus == FieldTitle {
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	if m.FormFocus == FieldDescription {
		m.descArea, cmd = m.descArea.Update(msg)
	} else {
		m.titleInput, cmd = m.titleInput.Update(msg)
	}
	return m, cmd
}

// submitForm adds the task. The form stays open and is cleared on success so
// several tasks can be entered in a row; on a rejected title it keeps the input.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	ok, cmd := m.addTask(m.titleInput.Value(), m.descArea.Value())
	if ok {
		m.clearForm()
	}
	return m, tea.Batch(cmd, m.focusField(FieldTitle))
}
