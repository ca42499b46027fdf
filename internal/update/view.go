package update

import (
	"strings"

	"github.com/sandeepkv93/daybook/internal/model"
	"github.com/sandeepkv93/daybook/internal/views"
)

const (
	listHeaderLines = 2
	cardLines       = 5
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	list := views.RenderTaskList(m.taskListData())
	vp := m.listViewport
	vp.SetContent(list)

	left := vp.View()
	if form := m.formView(); form != "" {
		left = form + "\n\n" + left
	}
	if m.Mode == ModePalette {
		left = views.RenderCommandPalette(true, m.commandInput.View()) + "\n\n" + left
	}

	notification := ""
	if m.Notification.Visible() {
		notification = views.RenderNotification(string(m.Notification.Level), m.Notification.Body)
	}

	return views.RenderApp(views.AppData{
		Header:       m.headerLine(),
		LeftPane:     left,
		RightPane:    views.RenderDetail(m.detailData()),
		StatusLine:   m.Status.Text,
		Footer:       m.renderHelp(),
		Notification: notification,
	})
}

func (m Model) taskListData() views.TaskListData {
	res := m.Render()
	filters := model.Filters()
	names := make([]string, 0, len(filters))
	for _, f := range filters {
		names = append(names, string(f))
	}
	data := views.TaskListData{
		Filter:       string(res.Filter),
		Filters:      names,
		Count:        res.Count,
		EmptyMessage: res.EmptyMessage,
	}
	for i, t := range res.Tasks {
		data.Cards = append(data.Cards, views.TaskCardData{
			ID:          t.ID,
			Date:        t.Date,
			Title:       t.Title,
			Description: firstLine(t.Description),
			Important:   t.Important,
			Completed:   t.Completed,
			Status:      t.Status(),
			Selected:    i == m.Cursor && m.Mode == ModeList,
		})
	}
	return data
}

func (m Model) detailData() views.DetailData {
	t, ok := m.selectedTask()
	if !ok {
		return views.DetailData{}
	}
	return views.DetailData{
		ID:          t.ID,
		Title:       t.Title,
		Date:        t.Date,
		Status:      t.Status(),
		Important:   t.Important,
		Markdown:    views.RenderMarkdown("## "+t.Title+"\n\n"+t.Description, 44),
		HasSelected: true,
	}
}

func (m Model) formView() string {
	return views.RenderForm(views.FormData{
		TitleView:       m.titleInput.View(),
		DescriptionView: m.descArea.View(),
		Active:          m.Mode == ModeForm,
	})
}

// scrollToCursor moves the list viewport so the selected card is fully shown.
// Cards have a fixed height because only the first description line is listed.
func (m *Model) scrollToCursor() {
	h := m.listViewport.Height
	if h <= 0 {
		return
	}
	top := listHeaderLines + m.Cursor*cardLines
	bottom := top + cardLines - 1
	if m.Cursor == 0 {
		top = 0
	}
	switch {
	case top < m.listViewport.YOffset:
		m.listViewport.YOffset = top
	case bottom > m.listViewport.YOffset+h:
		m.listViewport.YOffset = bottom - h
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
