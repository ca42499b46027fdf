package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TaskCardData struct {
	ID          int
	Date        string
	Title       string
	Description string
	Important   bool
	Completed   bool
	Status      string
	Selected    bool
}

type TaskListData struct {
	Filter       string
	Filters      []string
	Count        int
	Cards        []TaskCardData
	EmptyMessage string
}

type FormData struct {
	TitleView       string
	DescriptionView string
	Active          bool
}

type DetailData struct {
	ID          int
	Title       string
	Date        string
	Status      string
	Important   bool
	Markdown    string
	HasSelected bool
}

var (
	cardStyle          = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("8")).PaddingLeft(1)
	importantCardStyle = cardStyle.BorderForeground(lipgloss.Color("214"))
	selectedCardStyle  = cardStyle.BorderForeground(lipgloss.Color("12"))
	importantTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	plainTitle         = lipgloss.NewStyle().Bold(true)
	doneTitle          = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	metaStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeFilterStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	emptyStyle         = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))

	notificationStyles = map[string]lipgloss.Style{
		"success": lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Padding(0, 1),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Padding(0, 1),
		"info":    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12")).Padding(0, 1),
	}
)

func RenderTaskList(data TaskListData) string {
	var b strings.Builder
	b.WriteString(renderFilterBar(data.Filter, data.Filters))
	b.WriteString(fmt.Sprintf("  tasks: %d\n\n", data.Count))
	if len(data.Cards) == 0 {
		b.WriteString("No tasks yet\n")
		b.WriteString(emptyStyle.Render(data.EmptyMessage))
		return strings.TrimSpace(b.String())
	}
	for _, card := range data.Cards {
		b.WriteString(RenderTaskCard(card))
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}

func renderFilterBar(active string, filters []string) string {
	parts := make([]string, 0, len(filters))
	for i, f := range filters {
		label := fmt.Sprintf("[%d]%s", i+1, f)
		if f == active {
			label = activeFilterStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return "filter: " + strings.Join(parts, " ")
}

func RenderTaskCard(card TaskCardData) string {
	star := "☆"
	if card.Important {
		star = "★"
	}
	cursor := " "
	if card.Selected {
		cursor = ">"
	}

	title := plainTitle.Render(card.Title)
	switch {
	case card.Completed:
		title = doneTitle.Render(card.Title)
	case card.Important:
		title = importantTitle.Render(card.Title)
	}

	lines := []string{
		metaStyle.Render(fmt.Sprintf("#%d  %s", card.ID, card.Date)),
		fmt.Sprintf("%s %s", star, title),
		card.Description,
		metaStyle.Render(fmt.Sprintf("[%s]", card.Status)),
	}

	style := cardStyle
	switch {
	case card.Selected:
		style = selectedCardStyle
	case card.Important:
		style = importantCardStyle
	}
	return cursor + style.Render(strings.Join(lines, "\n"))
}

func RenderForm(data FormData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("new task:\n")
	b.WriteString(data.TitleView + "\n")
	b.WriteString(data.DescriptionView + "\n")
	b.WriteString("keys: [tab]field [enter/ctrl+s]save [esc]clear")
	return b.String()
}

func RenderDetail(data DetailData) string {
	if !data.HasSelected {
		return "details:\n(no selection)"
	}
	important := "no"
	if data.Important {
		important = "yes"
	}
	return fmt.Sprintf("details:\nid: %d\ncreated: %s\nstatus: %s\nimportant: %s\n\n%s",
		data.ID,
		data.Date,
		data.Status,
		important,
		data.Markdown,
	)
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", inputView)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	style, ok := notificationStyles[level]
	if !ok {
		style = notificationStyles["info"]
	}
	return style.Render(fmt.Sprintf("[%s] %s", strings.ToUpper(level), body))
}
