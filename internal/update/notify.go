package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// notify replaces the visible notification and schedules its dismissal.
// A dismissal for a superseded notification is ignored in Update.
func (m *Model) notify(level Level, body string) tea.Cmd {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	n := Notification{
		ID:    uuid.NewString(),
		Level: level,
		Body:  body,
		At:    time.Now().UTC(),
	}
	m.Notification = n
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
	id := n.ID
	return tea.Tick(m.notificationTTL, func(time.Time) tea.Msg {
		return DismissNotificationMsg{ID: id}
	})
}

func (m *Model) dismissNotification(id string) {
	if m.Notification.ID == id {
		m.Notification = Notification{}
	}
}
