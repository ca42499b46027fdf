package update

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/daybook/internal/model"
	"github.com/sandeepkv93/daybook/internal/store"
)

type Mode string

const (
	ModeList    Mode = "list"
	ModeForm    Mode = "form"
	ModePalette Mode = "palette"
)

type FormField int

const (
	FieldTitle FormField = iota
	FieldDescription
)

type StatusBar struct {
	Text    string
	IsError bool
}

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

type Notification struct {
	ID    string
	Level Level
	Body  string
	At    time.Time
}

func (n Notification) Visible() bool { return n.ID != "" }

type Model struct {
	Store          *store.TaskStore
	Filter         model.Filter
	Mode           Mode
	Cursor         int
	SelectedTaskID int
	FormFocus      FormField
	Notification   Notification
	Status         StatusBar
	HelpVisible    bool
	DesktopEnabled bool
	Quitting       bool
	LastError      error

	ctx             context.Context
	notifier        DesktopNotifier
	notificationTTL time.Duration
	keys            keyMap
	width           int

	titleInput   textinput.Model
	descArea     textarea.Model
	commandInput textinput.Model
	helpModel    help.Model
	listViewport viewport.Model
}

type Options struct {
	Context              context.Context
	Filter               model.Filter
	NotificationTTL      time.Duration
	DesktopNotifications bool
	Notifier             DesktopNotifier
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	title := "daybook"
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), title)
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// Intents. Views and the command palette emit these; Update applies them to the store.

type AddTaskMsg struct {
	Title       string
	Description string
}

type ToggleImportantMsg struct {
	ID int
}

type ToggleCompletedMsg struct {
	ID int
}

type DeleteTaskMsg struct {
	ID int
}

type SetFilterMsg struct {
	Filter model.Filter
}

type DismissNotificationMsg struct {
	ID string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func NewModel(s *store.TaskStore, opts Options) Model {
	m := Model{
		Store:           s,
		Filter:          model.FilterAll,
		Mode:            ModeList,
		ctx:             opts.Context,
		notifier:        NoopDesktopNotifier{},
		notificationTTL: opts.NotificationTTL,
		DesktopEnabled:  opts.DesktopNotifications,
		keys:            defaultKeyMap(),
		width:           80,
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if opts.Filter.IsValid() {
		m.Filter = opts.Filter
	}
	if m.notificationTTL <= 0 {
		m.notificationTTL = 3 * time.Second
	}
	if opts.Notifier != nil {
		m.notifier = opts.Notifier
	}
	m.initBubbleComponents()
	m.clampCursor()
	return m
}

func (m *Model) initBubbleComponents() {
	m.titleInput = textinput.New()
	m.titleInput.Prompt = "title> "
	m.titleInput.Placeholder = "What needs doing?"
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 48

	m.descArea = textarea.New()
	m.descArea.Placeholder = "Description (optional, markdown)"
	m.descArea.ShowLineNumbers = false
	m.descArea.SetWidth(54)
	m.descArea.SetHeight(3)
	m.descArea.CharLimit = 2000

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.listViewport = viewport.New(64, 20)
}

func escapeAppleScript(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
