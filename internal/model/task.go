package model

import (
	"errors"
	"strings"
	"time"
)

// DefaultDescription is stored when a task is added without a description.
const DefaultDescription = "No description"

// DateLayout is the fixed display layout for Task.Date.
const DateLayout = "Mon, 2 Jan, 15:04"

var ErrEmptyTitle = errors.New("model: task title is required")

type Task struct {
	ID          int
	Title       string
	Description string
	Date        string
	Timestamp   int64
	Important   bool
	Completed   bool
}

// NewTask builds an unsaved task created at now. The id is assigned by the caller.
func NewTask(id int, title, description string, now time.Time) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultDescription
	}
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Date:        FormatDate(now),
		Timestamp:   now.UnixMilli(),
	}, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func (t Task) CreatedAt() time.Time {
	return time.UnixMilli(t.Timestamp)
}

func (t Task) Status() string {
	if t.Completed {
		return "Completed"
	}
	return "Active"
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return errors.New("model: task id must be positive")
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
