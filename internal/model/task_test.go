package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewTaskSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 30, 0, 0, time.UTC)
	task, err := NewTask(1, "  Buy milk ", "", now)
	if err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
	if task.Title != "Buy milk" {
		t.Fatalf("unexpected title: %q", task.Title)
	}
	if task.Description != DefaultDescription {
		t.Fatalf("expected placeholder description, got %q", task.Description)
	}
	if task.Date != "Mon, 9 Feb, 12:30" {
		t.Fatalf("unexpected date: %q", task.Date)
	}
	if task.Timestamp != now.UnixMilli() {
		t.Fatalf("unexpected timestamp: %d", task.Timestamp)
	}
	if task.Important || task.Completed {
		t.Fatalf("expected flags false, got %+v", task)
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got %v", err)
	}
}

func TestNewTaskRejectsBlankTitle(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := NewTask(1, title, "x", now)
		if !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("title %q: expected ErrEmptyTitle, got %v", title, err)
		}
	}
}

func TestTaskStatus(t *testing.T) {
	task := Task{ID: 1, Title: "a"}
	if task.Status() != "Active" {
		t.Fatalf("unexpected status: %q", task.Status())
	}
	task.Completed = true
	if task.Status() != "Completed" {
		t.Fatalf("unexpected status: %q", task.Status())
	}
}

func TestTaskValidateRequiresPositiveID(t *testing.T) {
	if err := (Task{Title: "a"}).Validate(); err == nil {
		t.Fatal("expected error for zero id")
	}
}
