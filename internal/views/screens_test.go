package views

import (
	"strings"
	"testing"
)

func TestRenderTaskListEmptyState(t *testing.T) {
	out := RenderTaskList(TaskListData{
		Filter:       "important",
		Filters:      []string{"all", "important", "recent"},
		EmptyMessage: "No important tasks.",
	})
	if !strings.Contains(out, "tasks: 0") {
		t.Fatalf("expected zero count: %q", out)
	}
	if !strings.Contains(out, "No important tasks.") {
		t.Fatalf("expected empty message: %q", out)
	}
}

func TestRenderTaskCardSurfacesFields(t *testing.T) {
	out := RenderTaskCard(TaskCardData{
		ID:          7,
		Date:        "Mon, 9 Feb, 12:30",
		Title:       "Buy milk",
		Description: "2 litres",
		Important:   true,
		Status:      "Active",
		Selected:    true,
	})
	for _, want := range []string{"#7", "Mon, 9 Feb, 12:30", "Buy milk", "2 litres", "★", "[Active]", ">"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in card: %q", want, out)
		}
	}
}

func TestRenderTaskListOrder(t *testing.T) {
	out := RenderTaskList(TaskListData{
		Filter:  "all",
		Filters: []string{"all", "important", "recent"},
		Count:   2,
		Cards: []TaskCardData{
			{ID: 1, Title: "first", Status: "Active"},
			{ID: 2, Title: "second", Status: "Completed", Completed: true},
		},
	})
	if !strings.Contains(out, "tasks: 2") {
		t.Fatalf("expected count 2: %q", out)
	}
	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Fatalf("cards out of order: %q", out)
	}
	if !strings.Contains(out, "☆") {
		t.Fatalf("expected empty star for non-important task: %q", out)
	}
}

func TestRenderNotificationLevels(t *testing.T) {
	if RenderNotification("success", "  ") != "" {
		t.Fatal("expected empty notification for blank body")
	}
	out := RenderNotification("error", "Please enter a task title")
	if !strings.Contains(out, "[ERROR] Please enter a task title") {
		t.Fatalf("unexpected notification: %q", out)
	}
	if !strings.Contains(RenderNotification("weird", "x"), "[WEIRD] x") {
		t.Fatal("unknown level should still render")
	}
}

func TestRenderDetail(t *testing.T) {
	if !strings.Contains(RenderDetail(DetailData{}), "(no selection)") {
		t.Fatal("expected no selection placeholder")
	}
	out := RenderDetail(DetailData{ID: 3, Date: "d", Status: "Completed", Important: true, Markdown: "notes", HasSelected: true})
	for _, want := range []string{"id: 3", "status: Completed", "important: yes", "notes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in detail: %q", want, out)
		}
	}
}

func TestRenderMarkdownFallsBackOnEmpty(t *testing.T) {
	if RenderMarkdown("   ", 40) != "" {
		t.Fatal("expected empty output for blank markdown")
	}
	if !strings.Contains(RenderMarkdown("**bold** text", 40), "text") {
		t.Fatal("expected rendered markdown to keep text")
	}
}
