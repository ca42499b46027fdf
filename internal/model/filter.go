package model

import (
	"strings"
	"time"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterImportant Filter = "important"
	FilterRecent    Filter = "recent"
)

// RecentWindow bounds the recent filter.
const RecentWindow = 24 * time.Hour

var filterOrder = []Filter{FilterAll, FilterImportant, FilterRecent}

func Filters() []Filter {
	out := make([]Filter, len(filterOrder))
	copy(out, filterOrder)
	return out
}

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterImportant, FilterRecent:
		return true
	default:
		return false
	}
}

// Next cycles all -> important -> recent -> all. Unknown values start over at all.
func (f Filter) Next() Filter {
	for i, item := range filterOrder {
		if item == f {
			return filterOrder[(i+1)%len(filterOrder)]
		}
	}
	return FilterAll
}

func ParseFilter(raw string) (Filter, bool) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return FilterAll, false
	}
	return f, true
}

// Project returns the tasks visible under filter, in store order.
// Unknown filters behave like FilterAll.
func Project(tasks []Task, filter Filter, now time.Time) []Task {
	out := make([]Task, 0, len(tasks))
	switch filter {
	case FilterImportant:
		for _, t := range tasks {
			if t.Important {
				out = append(out, t)
			}
		}
	case FilterRecent:
		cutoff := now.UnixMilli() - RecentWindow.Milliseconds()
		for _, t := range tasks {
			if t.Timestamp > cutoff {
				out = append(out, t)
			}
		}
	default:
		out = append(out, tasks...)
	}
	return out
}

// EmptyMessage is shown when Project returns nothing for filter.
func EmptyMessage(filter Filter) string {
	switch filter {
	case FilterImportant:
		return "No important tasks. Mark tasks as important to see them here."
	case FilterRecent:
		return "No tasks in the last 24 hours. Add new tasks!"
	default:
		return "Add your first task using the form above. Your daybook is ready."
	}
}
