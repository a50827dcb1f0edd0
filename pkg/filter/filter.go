// Package filter provides the view predicates applied when listing tasks.
package filter

import (
	"fmt"
	"strings"

	"tableflip.dev/todo/pkg/task"
)

type Filter string

const (
	All       Filter = "all"
	Active    Filter = "active"
	Completed Filter = "completed"
)

// Filters lists every filter in display order.
func Filters() []Filter {
	return []Filter{All, Active, Completed}
}

// Parse reads a filter name. The empty string is All.
func Parse(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", All:
		return All, nil
	case Active:
		return Active, nil
	case Completed:
		return Completed, nil
	}
	return All, fmt.Errorf("unknown filter %q (expected all, active or completed)", s)
}

func (f Filter) Match(t task.Task) bool {
	switch f {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	default:
		return true
	}
}

// Placeholder is shown instead of an empty list.
func (f Filter) Placeholder() string {
	switch f {
	case Active:
		return "No active tasks."
	case Completed:
		return "No completed tasks yet."
	default:
		return "No tasks yet. Add a new one!"
	}
}

func (f Filter) String() string {
	if f == "" {
		return string(All)
	}
	return string(f)
}
