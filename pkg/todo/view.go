package todo

import (
	"iter"
	"slices"

	"tableflip.dev/todo/pkg/filter"
	"tableflip.dev/todo/pkg/task"
)

// View is a point-in-time picture of the store for rendering.
type View struct {
	Filter    filter.Filter
	EditingID int64
	Counts    Counts
	Tasks     iter.Seq[task.Task]
}

// Editing reports whether t should be drawn as an edit control.
func (v View) Editing(t task.Task) bool {
	return v.EditingID != 0 && v.EditingID == t.ID
}

// Collect materialises the filtered tasks.
func (v View) Collect() []task.Task {
	if v.Tasks == nil {
		return []task.Task{}
	}
	out := slices.Collect(v.Tasks)
	if out == nil {
		out = []task.Task{}
	}
	return out
}

type Counts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

func countsOf(tasks []task.Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

func viewOf(tasks []task.Task, f filter.Filter) iter.Seq[task.Task] {
	snapshot := slices.Clone(tasks)
	return func(yield func(task.Task) bool) {
		for _, t := range snapshot {
			if !f.Match(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}
