package render

import (
	"encoding/json"
	"io"

	"tableflip.dev/todo/pkg/filter"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/todo"
)

// ViewDTO is the JSON projection of a view.
type ViewDTO struct {
	Filter    filter.Filter `json:"filter"`
	EditingID int64         `json:"editingId,omitempty"`
	Counts    todo.Counts   `json:"counts"`
	Tasks     []task.Task   `json:"tasks"`
}

func NewViewDTO(v todo.View) ViewDTO {
	f := v.Filter
	if f == "" {
		f = filter.All
	}
	return ViewDTO{
		Filter:    f,
		EditingID: v.EditingID,
		Counts:    v.Counts,
		Tasks:     v.Collect(),
	}
}

type JSON struct {
	W io.Writer
}

func (j JSON) Render(v todo.View) error {
	enc := json.NewEncoder(j.W)
	enc.SetIndent("", "  ")
	return enc.Encode(NewViewDTO(v))
}
