package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/todo"
)

// Row marks used by Pretty.
const (
	MarkOpen    = "○"
	MarkDone    = "✔"
	MarkEditing = "✎"
)

// Pretty prints a view as a terminal table.
type Pretty struct {
	W      io.Writer
	ShowID bool
}

func (pp Pretty) out() io.Writer {
	if pp.W == nil {
		return color.Output
	}
	return pp.W
}

func (pp Pretty) Render(v todo.View) error {
	w := pp.out()
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	tasks := v.Collect()
	if _, err := t.Fprint(w, v.Filter.String()); err != nil {
		return err
	}
	_, _ = c.Fprintf(w, " - %d of %d", len(tasks), v.Counts.Total)
	switch v.Counts.Total {
	case 1:
		_, _ = c.Fprintln(w, " task")
	default:
		_, _ = c.Fprintln(w, " tasks")
	}

	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, err := f.Fprintf(w, " %s\n\n", v.Filter.Placeholder())
		return err
	}

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	for _, tk := range tasks {
		mark := MarkOpen
		switch {
		case v.Editing(tk):
			mark = MarkEditing
		case tk.Completed:
			mark = MarkDone
		}
		if pp.ShowID {
			tbl.AddRow(strconv.FormatInt(tk.ID, 10), mark, tk.Text)
		} else {
			tbl.AddRow(mark, tk.Text)
		}
	}
	_, err := fmt.Fprintf(w, "%s\n\n", tbl)
	return err
}
