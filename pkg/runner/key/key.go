// Package key prints the legend for the list marks and the terminal UI keys.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/render"
)

type binding struct {
	Keys   string
	Action string
}

var marks = []binding{
	{render.MarkOpen, "open task"},
	{render.MarkDone, "completed task"},
	{render.MarkEditing, "task being edited"},
}

var uiKeys = []binding{
	{"enter", "add the typed task, or edit the selected one"},
	{"esc", "leave the input, or cancel an edit"},
	{"a, i", "go back to the input"},
	{"j, k", "move down, up"},
	{"space, x", "toggle completed"},
	{"e", "edit the selected task"},
	{"d", "delete the selected task"},
	{"1, 2, 3", "show all, active, completed"},
	{"tab", "next filter"},
	{"q, ctrl+c", "quit"},
}

type Key struct {
	Out io.Writer
}

func (k *Key) Do(_ context.Context) error {
	w := k.Out
	if w == nil {
		w = color.Output
	}
	if err := k.table(w, "Marks", "Symbol", marks); err != nil {
		return err
	}
	return k.table(w, "UI keys", "Key", uiKeys)
}

func (k *Key) table(w io.Writer, title, column string, rows []binding) error {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(column), bold.Sprint("Meaning"))
	for _, r := range rows {
		tbl.AddRow(r.Keys, r.Action)
	}
	if _, err := color.New(color.Bold, color.Underline).Fprintln(w, title); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n\n", tbl)
	return err
}
