// Package edit provides the runner logic for renaming a task.
package edit

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/todo"
)

// Edit replaces the text of a task. Blank text leaves the task as it was.
type Edit struct {
	ID     int64
	Text   string
	ShowID bool
	Out    io.Writer

	Store *todo.Store
}

func (n *Edit) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	if !n.Store.BeginEdit(n.ID) {
		return render.Pretty{W: n.Out, ShowID: n.ShowID}.Render(n.Store.Snapshot())
	}
	n.Store.SetRenderer(render.Pretty{W: n.Out, ShowID: n.ShowID})
	_, err := n.Store.CommitEdit(n.ID, n.Text)
	return err
}
