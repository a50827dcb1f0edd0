// Package toggle provides the runner logic for flipping a task between open
// and completed.
package toggle

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/todo"
)

// Toggle flips the completion flag of a task.
type Toggle struct {
	ID     int64
	ShowID bool
	Out    io.Writer

	Store *todo.Store
}

// Do executes the toggle for the configured task ID.
func (n *Toggle) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not toggle, no store")
	}
	pp := render.Pretty{W: n.Out, ShowID: n.ShowID}
	n.Store.SetRenderer(pp)

	t, err := n.Store.Toggle(n.ID)
	if err != nil {
		return err
	}
	if t == nil {
		return pp.Render(n.Store.Snapshot())
	}
	return nil
}
