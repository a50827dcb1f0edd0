// Package add provides the runner logic for adding tasks.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/todo"
)

type Add struct {
	Text   string
	ShowID bool
	Out    io.Writer

	Store *todo.Store
}

func (n *Add) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	pp := render.Pretty{W: n.Out, ShowID: n.ShowID}
	n.Store.SetRenderer(pp)

	t, err := n.Store.Add(n.Text)
	if err != nil {
		return err
	}
	if t == nil {
		// Blank text: nothing changed, show the list as it is.
		return pp.Render(n.Store.Snapshot())
	}
	return nil
}
