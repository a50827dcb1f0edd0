package remove

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/todo"
)

type Remove struct {
	ID     int64
	ShowID bool
	Out    io.Writer

	Store *todo.Store
}

func (n *Remove) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}
	pp := render.Pretty{W: n.Out, ShowID: n.ShowID}
	n.Store.SetRenderer(pp)

	ok, err := n.Store.Remove(n.ID)
	if err != nil {
		return err
	}
	if !ok {
		return pp.Render(n.Store.Snapshot())
	}
	return nil
}
