package list

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/todo/pkg/filter"
	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/todo"
)

type List struct {
	Filter filter.Filter
	ShowID bool
	JSON   bool
	Out    io.Writer

	Store *todo.Store
}

func (n *List) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not list, no store")
	}
	var r todo.Renderer = render.Pretty{W: n.Out, ShowID: n.ShowID}
	if n.JSON {
		r = render.JSON{W: n.Out}
	}
	// Render once, explicitly, so errors reach the caller.
	n.Store.SetRenderer(nil)
	n.Store.SetFilter(n.Filter)
	return r.Render(n.Store.Snapshot())
}
