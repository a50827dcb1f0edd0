// Package render draws a todo.View for the different front ends.
package render

import (
	"bytes"
	"html/template"
	"io"
	"sync"

	"tableflip.dev/todo/pkg/filter"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/todo"
)

// listTemplate is the container markup. html/template escapes task text in
// both element and attribute context.
const listTemplate = `{{define "list"}}{{if not .Rows}}<div class="todo-empty">{{.Placeholder}}</div>
{{else}}{{range .Rows}}<div class="todo-item{{if .Completed}} completed{{end}}" data-id="{{.ID}}">
  <form method="post" action="{{$.Base}}/todos/{{.ID}}/toggle"><input type="checkbox" class="todo-checkbox"{{if .Completed}} checked{{end}} onchange="this.form.submit()"></form>
{{- if .Editing}}
  <form method="post" action="{{$.Base}}/todos/{{.ID}}/save"><input type="text" class="todo-edit-input" name="text" value="{{.Text}}" autofocus><button class="todo-btn save" title="Save">&#10003;</button></form>
  <form method="post" action="{{$.Base}}/todos/{{.ID}}/cancel"><button class="todo-btn cancel" title="Cancel">&#8617;</button></form>
{{- else}}
  <span class="todo-text">{{.Text}}</span>
  <form method="post" action="{{$.Base}}/todos/{{.ID}}/edit"><button class="todo-btn edit" title="Edit">&#9998;</button></form>
{{- end}}
  <form method="post" action="{{$.Base}}/todos/{{.ID}}/delete"><button class="todo-btn delete" title="Delete">&#10005;</button></form>
</div>
{{end}}{{end}}{{end}}`

var listTmpl = template.Must(template.New("list").Parse(listTemplate))

type row struct {
	task.Task
	Editing bool
}

type listData struct {
	Base        string
	Placeholder string
	Rows        []row
}

func newListData(base string, v todo.View) listData {
	f := v.Filter
	if f == "" {
		f = filter.All
	}
	d := listData{Base: base, Placeholder: f.Placeholder()}
	for _, t := range v.Collect() {
		d.Rows = append(d.Rows, row{Task: t, Editing: v.Editing(t)})
	}
	return d
}

// HTML writes the list container for a view. Base prefixes the form actions.
type HTML struct {
	W    io.Writer
	Base string
}

func (h HTML) Render(v todo.View) error {
	return listTmpl.ExecuteTemplate(h.W, "list", newListData(h.Base, v))
}

// HTMLCache keeps the markup of the most recent render, together with the
// view it was drawn from, so a page can be served without re-rendering the
// list.
type HTMLCache struct {
	Base string

	mu   sync.RWMutex
	view todo.View
	last []byte
}

func (c *HTMLCache) Render(v todo.View) error {
	var buf bytes.Buffer
	if err := (HTML{W: &buf, Base: c.Base}).Render(v); err != nil {
		return err
	}
	c.mu.Lock()
	c.view = v
	c.last = buf.Bytes()
	c.mu.Unlock()
	return nil
}

// Last returns the most recent view and its markup. The markup was produced
// by listTmpl and is already escaped.
func (c *HTMLCache) Last() (todo.View, template.HTML) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view, template.HTML(c.last)
}
