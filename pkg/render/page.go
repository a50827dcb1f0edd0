package render

import (
	"html/template"
	"io"
	"strings"

	"tableflip.dev/todo/pkg/filter"
	"tableflip.dev/todo/pkg/todo"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 36rem; margin: 2rem auto; }
form { display: inline; }
.todo-add { display: flex; gap: .5rem; }
.todo-add input { flex: 1; }
.todo-filters { margin: 1rem 0; }
.todo-filters button.active { font-weight: bold; }
.todo-item { display: flex; align-items: center; gap: .5rem; padding: .25rem 0; }
.todo-item .todo-text { flex: 1; }
.todo-item.completed .todo-text { text-decoration: line-through; opacity: .6; }
.todo-empty { opacity: .6; font-style: italic; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<form class="todo-add" method="post" action="{{.Base}}/todos"><input type="text" id="todo-input" name="text" placeholder="What needs doing?" autofocus><button id="todo-add-btn">Add</button></form>
<div class="todo-filters">
{{- range .Filters}}
<form method="post" action="{{$.Base}}/filter/{{.Name}}"><button data-filter="{{.Name}}"{{if .Active}} class="active"{{end}}>{{.Label}}</button></form>
{{- end}}
</div>
<div id="todo-list">
{{.List}}</div>
<p class="todo-count">{{.Counts.Active}} active, {{.Counts.Completed}} completed</p>
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

type filterButton struct {
	Name   string
	Label  string
	Active bool
}

type pageData struct {
	Title   string
	Base    string
	Filters []filterButton
	Counts  todo.Counts
	List    template.HTML
}

// Page writes the full document around an already rendered list.
type Page struct {
	W     io.Writer
	Title string
	Base  string
}

func (p Page) Render(v todo.View, list template.HTML) error {
	title := p.Title
	if title == "" {
		title = "Todo"
	}
	d := pageData{
		Title:  title,
		Base:   p.Base,
		Counts: v.Counts,
		List:   list,
	}
	for _, f := range filter.Filters() {
		d.Filters = append(d.Filters, filterButton{
			Name:   f.String(),
			Label:  strings.ToUpper(f.String()[:1]) + f.String()[1:],
			Active: f == v.Filter,
		})
	}
	return pageTmpl.Execute(p.W, d)
}
