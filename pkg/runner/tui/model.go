// Package tui is the interactive terminal front end of the todo list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/todo/pkg/filter"
	"tableflip.dev/todo/pkg/log"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/todo"
)

type mode int

const (
	modeInsert mode = iota
	modeNormal
	modeEdit
)

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Model is the Bubble Tea model over a todo.Store. The store pushes a fresh
// View to the model after every change.
type Model struct {
	ctx     context.Context
	store   *todo.Store
	storage store.Storage
	key     string
	theme   Theme

	mode   mode
	cursor int
	view   todo.View
	rows   []task.Task

	input  textinput.Model
	editor textinput.Model

	width  int
	height int

	status string
	err    error

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// Options configure the model. Storage and Key enable refreshing when another
// process writes the list; leave Storage nil to skip watching.
type Options struct {
	Storage store.Storage
	Key     string
	Theme   *Theme
}

func New(ctx context.Context, s *todo.Store, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	in := textinput.New()
	in.Placeholder = "What needs to be done?"
	in.Prompt = "› "
	in.CharLimit = 512
	in.Focus()

	ed := textinput.New()
	ed.Prompt = ""
	ed.CharLimit = 512

	m := &Model{
		ctx:     ctx,
		store:   s,
		storage: opts.Storage,
		key:     opts.Key,
		theme:   DefaultTheme(),
		mode:    modeInsert,
		input:   in,
		editor:  ed,
	}
	if opts.Theme != nil {
		m.theme = *opts.Theme
	}
	if m.key == "" {
		m.key = store.DefaultKey
	}
	s.SetRenderer(todo.RendererFunc(m.Render))
	m.setView(s.Snapshot())
	return m
}

// Render receives the store's view. It runs inside store calls made from
// Update, so it only records the view.
func (m *Model) Render(v todo.View) error {
	m.setView(v)
	return nil
}

func (m *Model) setView(v todo.View) {
	m.view = v
	m.rows = v.Collect()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startWatchCmd())
}

func (m *Model) startWatchCmd() tea.Cmd {
	if m.storage == nil {
		return nil
	}
	parent, storage, key := m.ctx, m.storage, m.key
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := storage.Watch(ctx, key)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) quit() tea.Cmd {
	m.stopWatch()
	return tea.Quit
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-4, 10)
		m.editor.Width = max(msg.Width-8, 10)
		return m, nil
	case watchStartedMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Msg("tui: watch unavailable")
			return m, nil
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()
	case watchEventMsg:
		if err := m.store.Load(); err != nil {
			m.err = err
		}
		return m, m.waitForWatch()
	case watchStoppedMsg:
		m.watchCh = nil
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}
		switch m.mode {
		case modeInsert:
			return m.updateInsert(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeInsert:
		m.input, cmd = m.input.Update(msg)
	case modeEdit:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		t, err := m.store.Add(m.input.Value())
		m.err = err
		if err != nil {
			return m, nil
		}
		m.input.Reset()
		if t != nil {
			m.status = fmt.Sprintf("added %q", t.Text)
			m.selectID(t.ID)
		}
		return m, nil
	case tea.KeyEsc, tea.KeyDown:
		m.input.Blur()
		m.mode = modeNormal
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		id := m.view.EditingID
		t, err := m.store.CommitEdit(id, m.editor.Value())
		m.err = err
		m.leaveEdit()
		if t != nil {
			m.selectID(t.ID)
		}
		return m, nil
	case tea.KeyEsc:
		m.store.CancelEdit()
		m.leaveEdit()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) leaveEdit() {
	m.editor.Blur()
	m.editor.Reset()
	m.mode = modeNormal
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch msg.String() {
	case "q":
		return m, m.quit()
	case "a", "i":
		m.mode = modeInsert
		return m, m.input.Focus()
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.mode = modeInsert
			return m, m.input.Focus()
		}
	case " ", "x":
		if t, ok := m.current(); ok {
			_, m.err = m.store.Toggle(t.ID)
		}
	case "d":
		if t, ok := m.current(); ok {
			if _, err := m.store.Remove(t.ID); err != nil {
				m.err = err
			} else {
				m.status = fmt.Sprintf("deleted %q", t.Text)
			}
		}
	case "e", "enter":
		if t, ok := m.current(); ok && m.store.BeginEdit(t.ID) {
			m.mode = modeEdit
			m.editor.SetValue(t.Text)
			m.editor.CursorEnd()
			return m, m.editor.Focus()
		}
	case "1":
		m.store.SetFilter(filter.All)
	case "2":
		m.store.SetFilter(filter.Active)
	case "3":
		m.store.SetFilter(filter.Completed)
	case "tab":
		m.store.SetFilter(nextFilter(m.view.Filter))
	}
	return m, nil
}

func (m *Model) current() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return task.Task{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) selectID(id int64) {
	for i, t := range m.rows {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func nextFilter(f filter.Filter) filter.Filter {
	all := filter.Filters()
	for i, candidate := range all {
		if candidate == f {
			return all[(i+1)%len(all)]
		}
	}
	return filter.All
}

func (m *Model) View() string {
	var b strings.Builder
	th := m.theme

	b.WriteString(th.Title.Render("todos"))
	b.WriteString("  ")
	for i, f := range filter.Filters() {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == m.view.Filter {
			b.WriteString(th.FilterOn.Render(label))
		} else {
			b.WriteString(th.Filter.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(th.Placeholder.Render("  " + m.view.Filter.Placeholder()))
		b.WriteString("\n")
	}
	for i, t := range m.rows {
		b.WriteString(m.renderRow(i, t))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	c := m.view.Counts
	b.WriteString(th.Status.Render(fmt.Sprintf("%d active, %d completed", c.Active, c.Completed)))
	if m.status != "" {
		b.WriteString(th.Status.Render("  " + m.status))
	}
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(th.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(th.Help.Render(m.helpLine()))
	return b.String()
}

func (m *Model) renderRow(i int, t task.Task) string {
	th := m.theme
	pointer := "  "
	if i == m.cursor && m.mode != modeInsert {
		pointer = th.Cursor.Render("> ")
	}
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	if m.view.Editing(t) {
		return pointer + box + " " + m.editor.View()
	}

	text := t.Text
	if m.width > 0 {
		text = truncate.StringWithTail(text, uint(max(m.width-8, 1)), "…")
	}
	style := th.Open
	if t.Completed {
		style = th.Done
	}
	return pointer + box + " " + style.Render(text)
}

func (m *Model) helpLine() string {
	switch m.mode {
	case modeInsert:
		return "enter add • esc list • ctrl+c quit"
	case modeEdit:
		return "enter save • esc cancel"
	default:
		return "j/k move • space toggle • e edit • d delete • a add • 1/2/3 tab filter • q quit"
	}
}
