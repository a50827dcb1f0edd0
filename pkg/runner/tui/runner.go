package tui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/todo"
)

// ErrNoTTY is returned when the terminal UI is started without a terminal.
var ErrNoTTY = errors.New("tui: stdin and stdout must be a terminal")

// UI runs the terminal front end until the user quits or ctx is cancelled.
type UI struct {
	Store   *todo.Store
	Storage store.Storage
	Key     string

	In  *os.File
	Out *os.File
}

func (u *UI) Do(ctx context.Context) error {
	if u.Store == nil {
		return errors.New("can not start ui, no store")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	in, out := u.In, u.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if !isTerminal(in) || !isTerminal(out) {
		return ErrNoTTY
	}

	m := New(ctx, u.Store, Options{Storage: u.Storage, Key: u.Key})
	_, err := run(ctx, m, in, out, tea.WithAltScreen())
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func run(ctx context.Context, m *Model, in io.Reader, out io.Writer, opts ...tea.ProgramOption) (tea.Model, error) {
	opts = append(opts, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	return tea.NewProgram(m, opts...).Run()
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
