// Package todo owns the task list: it keeps the ordered sequence, mirrors it
// to storage after every mutation and hands a filtered view to a renderer.
package todo

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"tableflip.dev/todo/pkg/filter"
	"tableflip.dev/todo/pkg/log"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

// Renderer redraws the visible list from a View. Render runs while the store
// is locked and must not call back into the Store.
type Renderer interface {
	Render(v View) error
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(v View) error

func (f RendererFunc) Render(v View) error {
	return f(v)
}

// Store is the single owner of the task list and of the transient UI state
// (active filter, task in edit mode). Every mutation persists the full list
// and then re-renders.
type Store struct {
	mu sync.Mutex

	storage  store.Storage
	key      string
	ids      *task.IDSource
	renderer Renderer

	tasks     []task.Task
	filter    filter.Filter
	editingID int64
}

type Option func(*Store)

// WithKey sets the storage key the list is persisted under.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithRenderer(r Renderer) Option {
	return func(s *Store) {
		s.renderer = r
	}
}

func WithIDSource(ids *task.IDSource) Option {
	return func(s *Store) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// New creates an empty store. Call Load to read what is already persisted.
func New(storage store.Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		key:     store.DefaultKey,
		ids:     task.NewIDSource(),
		filter:  filter.All,
		tasks:   []task.Task{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SetRenderer swaps the renderer. Front ends that are built after the store
// (the TUI model, for one) attach themselves here.
func (s *Store) SetRenderer(r Renderer) {
	s.mu.Lock()
	s.renderer = r
	s.mu.Unlock()
}

// Load replaces the in-memory list with the persisted one. A missing key is an
// empty list. Malformed data is logged and treated as an empty list; only
// storage failures are returned.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage == nil {
		return errors.New("todo: no storage configured")
	}

	tasks := []task.Task{}
	data, err := s.storage.Read(s.key)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return fmt.Errorf("todo: load: %w", err)
	default:
		list, err := task.UnmarshalList(data)
		if err != nil {
			log.Warn().Err(err).Str("key", s.key).Msg("todo: ignoring malformed stored list")
		} else {
			tasks = list
		}
	}

	s.tasks = tasks
	for _, t := range tasks {
		s.ids.Observe(t.ID)
	}
	if s.editingID != 0 && s.indexLocked(s.editingID) < 0 {
		s.editingID = 0
	}
	s.renderLocked()
	return nil
}

// Add appends a new open task. Text that trims to nothing is rejected
// silently: the result is nil and nothing is persisted.
func (s *Store) Add(text string) (*task.Task, error) {
	text, ok := task.NormalizeText(text)
	if !ok {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := task.New(s.ids.Next(), text)
	prev := s.tasks
	s.tasks = append(slices.Clip(s.tasks), t)
	if err := s.persistLocked(); err != nil {
		s.tasks = prev
		return nil, err
	}
	s.renderLocked()
	return &t, nil
}

// Toggle flips the completion flag of the task with id. An unknown id is
// ignored and yields nil.
func (s *Store) Toggle(id int64) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil, nil
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	if err := s.persistLocked(); err != nil {
		s.tasks[i].Completed = !s.tasks[i].Completed
		return nil, err
	}
	t := s.tasks[i]
	s.renderLocked()
	return &t, nil
}

// Remove deletes the task with id and reports whether it existed.
func (s *Store) Remove(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false, nil
	}
	prev := s.tasks
	s.tasks = slices.Delete(slices.Clone(s.tasks), i, i+1)
	if err := s.persistLocked(); err != nil {
		s.tasks = prev
		return false, err
	}
	if s.editingID == id {
		s.editingID = 0
	}
	s.renderLocked()
	return true, nil
}

// BeginEdit puts the task with id in edit mode. It reports false for an
// unknown id.
func (s *Store) BeginEdit(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id <= 0 || s.indexLocked(id) < 0 {
		return false
	}
	s.editingID = id
	s.renderLocked()
	return true
}

// CommitEdit leaves edit mode and, when text is not blank, replaces the task's
// text. Storage is only written when the text actually changed. The returned
// task is nil for an unknown id.
func (s *Store) CommitEdit(id int64, text string) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editingID = 0
	i := s.indexLocked(id)
	if i < 0 {
		s.renderLocked()
		return nil, nil
	}

	if text, ok := task.NormalizeText(text); ok && text != s.tasks[i].Text {
		old := s.tasks[i].Text
		s.tasks[i].Text = text
		if err := s.persistLocked(); err != nil {
			s.tasks[i].Text = old
			s.renderLocked()
			return nil, err
		}
	}
	t := s.tasks[i]
	s.renderLocked()
	return &t, nil
}

func (s *Store) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = 0
	s.renderLocked()
}

// SetFilter changes the active view predicate. The task list is untouched.
func (s *Store) SetFilter(f filter.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f == "" {
		f = filter.All
	}
	s.filter = f
	s.renderLocked()
}

// View yields the tasks matching the active filter in insertion order. The
// sequence reads a snapshot taken when View is called and can be ranged over
// any number of times.
func (s *Store) View() iter.Seq[task.Task] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return viewOf(s.tasks, s.filter)
}

// Snapshot captures everything a renderer needs.
func (s *Store) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SnapshotFilter is Snapshot with f in place of the active filter. The
// store's own filter is left alone.
func (s *Store) SnapshotFilter(f filter.Filter) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f == "" {
		f = filter.All
	}
	v := s.snapshotLocked()
	v.Filter = f
	v.Tasks = viewOf(s.tasks, f)
	return v
}

// Tasks returns a copy of the full list.
func (s *Store) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

func (s *Store) Get(id int64) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return task.Task{}, false
	}
	return s.tasks[i], true
}

func (s *Store) Filter() filter.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// EditingID is the id of the task in edit mode, or 0.
func (s *Store) EditingID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countsOf(s.tasks)
}

func (s *Store) indexLocked(id int64) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
}

func (s *Store) persistLocked() error {
	if s.storage == nil {
		return errors.New("todo: no storage configured")
	}
	data, err := task.MarshalList(s.tasks)
	if err != nil {
		return fmt.Errorf("todo: encode: %w", err)
	}
	if err := s.storage.Write(s.key, data); err != nil {
		return fmt.Errorf("todo: persist: %w", err)
	}
	return nil
}

func (s *Store) renderLocked() {
	if s.renderer == nil {
		return
	}
	if err := s.renderer.Render(s.snapshotLocked()); err != nil {
		log.Warn().Err(err).Msg("todo: render failed")
	}
}

func (s *Store) snapshotLocked() View {
	return View{
		Filter:    s.filter,
		EditingID: s.editingID,
		Counts:    countsOf(s.tasks),
		Tasks:     viewOf(s.tasks, s.filter),
	}
}
