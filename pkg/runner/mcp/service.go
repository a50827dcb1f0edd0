// Package mcp exposes the todo list to Model Context Protocol clients.
package mcp

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/filter"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/todo"
)

// Service adapts the store to the shapes returned by the MCP tools.
type Service struct {
	Store *todo.Store
}

// TaskResult reports the outcome of a single-task operation. Found is false
// when the id no longer exists; that is not an error.
type TaskResult struct {
	Found bool       `json:"found"`
	Task  *task.Task `json:"task,omitempty"`
}

// ListResult is the payload of list_tasks and the tasks resource.
type ListResult struct {
	Filter filter.Filter `json:"filter"`
	Tasks  []task.Task   `json:"tasks"`
	Count  int           `json:"count"`
	Counts todo.Counts   `json:"counts"`
}

func NewService(s *todo.Store) *Service {
	return &Service{Store: s}
}

func (s *Service) ready() error {
	if s.Store == nil {
		return errors.New("store is not configured")
	}
	return nil
}

// ListTasks returns the tasks matching f without touching the store's own
// active filter.
func (s *Service) ListTasks(_ context.Context, f filter.Filter) (*ListResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	v := s.Store.SnapshotFilter(f)
	out := v.Collect()
	return &ListResult{
		Filter: v.Filter,
		Tasks:  out,
		Count:  len(out),
		Counts: v.Counts,
	}, nil
}

// AddTask adds a task. Blank text is rejected without error; Found is false.
func (s *Service) AddTask(_ context.Context, text string) (*TaskResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	t, err := s.Store.Add(text)
	if err != nil {
		return nil, err
	}
	return &TaskResult{Found: t != nil, Task: t}, nil
}

func (s *Service) ToggleTask(_ context.Context, id int64) (*TaskResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	t, err := s.Store.Toggle(id)
	if err != nil {
		return nil, err
	}
	return &TaskResult{Found: t != nil, Task: t}, nil
}

func (s *Service) RemoveTask(_ context.Context, id int64) (*TaskResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	prev, _ := s.Store.Get(id)
	ok, err := s.Store.Remove(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &TaskResult{}, nil
	}
	return &TaskResult{Found: true, Task: &prev}, nil
}

// EditTask replaces the text of a task. Blank text leaves it unchanged.
func (s *Service) EditTask(_ context.Context, id int64, text string) (*TaskResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	t, err := s.Store.CommitEdit(id, text)
	if err != nil {
		return nil, err
	}
	return &TaskResult{Found: t != nil, Task: t}, nil
}

func (s *Service) GetTask(_ context.Context, id int64) (*TaskResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	t, ok := s.Store.Get(id)
	if !ok {
		return &TaskResult{}, nil
	}
	return &TaskResult{Found: true, Task: &t}, nil
}
