package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"tableflip.dev/todo/pkg/filter"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/todo"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s := todo.New(store.NewMemory())
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return NewService(s)
}

func TestServiceAddAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	res, err := svc.AddTask(ctx, "  Buy milk ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !res.Found || res.Task.Text != "Buy milk" || res.Task.Completed {
		t.Fatalf("unexpected add result %+v", res)
	}

	blank, err := svc.AddTask(ctx, "   ")
	if err != nil {
		t.Fatalf("add blank: %v", err)
	}
	if blank.Found {
		t.Fatalf("blank text should be ignored")
	}

	if _, err := svc.ToggleTask(ctx, res.Task.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	active, err := svc.ListTasks(ctx, filter.Active)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if active.Count != 0 || active.Counts.Total != 1 {
		t.Fatalf("unexpected active list %+v", active)
	}
	if svc.Store.Filter() != filter.All {
		t.Fatalf("listing must not change the store's filter")
	}
}

func TestServiceStaleIDs(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for name, call := range map[string]func() (*TaskResult, error){
		"toggle": func() (*TaskResult, error) { return svc.ToggleTask(ctx, 99) },
		"remove": func() (*TaskResult, error) { return svc.RemoveTask(ctx, 99) },
		"edit":   func() (*TaskResult, error) { return svc.EditTask(ctx, 99, "x") },
		"get":    func() (*TaskResult, error) { return svc.GetTask(ctx, 99) },
	} {
		res, err := call()
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if res.Found {
			t.Fatalf("%s: expected not found", name)
		}
	}
}

func TestServiceEditAndRemove(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	added, _ := svc.AddTask(ctx, "X")

	res, err := svc.EditTask(ctx, added.Task.ID, "")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if res.Task.Text != "X" {
		t.Fatalf("blank edit should keep text, got %q", res.Task.Text)
	}

	removed, err := svc.RemoveTask(ctx, added.Task.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !removed.Found || removed.Task.Text != "X" {
		t.Fatalf("unexpected remove result %+v", removed)
	}
}

func TestServiceRequiresStore(t *testing.T) {
	if _, err := (&Service{}).ListTasks(context.Background(), filter.All); err == nil {
		t.Fatalf("expected error")
	}
}

func TestToJSONResult(t *testing.T) {
	res, err := toJSONResult(map[string]int{"count": 2})
	if err != nil {
		t.Fatalf("toJSONResult: %v", err)
	}
	if res.IsError || len(res.Content) != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	var got map[string]int
	if err := json.Unmarshal([]byte(text.Text), &got); err != nil || got["count"] != 2 {
		t.Fatalf("unexpected payload %q", text.Text)
	}
}
