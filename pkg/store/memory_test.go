package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	if _, err := m.Read("todos"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	val := []byte(`[]`)
	if err := m.Write("todos", val); err != nil {
		t.Fatalf("write: %v", err)
	}
	val[0] = 'x'
	got, err := m.Read("todos")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}
}

func TestMemoryWatch(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.Watch(ctx, "todos")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := m.Write("todos", []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case ev := <-ch:
		if ev.Type != EventChanged || ev.Key != "todos" {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no event")
	}
	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}
