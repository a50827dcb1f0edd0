package store

import (
	"context"
	"sync"
)

// Memory is a Storage that lives only as long as the process.
type Memory struct {
	mu       sync.Mutex
	values   map[string][]byte
	watchers map[string][]chan Event
}

func NewMemory() *Memory {
	return &Memory{
		values:   make(map[string][]byte),
		watchers: make(map[string][]chan Event),
	}
}

func (m *Memory) Read(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), val...), nil
}

func (m *Memory) Write(key string, val []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	m.values[key] = append([]byte(nil), val...)
	m.notifyLocked(key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Erase(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.values, key)
	m.notifyLocked(key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Watch(ctx context.Context, key string) (<-chan Event, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers[key] = append(m.watchers[key], ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		list := m.watchers[key]
		for i, c := range list {
			if c == ch {
				m.watchers[key] = append(list[:i], list[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) notifyLocked(key string) {
	for _, ch := range m.watchers[key] {
		select {
		case ch <- Event{Type: EventChanged, Key: key}:
		default:
		}
	}
}
