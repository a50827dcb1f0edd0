package task

import (
	"sync"
	"time"
)

// IDSource hands out millisecond timestamps that never repeat. Two calls in
// the same millisecond get consecutive values.
type IDSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDSource() *IDSource {
	return &IDSource{now: time.Now}
}

// NewIDSourceWithClock is NewIDSource with an injected clock.
func NewIDSourceWithClock(now func() time.Time) *IDSource {
	return &IDSource{now: now}
}

func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.clock().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Observe makes sure ids at or below id are never handed out.
func (s *IDSource) Observe(id int64) {
	s.mu.Lock()
	if id > s.last {
		s.last = id
	}
	s.mu.Unlock()
}

func (s *IDSource) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
