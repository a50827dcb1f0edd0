// Package task defines the todo record and its persisted JSON form.
package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Task is a single todo record.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func New(id int64, text string) Task {
	return Task{
		ID:   id,
		Text: text,
	}
}

// NormalizeText trims s and reports whether anything is left.
func NormalizeText(s string) (string, bool) {
	t := strings.TrimSpace(s)
	return t, t != ""
}

func (t Task) String() string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s", mark, t.Text)
}

// MarshalList serializes the full ordered sequence. An empty sequence
// encodes as [] so readers never see null.
func MarshalList(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	return json.Marshal(tasks)
}

// UnmarshalList parses a persisted sequence. Blank input and null decode to an
// empty list. Tasks with blank text or an id below 1 are dropped and a
// repeated id keeps its first occurrence.
func UnmarshalList(data []byte) ([]Task, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Task{}, nil
	}
	var raw []Task
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	seen := make(map[int64]struct{}, len(raw))
	list := make([]Task, 0, len(raw))
	for _, t := range raw {
		text, ok := NormalizeText(t.Text)
		if !ok || t.ID <= 0 {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		t.Text = text
		list = append(list, t)
	}
	return list, nil
}
