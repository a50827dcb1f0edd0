package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) Key() string      { return DefaultKey }
func (t testConfig) Addr() string     { return DefaultAddr }
func (t testConfig) LogLevel() string { return DefaultLogLevel }

func TestDiskvReadMissing(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := p.Read("todos"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskvWriteReadErase(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := `[{"id":1,"text":"a","completed":false}]`
	if err := p.Write("todos", []byte(want)); err != nil {
		t.Fatalf("write: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(base, "todos"))
	if err != nil {
		t.Fatalf("expected flat file under base path: %v", err)
	}
	if string(raw) != want {
		t.Fatalf("file content %q", raw)
	}

	// A second handle sees the first one's writes.
	q, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load second: %v", err)
	}
	got, err := q.Read("todos")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if err := p.Erase("todos"); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := p.Erase("todos"); err != nil {
		t.Fatalf("erase of missing key should be a no-op: %v", err)
	}
	if _, err := q.Read("todos"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after erase, got %v", err)
	}
}

func TestInvalidKeys(t *testing.T) {
	m := NewMemory()
	for _, key := range []string{"", "  ", "a/b", `a\b`, ".tmp", ".."} {
		if err := m.Write(key, nil); err == nil {
			t.Fatalf("%q: expected error", key)
		}
	}
}

func TestLoadRequiresBasePath(t *testing.T) {
	if _, err := Load(testConfig{}); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}
