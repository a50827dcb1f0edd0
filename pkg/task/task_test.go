package task

import (
	"slices"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func textGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9<>&"'](?:[A-Za-z0-9 <>&"']{0,30}[A-Za-z0-9<>&"'])?`)
}

func taskGenerator() *rapid.Generator[Task] {
	return rapid.Custom(func(t *rapid.T) Task {
		return Task{
			ID:        rapid.Int64Range(1, 1<<50).Draw(t, "id"),
			Text:      textGenerator().Draw(t, "text"),
			Completed: rapid.Bool().Draw(t, "completed"),
		}
	})
}

func TestListRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seq := rapid.SliceOfDistinct(taskGenerator(), func(x Task) int64 { return x.ID }).Draw(t, "seq")
		data, err := MarshalList(seq)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		got, err := UnmarshalList(data)
		if err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !slices.Equal(got, seq) {
			t.Fatalf("round trip mismatch:\nwant %v\ngot  %v", seq, got)
		}
	})
}

func TestMarshalListEmpty(t *testing.T) {
	data, err := MarshalList(nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected [], got %s", data)
	}
}

func TestMarshalListWireFormat(t *testing.T) {
	data, err := MarshalList([]Task{{ID: 1700000000000, Text: "Buy milk", Completed: true}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"id":1700000000000,"text":"Buy milk","completed":true}]`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}

func TestUnmarshalListBlankAndNull(t *testing.T) {
	for _, in := range []string{"", "   ", "null", "[]"} {
		got, err := UnmarshalList([]byte(in))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("%q: expected empty list, got %#v", in, got)
		}
	}
}

func TestUnmarshalListMalformed(t *testing.T) {
	for _, in := range []string{"{", `{"id":1}`, `[{"id":"x"}]`, "not json"} {
		if _, err := UnmarshalList([]byte(in)); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestUnmarshalListRepairs(t *testing.T) {
	in := `[{"id":1,"text":"  a  "},{"id":2,"text":"   "},{"id":1,"text":"dup"},{"id":0,"text":"zero"},{"id":-4,"text":"negative"},{"id":3,"text":"c","completed":true}]`
	got, err := UnmarshalList([]byte(in))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []Task{{ID: 1, Text: "a"}, {ID: 3, Text: "c", Completed: true}}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[ \t\n]*`).Draw(t, "blank")
		if _, ok := NormalizeText(s); ok {
			t.Fatalf("blank %q accepted", s)
		}
	})
	if got, ok := NormalizeText("  Buy milk\n"); !ok || got != "Buy milk" {
		t.Fatalf("expected trimmed text, got %q (%v)", got, ok)
	}
}

func TestIDSourceSameMillisecond(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	ids := NewIDSourceWithClock(func() time.Time { return fixed })
	a, b, c := ids.Next(), ids.Next(), ids.Next()
	if a != 1700000000000 || b != a+1 || c != b+1 {
		t.Fatalf("expected consecutive ids, got %d %d %d", a, b, c)
	}
}

func TestIDSourceObserve(t *testing.T) {
	ids := NewIDSourceWithClock(func() time.Time { return time.UnixMilli(10) })
	ids.Observe(500)
	if got := ids.Next(); got != 501 {
		t.Fatalf("expected 501, got %d", got)
	}
	ids.Observe(100)
	if got := ids.Next(); got != 502 {
		t.Fatalf("expected 502, got %d", got)
	}
}

func TestTaskString(t *testing.T) {
	done := Task{ID: 1, Text: "a", Completed: true}
	if !strings.HasPrefix(done.String(), "[x]") {
		t.Fatalf("unexpected %q", done.String())
	}
	if New(2, "b").Completed {
		t.Fatalf("new task should not be completed")
	}
}
