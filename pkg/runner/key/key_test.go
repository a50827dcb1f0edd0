package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/todo/pkg/render"
)

func TestKeyPrintsLegend(t *testing.T) {
	var out bytes.Buffer
	k := Key{Out: &out}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	for _, want := range []string{"Marks", "UI keys", render.MarkDone, "toggle completed", "quit"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}
