package commands

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"tableflip.dev/todo/pkg/render"
)

func setupEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TODO_CONFIG_PATH", dir)
	t.Setenv("TODO_PATH", dir+"/db")
	t.Setenv("TODO_KEY", "todos")
	t.Setenv("TODO_LOG_LEVEL", "disabled")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func listJSON(t *testing.T, args ...string) render.ViewDTO {
	t.Helper()
	out, err := run(t, append([]string{"list", "--json"}, args...)...)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var dto render.ViewDTO
	if err := json.Unmarshal([]byte(out), &dto); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return dto
}

func TestAddListToggleEditRemove(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "add", "buy", "milk")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "buy milk") {
		t.Fatalf("add should print the list, got %q", out)
	}

	dto := listJSON(t)
	if len(dto.Tasks) != 1 || dto.Tasks[0].Text != "buy milk" {
		t.Fatalf("unexpected list %+v", dto)
	}
	id := strconv.FormatInt(dto.Tasks[0].ID, 10)

	if _, err := run(t, "done", id); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if dto := listJSON(t, "--filter", "completed"); len(dto.Tasks) != 1 || !dto.Tasks[0].Completed {
		t.Fatalf("expected completed task, got %+v", dto)
	}
	if dto := listJSON(t, "--filter", "active"); len(dto.Tasks) != 0 || dto.Counts.Total != 1 {
		t.Fatalf("expected no active tasks, got %+v", dto)
	}

	if _, err := run(t, "edit", id, "buy", "oat", "milk"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if dto := listJSON(t); dto.Tasks[0].Text != "buy oat milk" {
		t.Fatalf("expected edited text, got %+v", dto)
	}

	if _, err := run(t, "rm", id); err != nil {
		t.Fatalf("rm: %v", err)
	}
	if dto := listJSON(t); len(dto.Tasks) != 0 {
		t.Fatalf("expected empty list, got %+v", dto)
	}
}

func TestPrettyListShowsIDs(t *testing.T) {
	setupEnv(t)
	if _, err := run(t, "add", "a"); err != nil {
		t.Fatalf("add: %v", err)
	}
	id := strconv.FormatInt(listJSON(t).Tasks[0].ID, 10)

	out, err := run(t, "ls", "-k")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	if !strings.Contains(out, id) {
		t.Fatalf("expected id %s in %q", id, out)
	}
}

func TestInvalidArguments(t *testing.T) {
	setupEnv(t)
	if _, err := run(t, "toggle", "abc"); err == nil {
		t.Fatalf("expected error for bad id")
	}
	if _, err := run(t, "list", "--filter", "bogus"); err == nil {
		t.Fatalf("expected error for bad filter")
	}
	out, err := run(t, "list", "--json", "--filter", "bogus")
	if err != nil {
		t.Fatalf("json errors are printed, not returned: %v", err)
	}
	if !strings.Contains(out, `"error"`) {
		t.Fatalf("expected json error, got %q", out)
	}
}

func TestMCPRejectsUnknownTransport(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "mcp", "--transport", "carrier-pigeon")
	if err == nil || !strings.Contains(err.Error(), "unsupported transport") {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestEphemeralDoesNotPersist(t *testing.T) {
	setupEnv(t)
	if _, err := run(t, "--ephemeral", "add", "gone"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if dto := listJSON(t); len(dto.Tasks) != 0 {
		t.Fatalf("ephemeral add should not persist, got %+v", dto)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "-s")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "dev") {
		t.Fatalf("expected version in %q", out)
	}
}
