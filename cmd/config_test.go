package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/protocollar/names/internal/exitcode"
)

func TestConfigInitThenShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.yaml")

	if _, err := executeRoot(t, "config", "init", path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out, err := executeRoot(t, "config", "show", "--config", path, "--casing", "snake")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"path: " + path, "SnakeCase", "max_rerolls: 10000"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.json")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := executeRoot(t, "config", "init", path)
	if code, exit := exitcode.ClassifyError(err); exit != exitcode.AlreadyExists {
		t.Errorf("ClassifyError = (%q, %d), want exit %d", code, exit, exitcode.AlreadyExists)
	}

	if _, err := executeRoot(t, "config", "init", "--force", path); err != nil {
		t.Fatalf("init --force: %v", err)
	}
}

func TestConfigInitPathWithUser(t *testing.T) {
	_, err := executeRoot(t, "config", "init", "--user", "x.yaml")
	if _, exit := exitcode.ClassifyError(err); exit != exitcode.InvalidArgs {
		t.Errorf("exit = %d, want %d", exit, exitcode.InvalidArgs)
	}
}
