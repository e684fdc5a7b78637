package cmd

import (
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/protocollar/names/internal/jsonout"
)

func setTestVersion(t *testing.T) {
	t.Helper()
	oldVersion, oldCommit, oldDate, oldRoot := Version, Commit, Date, rootCmd.Version
	t.Cleanup(func() {
		Version, Commit, Date, rootCmd.Version = oldVersion, oldCommit, oldDate, oldRoot
	})
	SetVersionInfo("0.4.0", "f00dcafe", "2026-10-01")
}

func TestSetVersionInfo(t *testing.T) {
	setTestVersion(t)

	if Version != "0.4.0" || Commit != "f00dcafe" || Date != "2026-10-01" {
		t.Errorf("build info = %q %q %q", Version, Commit, Date)
	}
	if want := "0.4.0 (commit f00dcafe, built 2026-10-01)"; rootCmd.Version != want {
		t.Errorf("rootCmd.Version = %q, want %q", rootCmd.Version, want)
	}
}

func TestVersionCommand(t *testing.T) {
	setTestVersion(t)

	out, err := executeRoot(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "names 0.4.0 (commit f00dcafe, built 2026-10-01)\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestVersionCommandJSON(t *testing.T) {
	setTestVersion(t)
	t.Cleanup(func() { jsonout.Enabled = false })

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	_, runErr := executeRoot(t, "version", "--json")
	os.Stdout = orig
	_ = w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if runErr != nil {
		t.Fatal(runErr)
	}

	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", data, err)
	}
	want := map[string]string{"version": "0.4.0", "commit": "f00dcafe", "date": "2026-10-01"}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}
