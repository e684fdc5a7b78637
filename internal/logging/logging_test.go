package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewDefaultLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{})

	l.Debug("loaded word list", "path", "adjectives.txt")
	if buf.Len() != 0 {
		t.Errorf("debug output without verbose: %q", buf.String())
	}

	l.Warn("separator ignored", "casing", "SnakeCase")
	if !strings.Contains(buf.String(), "separator ignored") {
		t.Errorf("warning missing from output: %q", buf.String())
	}
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Verbose: true})

	l.Debug("loaded word list", "path", "adjectives.txt")
	out := buf.String()
	if !strings.Contains(out, "loaded word list") {
		t.Errorf("output = %q, want debug message", out)
	}
	if !strings.Contains(out, "adjectives.txt") {
		t.Errorf("output = %q, want key/value pair", out)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{JSON: true})

	l.Warn("reroll exhausted", "length", 4)

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "reroll exhausted" {
		t.Errorf("msg = %v, want %q", entry["msg"], "reroll exhausted")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("dropped")
}
