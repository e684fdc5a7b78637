package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/protocollar/names/internal/config"
	"github.com/protocollar/names/internal/exitcode"
	"github.com/protocollar/names/internal/wordlist"
	"github.com/protocollar/names/pkg/names"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{nil, 1, false},
		{[]string{"5"}, 5, false},
		{[]string{"0"}, 0, false},
		{[]string{"-2"}, 0, true},
		{[]string{"five"}, 0, true},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAmount(%v) err = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if err != nil {
			if _, exit := exitcode.ClassifyError(err); exit != exitcode.InvalidArgs {
				t.Errorf("parseAmount(%v) exit = %d, want %d", tt.args, exit, exitcode.InvalidArgs)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("parseAmount(%v) = %d, want %d", tt.args, got, tt.want)
		}
	}
}

func TestGenerateResultConcise(t *testing.T) {
	r := generateResult{Names: []string{"rusty-nail"}, Casing: names.DefaultCasing}
	got, ok := r.Concise().([]string)
	if !ok || len(got) != 1 || got[0] != "rusty-nail" {
		t.Errorf("Concise() = %v, want [rusty-nail]", r.Concise())
	}
}

func TestNewGeneratorLoadsWordFiles(t *testing.T) {
	dir := t.TempDir()
	adj := filepath.Join(dir, "adjectives.txt")
	noun := filepath.Join(dir, "nouns.txt")
	if err := os.WriteFile(adj, []byte("imaginary\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(noun, []byte("# nouns\nroll\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := config.Defaults()
	s.AdjectivesFiles = []string{adj}
	s.NounsFiles = []string{filepath.Join(dir, "noun*.txt")}

	g, err := newGenerator(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if name, _ := g.Next(); name != "imaginary-roll" {
		t.Errorf("Next() = %q, want %q", name, "imaginary-roll")
	}
}

func TestNewGeneratorMissingWordFile(t *testing.T) {
	s := config.Defaults()
	s.NounsFiles = []string{filepath.Join(t.TempDir(), "*.txt")}

	_, err := newGenerator(s, nil)
	if !errors.Is(err, wordlist.ErrNoMatches) {
		t.Fatalf("err = %v, want ErrNoMatches", err)
	}
	if _, exit := exitcode.ClassifyError(err); exit != exitcode.WordListError {
		t.Errorf("exit = %d, want %d", exit, exitcode.WordListError)
	}
}

func TestNewGeneratorEmptyWordFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "adjectives.txt")
	if err := os.WriteFile(f, []byte("# nothing\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s := config.Defaults()
	s.AdjectivesFiles = []string{f}

	_, err := newGenerator(s, nil)
	if !errors.Is(err, names.ErrAdjectivesEmpty) {
		t.Fatalf("err = %v, want ErrAdjectivesEmpty", err)
	}
}

func TestRootCommandGenerates(t *testing.T) {
	out, err := executeRoot(t, "3", "--seed", "11", "--casing", "kebab", "-n", "2")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out)
	}

	cfg := names.DefaultConfig()
	cfg.Casing = names.Casing{Kind: names.KebabCase}
	cfg.Naming = names.ZeroPaddedNaming(2, names.Dash)
	want, err := names.New(cfg, names.WithSource(names.NewSeededSource(11)))
	if err != nil {
		t.Fatal(err)
	}
	for i, line := range lines {
		if w, _ := want.Next(); line != w {
			t.Errorf("line %d = %q, want %q", i, line, w)
		}
	}
}

func TestRootCommandZeroAmount(t *testing.T) {
	out, err := executeRoot(t, "0")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("output = %q, want nothing", out)
	}
}

func TestRootCommandRejectsTruncateWithReroll(t *testing.T) {
	_, err := executeRoot(t, "--truncate", "5", "--reroll", "5")
	if err == nil {
		t.Fatal("expected an error for --truncate with --reroll")
	}
	if _, exit := exitcode.ClassifyError(err); exit != exitcode.InvalidArgs {
		t.Errorf("exit = %d, want %d", exit, exitcode.InvalidArgs)
	}
}
