package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "adjectives.txt")
	writeFile(t, f, `# colours
amber

  cobalt  
# trailing comment
crimson
`)

	words, err := ReadFile(f)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"amber", "cobalt", "crimson"}
	if len(words) != len(expected) {
		t.Fatalf("got %d words, want %d: %v", len(words), len(expected), words)
	}
	for i, w := range words {
		if w != expected[i] {
			t.Errorf("word[%d] = %q, want %q", i, w, expected[i])
		}
	}
}

func TestReadFileOnlyComments(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "empty.txt")
	writeFile(t, f, "# only comments\n\n# nothing here\n")

	words, err := ReadFile(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 0 {
		t.Errorf("expected 0 words, got %d", len(words))
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FileError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want it to wrap os.ErrNotExist", err)
	}
}

func TestLoadGlobSortedAndDeduplicated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "words", "b.txt"), "otter\nmaple\n")
	writeFile(t, filepath.Join(dir, "words", "a.txt"), "maple\nbirch\n")
	writeFile(t, filepath.Join(dir, "words", "nested", "c.txt"), "heron\n")
	writeFile(t, filepath.Join(dir, "words", "notes.md"), "ignored\n")

	list, err := Load([]string{filepath.Join(dir, "words", "**", "*.txt")})
	if err != nil {
		t.Fatal(err)
	}

	wantWords := []string{"maple", "birch", "otter", "heron"}
	if len(list.Words) != len(wantWords) {
		t.Fatalf("words = %v, want %v", list.Words, wantWords)
	}
	for i, w := range list.Words {
		if w != wantWords[i] {
			t.Errorf("word[%d] = %q, want %q", i, w, wantWords[i])
		}
	}
	if len(list.Files) != 3 {
		t.Errorf("files = %v, want 3 entries", list.Files)
	}
}

func TestLoadMultiplePatternsKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "z.txt")
	second := filepath.Join(dir, "a.txt")
	writeFile(t, first, "zebra\n")
	writeFile(t, second, "aardvark\n")

	list, err := Load([]string{first, second, first})
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Words) != 2 || list.Words[0] != "zebra" || list.Words[1] != "aardvark" {
		t.Errorf("words = %v, want [zebra aardvark]", list.Words)
	}
	if len(list.Files) != 2 {
		t.Errorf("files = %v, want each file once", list.Files)
	}
}

func TestLoadNoMatches(t *testing.T) {
	dir := t.TempDir()
	_, err := Load([]string{filepath.Join(dir, "*.txt")})
	if !errors.Is(err, ErrNoMatches) {
		t.Fatalf("err = %v, want ErrNoMatches", err)
	}
}

func TestLoadBadPattern(t *testing.T) {
	_, err := Load([]string{"words/[.txt"})
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FileError", err)
	}
	if fe.Path != "words/[.txt" {
		t.Errorf("Path = %q, want %q", fe.Path, "words/[.txt")
	}
}
