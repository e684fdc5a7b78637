// Package wordlist loads adjective and noun lists from files on disk.
package wordlist

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/protocollar/names/pkg/names"
)

// ErrNoMatches is returned when a pattern matches no files.
var ErrNoMatches = errors.New("no files match")

// FileError reports a word-list pattern or file that could not be used.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("word list %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// List is the result of Load.
type List struct {
	Words []string
	Files []string
}

// Load reads every file matched by patterns, in pattern order and sorted
// within a pattern. Patterns use doublestar syntax ("words/**/*.txt");
// relative patterns resolve against the working directory. Files are parsed
// with names.ParseWordList. Duplicate words and files are kept once, first
// occurrence wins.
func Load(patterns []string) (*List, error) {
	list := &List{}
	seenFiles := make(map[string]bool)
	seenWords := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, &FileError{Path: pattern, Err: err}
		}
		if len(matches) == 0 {
			return nil, &FileError{Path: pattern, Err: ErrNoMatches}
		}
		slices.Sort(matches)

		for _, path := range matches {
			if seenFiles[path] {
				continue
			}
			seenFiles[path] = true

			words, err := ReadFile(path)
			if err != nil {
				return nil, err
			}
			list.Files = append(list.Files, path)
			for _, w := range words {
				if seenWords[w] {
					continue
				}
				seenWords[w] = true
				list.Words = append(list.Words, w)
			}
		}
	}
	return list, nil
}

// ReadFile parses a single word-list file.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return names.ParseWordList(string(data)), nil
}
