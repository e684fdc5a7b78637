package names

import (
	_ "embed"
	"slices"
	"strings"
)

//go:embed data/adjectives.txt
var adjectivesTxt string

//go:embed data/nouns.txt
var nounsTxt string

var (
	defaultAdjectives = ParseWordList(adjectivesTxt)
	defaultNouns      = ParseWordList(nounsTxt)
)

// Adjectives returns a copy of the built-in English adjective list.
func Adjectives() []string {
	return slices.Clone(defaultAdjectives)
}

// Nouns returns a copy of the built-in English noun list.
func Nouns() []string {
	return slices.Clone(defaultNouns)
}

// ParseWordList splits text into one word per line. Surrounding whitespace
// is trimmed; blank lines and lines starting with '#' are skipped.
func ParseWordList(text string) []string {
	var words []string
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}
