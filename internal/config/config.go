package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/protocollar/names/pkg/names"
)

// File is the on-disk configuration: names.yaml, names.yml or names.json.
// Absent keys keep their defaults.
type File struct {
	Adjectives      []string      `json:"adjectives,omitempty" yaml:"adjectives,omitempty"`
	Nouns           []string      `json:"nouns,omitempty" yaml:"nouns,omitempty"`
	AdjectivesFiles []string      `json:"adjectives_files,omitempty" yaml:"adjectives_files,omitempty"`
	NounsFiles      []string      `json:"nouns_files,omitempty" yaml:"nouns_files,omitempty"`
	Naming          *names.Naming `json:"naming,omitempty" yaml:"naming,omitempty"`
	Casing          *names.Casing `json:"casing,omitempty" yaml:"casing,omitempty"`
	Length          *names.Length `json:"length,omitempty" yaml:"length,omitempty"`
	MaxRerolls      int           `json:"max_rerolls,omitempty" yaml:"max_rerolls,omitempty"`
}

// ErrExists is returned by Save when the target exists and force is off.
var ErrExists = errors.New("config file already exists")

// searchNames are tried in order in the working directory.
var searchNames = []string{"names.yaml", "names.yml", "names.json"}

// Discover returns the config file to load. An explicit path always wins.
// Otherwise the first of names.yaml, names.yml, names.json found in dir is
// used, then ~/.config/names/config.yaml. Returns "" when there is none.
func Discover(explicit, dir string) (string, error) {
	if explicit != "" {
		return expandPath(explicit), nil
	}

	for _, name := range searchNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("checking %s: %w", name, err)
		}
	}

	p, err := UserPath()
	if err != nil {
		return "", nil
	}
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}
	return "", nil
}

// UserPath returns ~/.config/names/config.yaml.
func UserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "names", "config.yaml"), nil
}

// LoadFile reads path as JSON when it ends in .json and as YAML otherwise.
// Unknown keys are errors. Relative word-list patterns are resolved against
// the file's directory.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f := &File{}
	if isJSON(path) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// A file with no document, empty or only comments, decodes to io.EOF.
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	base := filepath.Dir(path)
	f.AdjectivesFiles = resolvePatterns(f.AdjectivesFiles, base)
	f.NounsFiles = resolvePatterns(f.NounsFiles, base)
	return f, nil
}

// DefaultFile returns the file written by "names config init". Word lists
// are left out so the built-in ones stay in effect.
func DefaultFile() *File {
	cfg := names.DefaultConfig()
	return &File{
		Naming:     &cfg.Naming,
		Casing:     &cfg.Casing,
		Length:     &cfg.Length,
		MaxRerolls: names.DefaultMaxRerolls,
	}
}

// Save writes f to path in the format implied by its extension, creating
// parent directories. An existing file is only replaced when force is set.
func Save(path string, f *File, force bool) error {
	var data []byte
	var err error
	if isJSON(path) {
		data, err = json.MarshalIndent(f, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(f)
	}
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	unlock, err := lockFor(path)
	if err != nil {
		return err
	}
	defer unlock()

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, path)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func resolvePatterns(patterns []string, base string) []string {
	if len(patterns) == 0 {
		return nil
	}
	out := make([]string, len(patterns))
	for i, p := range patterns {
		p = expandPath(p)
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		out[i] = p
	}
	return out
}

// expandPath replaces a leading ~ with the home directory.
func expandPath(p string) string {
	if strings.HasPrefix(p, "~/") || p == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
