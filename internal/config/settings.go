package config

import (
	"fmt"

	"github.com/protocollar/names/pkg/names"
)

// Settings is the merged configuration a generator is built from.
type Settings struct {
	// Path is the config file that was loaded, "" if none.
	Path            string
	Config          names.Config
	MaxRerolls      int
	AdjectivesFiles []string
	NounsFiles      []string

	// number and numberSep persist across layers so the numbered suffix
	// always follows the casing of the last layer applied.
	number    int
	numberSep *names.Separator
}

// Overrides are settings from the environment or the command line. Zero
// fields leave the current value alone.
type Overrides struct {
	Casing string
	// Separator applies only to casings that take one.
	Separator *names.Separator
	// Number selects zero-padded numbering with this many digits.
	Number int
	// NumberSeparator defaults to the casing's separator.
	NumberSeparator *names.Separator
	Length          *names.Length
	MaxRerolls      int
	AdjectivesFiles []string
	NounsFiles      []string
}

// Defaults returns settings for the built-in configuration.
func Defaults() *Settings {
	return &Settings{Config: names.DefaultConfig()}
}

// Load resolves settings from the defaults, the config file and the
// environment, in that order. explicit is the --config flag value.
func Load(explicit, dir string, e Env) (*Settings, error) {
	s := Defaults()

	if explicit == "" {
		explicit = e.Config
	}
	path, err := Discover(explicit, dir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		f, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		s.ApplyFile(path, f)
	}

	if err := s.Apply(e.Overrides()); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return s, nil
}

// ApplyFile layers a loaded config file over s.
func (s *Settings) ApplyFile(path string, f *File) {
	s.Path = path
	if len(f.Adjectives) > 0 {
		s.Config.Adjectives = f.Adjectives
	}
	if len(f.Nouns) > 0 {
		s.Config.Nouns = f.Nouns
	}
	if len(f.AdjectivesFiles) > 0 {
		s.AdjectivesFiles = f.AdjectivesFiles
	}
	if len(f.NounsFiles) > 0 {
		s.NounsFiles = f.NounsFiles
	}
	if f.Naming != nil {
		s.Config.Naming = *f.Naming
	}
	if f.Casing != nil {
		s.Config.Casing = *f.Casing
	}
	if f.Length != nil {
		s.Config.Length = *f.Length
	}
	if f.MaxRerolls != 0 {
		s.MaxRerolls = f.MaxRerolls
	}
}

// Apply layers ov over s. The casing is resolved before the number, and a
// number set by an earlier layer is suffixed again, so the numbered suffix
// always uses the latest casing's separator.
func (s *Settings) Apply(ov Overrides) error {
	switch {
	case ov.Casing != "":
		sep := s.Config.Casing.Sep
		if ov.Separator != nil {
			sep = *ov.Separator
		}
		if !sep.IsSet() {
			sep = names.Dash
		}
		c, err := names.ParseCasing(ov.Casing, sep)
		if err != nil {
			return err
		}
		s.Config.Casing = c
	case ov.Separator != nil && s.Config.Casing.Kind.TakesSeparator():
		s.Config.Casing.Sep = *ov.Separator
	}

	if ov.Number != 0 {
		s.number = ov.Number
	}
	if ov.NumberSeparator != nil {
		s.numberSep = ov.NumberSeparator
	}
	if s.number != 0 {
		sep := names.ParseSeparator(s.Config.Casing.Separator())
		if s.numberSep != nil {
			sep = *s.numberSep
		}
		s.Config.Naming = names.ZeroPaddedNaming(s.number, sep)
	}
	if ov.Length != nil {
		s.Config.Length = *ov.Length
	}
	if ov.MaxRerolls != 0 {
		s.MaxRerolls = ov.MaxRerolls
	}
	if len(ov.AdjectivesFiles) > 0 {
		s.AdjectivesFiles = ov.AdjectivesFiles
	}
	if len(ov.NounsFiles) > 0 {
		s.NounsFiles = ov.NounsFiles
	}
	return nil
}
