package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/protocollar/names/pkg/names"
)

// Env holds the NAMES_* environment variables.
type Env struct {
	Config     string   `env:"NAMES_CONFIG"`
	Casing     string   `env:"NAMES_CASING"`
	Separator  string   `env:"NAMES_SEPARATOR"`
	Number     int      `env:"NAMES_NUMBER"`
	Adjectives []string `env:"NAMES_ADJECTIVES" envSeparator:","`
	Nouns      []string `env:"NAMES_NOUNS" envSeparator:","`
	Debug      bool     `env:"NAMES_DEBUG"`
}

// LoadEnv parses the process environment.
func LoadEnv() (Env, error) {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("parsing environment: %w", err)
	}
	return e, nil
}

// Overrides converts the environment into settings overrides.
func (e Env) Overrides() Overrides {
	ov := Overrides{
		Casing:          e.Casing,
		Number:          e.Number,
		AdjectivesFiles: e.Adjectives,
		NounsFiles:      e.Nouns,
	}
	if e.Separator != "" {
		sep := ParseSeparator(e.Separator)
		ov.Separator = &sep
	}
	return ov
}

// ParseSeparator is names.ParseSeparator that also accepts "none" for no
// separator, which environment variables cannot express as an empty value.
func ParseSeparator(s string) names.Separator {
	if strings.EqualFold(s, "none") {
		return names.NoSeparator
	}
	return names.ParseSeparator(s)
}
