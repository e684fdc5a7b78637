package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/protocollar/names/internal/config"
	"github.com/protocollar/names/internal/exitcode"
	"github.com/protocollar/names/internal/wordlist"
	"github.com/protocollar/names/pkg/names"
)

// resolveSettings merges defaults, the config file, the environment and the
// command's flags.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	e, err := config.LoadEnv()
	if err != nil {
		return nil, exitcode.Wrap("config_error", exitcode.ConfigError, err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	s, err := config.Load(configPath, cwd, e)
	if err != nil {
		if names.IsConfigError(err) {
			return nil, err
		}
		return nil, exitcode.Wrap("config_error", exitcode.ConfigError, err)
	}
	if s.Path != "" {
		logger.Debug("loaded config", "path", s.Path)
	}

	ov, err := genFlags.overrides(cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := s.Apply(ov); err != nil {
		return nil, err
	}

	warnIgnoredSeparator(ov, s.Config.Casing)
	return s, nil
}

// warnIgnoredSeparator logs when --separator was given for a casing whose
// separator is fixed.
func warnIgnoredSeparator(ov config.Overrides, c names.Casing) {
	if ov.Separator != nil && !c.Kind.TakesSeparator() {
		logger.Warn("separator ignored", "casing", c.Kind, "separator", ov.Separator.String())
	}
}

// newGenerator loads the configured word-list files and builds a generator.
// A nil src selects an OS-seeded source.
func newGenerator(s *config.Settings, src names.Source) (*names.Generator, error) {
	cfg := s.Config

	if len(s.AdjectivesFiles) > 0 {
		list, err := wordlist.Load(s.AdjectivesFiles)
		if err != nil {
			return nil, fmt.Errorf("loading adjectives: %w", err)
		}
		logger.Debug("loaded adjectives", "files", list.Files, "words", len(list.Words))
		cfg.Adjectives = list.Words
	}
	if len(s.NounsFiles) > 0 {
		list, err := wordlist.Load(s.NounsFiles)
		if err != nil {
			return nil, fmt.Errorf("loading nouns: %w", err)
		}
		logger.Debug("loaded nouns", "files", list.Files, "words", len(list.Words))
		cfg.Nouns = list.Words
	}

	opts := []names.Option{names.WithMaxRerolls(s.MaxRerolls)}
	if src != nil {
		opts = append(opts, names.WithSource(src))
	}
	g, err := names.New(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("building generator: %w", err)
	}
	return g, nil
}

// generatorFromFlags is resolveSettings followed by newGenerator.
func generatorFromFlags(cmd *cobra.Command) (*names.Generator, *config.Settings, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	g, err := newGenerator(s, genFlags.source(cmd.Flags()))
	if err != nil {
		return nil, nil, err
	}
	return g, s, nil
}
