package cmd

import (
	"github.com/spf13/pflag"

	"github.com/protocollar/names/internal/config"
	"github.com/protocollar/names/internal/exitcode"
	"github.com/protocollar/names/pkg/names"
)

// generatorFlags are the flags that shape generated names. They are
// persistent so pick, words, config show and mcp serve see them too.
type generatorFlags struct {
	number          int
	casing          string
	separator       string
	numberSeparator string
	truncate        int
	reroll          int
	maxRerolls      int
	adjectives      []string
	nouns           []string
	seed            uint64
}

func (g *generatorFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&g.number, "number", "n", 0, "append a zero-padded number with this many digits (1-18)")
	fs.StringVar(&g.casing, "casing", "", "casing: lowercase, uppercase, capitalize, capitalize-first, capitalize-last, snake, screaming-snake, camel, pascal, kebab, screaming-kebab")
	fs.StringVarP(&g.separator, "separator", "s", "", `word separator for casings that take one ("none" for no separator)`)
	fs.StringVar(&g.numberSeparator, "number-separator", "", "separator before the number (default: the casing's separator)")
	fs.IntVar(&g.truncate, "truncate", 0, "cut names to at most this many characters")
	fs.IntVar(&g.reroll, "reroll", 0, "regenerate until a name has exactly this many characters")
	fs.IntVar(&g.maxRerolls, "max-rerolls", 0, "attempts before --reroll gives up (default 10000)")
	fs.StringArrayVar(&g.adjectives, "adjectives", nil, "adjective word-list files (glob, repeatable)")
	fs.StringArrayVar(&g.nouns, "nouns", nil, "noun word-list files (glob, repeatable)")
	fs.Uint64Var(&g.seed, "seed", 0, "seed for a reproducible sequence")
}

// overrides converts the flags set on the command line. Unset flags are
// left out so config files and the environment still apply.
func (g *generatorFlags) overrides(fs *pflag.FlagSet) (config.Overrides, error) {
	var ov config.Overrides

	if fs.Changed("casing") {
		ov.Casing = g.casing
	}
	if fs.Changed("separator") {
		sep := config.ParseSeparator(g.separator)
		ov.Separator = &sep
	}
	if fs.Changed("number") {
		if g.number < 1 || g.number > names.MaxDigits {
			return ov, exitcode.Errorf("invalid_args", exitcode.InvalidArgs,
				"--number must be between 1 and %d, got %d", names.MaxDigits, g.number)
		}
		ov.Number = g.number
	}
	if fs.Changed("number-separator") {
		sep := config.ParseSeparator(g.numberSeparator)
		ov.NumberSeparator = &sep
	}
	if fs.Changed("truncate") {
		l := names.TruncateTo(g.truncate)
		ov.Length = &l
	}
	if fs.Changed("reroll") {
		l := names.RerollTo(g.reroll)
		ov.Length = &l
	}
	if fs.Changed("max-rerolls") {
		if g.maxRerolls < 1 {
			return ov, exitcode.Errorf("invalid_args", exitcode.InvalidArgs,
				"--max-rerolls must be positive, got %d", g.maxRerolls)
		}
		ov.MaxRerolls = g.maxRerolls
	}
	ov.AdjectivesFiles = g.adjectives
	ov.NounsFiles = g.nouns
	return ov, nil
}

// source returns the seeded source when --seed was given, nil otherwise.
func (g *generatorFlags) source(fs *pflag.FlagSet) names.Source {
	if !fs.Changed("seed") {
		return nil
	}
	return names.NewSeededSource(g.seed)
}
