package names

import (
	"fmt"
	"iter"
	"slices"
)

// Generator produces an unbounded sequence of names. It is not safe for
// concurrent use: give each goroutine its own Generator or guard it with a
// mutex.
type Generator struct {
	adjectives []string
	nouns      []string
	naming     Naming
	casing     Casing
	length     Length
	rng        Source
	maxRerolls int
}

// Option customizes a Generator beyond its serializable Config.
type Option func(*options)

type options struct {
	source     Source
	sourceSet  bool
	maxRerolls int
}

// WithSource sets the random source. Passing nil is an error at build time.
func WithSource(src Source) Option {
	return func(o *options) {
		o.source = src
		o.sourceSet = true
	}
}

// WithMaxRerolls caps the attempts made by the Reroll length policy.
// Zero selects DefaultMaxRerolls.
func WithMaxRerolls(n int) Option {
	return func(o *options) {
		o.maxRerolls = n
	}
}

// New validates cfg and returns a Generator. Without WithSource the
// generator draws from a source seeded with OS entropy.
func New(cfg Config, opts ...Option) (*Generator, error) {
	return build(cfg, nil, opts)
}

func build(cfg Config, hooks []func(Config) error, opts []Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.sourceSet && o.source == nil {
		return nil, &UninitializedFieldError{Field: "rng"}
	}
	if o.maxRerolls < 0 {
		return nil, validationErrorf("max rerolls must not be negative, got %d", o.maxRerolls)
	}

	for _, hook := range hooks {
		if err := hook(cfg); err != nil {
			if IsConfigError(err) {
				return nil, err
			}
			return nil, &ValidationError{Msg: err.Error()}
		}
	}

	src := o.source
	if src == nil {
		src = NewSource()
	}
	maxRerolls := o.maxRerolls
	if maxRerolls == 0 {
		maxRerolls = DefaultMaxRerolls
	}

	cfg = cfg.clone()
	return &Generator{
		adjectives: cfg.Adjectives,
		nouns:      cfg.Nouns,
		naming:     cfg.Naming,
		casing:     cfg.Casing,
		length:     cfg.Length,
		rng:        src,
		maxRerolls: maxRerolls,
	}, nil
}

// Default returns a Generator over the built-in word lists with the default
// configuration.
func Default() *Generator {
	g, err := New(DefaultConfig())
	if err != nil {
		// The embedded word lists are never empty.
		panic(err)
	}
	return g
}

// Next returns the next name. ok is false only when the sequence cannot
// continue: a word list is empty or a Reroll policy ran out of attempts.
// Use Generate to learn which.
func (g *Generator) Next() (name string, ok bool) {
	name, err := g.Generate()
	return name, err == nil
}

// Generate returns the next name or the reason none could be produced.
// Under a valid configuration only ErrRerollExhausted is possible.
func (g *Generator) Generate() (string, error) {
	if g.length.Kind != Reroll {
		name, err := g.attempt()
		if err != nil {
			return "", err
		}
		if g.length.Kind == Truncate {
			name = truncateRunes(name, g.length.N)
		}
		return name, nil
	}

	for range g.maxRerolls {
		name, err := g.attempt()
		if err != nil {
			return "", err
		}
		if runeLen(name) == g.length.N {
			return name, nil
		}
	}
	return "", fmt.Errorf("no name of length %d after %d attempts: %w", g.length.N, g.maxRerolls, ErrRerollExhausted)
}

// attempt runs one pass of the pipeline: pick, case, suffix.
func (g *Generator) attempt() (string, error) {
	adj, ok := pick(g.adjectives, g.rng)
	if !ok {
		return "", ErrEmptyIterator
	}
	noun, ok := pick(g.nouns, g.rng)
	if !ok {
		return "", ErrEmptyIterator
	}
	return g.naming.apply(g.casing.Apply(adj, noun), g.rng), nil
}

// All returns the sequence of names for use with range. It ends only where
// Next would report !ok.
func (g *Generator) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			name, ok := g.Next()
			if !ok || !yield(name) {
				return
			}
		}
	}
}

// Take returns up to n names; fewer only if the sequence ends early.
func (g *Generator) Take(n int) []string {
	var out []string
	for len(out) < n {
		name, ok := g.Next()
		if !ok {
			break
		}
		out = append(out, name)
	}
	return out
}

// Adjectives returns a copy of the generator's adjective list.
func (g *Generator) Adjectives() []string { return slices.Clone(g.adjectives) }

// Nouns returns a copy of the generator's noun list.
func (g *Generator) Nouns() []string { return slices.Clone(g.nouns) }

func (g *Generator) Naming() Naming { return g.naming }

func (g *Generator) Casing() Casing { return g.casing }

func (g *Generator) Length() Length { return g.length }

// MaxRerolls returns the attempt cap used by the Reroll policy.
func (g *Generator) MaxRerolls() int { return g.maxRerolls }

// Config returns the serializable configuration of g.
func (g *Generator) Config() Config {
	return Config{
		Adjectives: slices.Clone(g.adjectives),
		Nouns:      slices.Clone(g.nouns),
		Naming:     g.naming,
		Casing:     g.casing,
		Length:     g.length,
	}
}
