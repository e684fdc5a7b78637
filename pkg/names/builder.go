package names

import "slices"

// Builder is a fluent front end to Config and New. Unset fields keep their
// defaults; every setter returns the builder for chaining.
//
//	g, err := names.NewBuilder().
//		Naming(names.NumberedNaming(4, names.Dash)).
//		Build()
type Builder struct {
	cfg   Config
	opts  []Option
	hooks []func(Config) error
}

// NewBuilder starts from DefaultConfig.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// Adjectives replaces the adjective list.
func (b *Builder) Adjectives(words ...string) *Builder {
	b.cfg.Adjectives = slices.Clone(words)
	if b.cfg.Adjectives == nil {
		b.cfg.Adjectives = []string{}
	}
	return b
}

// Nouns replaces the noun list.
func (b *Builder) Nouns(words ...string) *Builder {
	b.cfg.Nouns = slices.Clone(words)
	if b.cfg.Nouns == nil {
		b.cfg.Nouns = []string{}
	}
	return b
}

func (b *Builder) Naming(n Naming) *Builder {
	b.cfg.Naming = n
	return b
}

func (b *Builder) Casing(c Casing) *Builder {
	b.cfg.Casing = c
	return b
}

func (b *Builder) Length(l Length) *Builder {
	b.cfg.Length = l
	return b
}

// Config replaces every serializable field at once.
func (b *Builder) Config(cfg Config) *Builder {
	b.cfg = cfg.clone()
	return b
}

// Source sets the random source. A nil source fails the build with an
// UninitializedFieldError for "rng".
func (b *Builder) Source(src Source) *Builder {
	b.opts = append(b.opts, WithSource(src))
	return b
}

// MaxRerolls caps the attempts made by the Reroll length policy.
func (b *Builder) MaxRerolls(n int) *Builder {
	b.opts = append(b.opts, WithMaxRerolls(n))
	return b
}

// Validate adds a custom check run after the built-in validation. Errors
// that are not already configuration errors are wrapped in ValidationError.
func (b *Builder) Validate(fn func(Config) error) *Builder {
	b.hooks = append(b.hooks, fn)
	return b
}

// Build validates the configuration and returns a ready Generator.
func (b *Builder) Build() (*Generator, error) {
	return build(b.cfg, b.hooks, b.opts)
}
