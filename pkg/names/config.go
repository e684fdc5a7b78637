package names

import "slices"

// Config is the complete, serializable description of a Generator. The
// random source is deliberately absent: it is never part of serialized state.
type Config struct {
	Adjectives []string `json:"adjectives" yaml:"adjectives"`
	Nouns      []string `json:"nouns" yaml:"nouns"`
	Naming     Naming   `json:"naming" yaml:"naming"`
	Casing     Casing   `json:"casing" yaml:"casing"`
	Length     Length   `json:"length" yaml:"length"`
}

// DefaultConfig returns the built-in word lists, plain naming, lowercase
// dash-joined casing and no length policy.
func DefaultConfig() Config {
	return Config{
		Adjectives: Adjectives(),
		Nouns:      Nouns(),
		Naming:     PlainNaming,
		Casing:     DefaultCasing,
		Length:     NoLength,
	}
}

// Validate checks c without building a generator. Empty word lists are
// reported first, then unset fields, then out-of-range values.
func (c Config) Validate() error {
	if len(c.Adjectives) == 0 {
		return ErrAdjectivesEmpty
	}
	if len(c.Nouns) == 0 {
		return ErrNounsEmpty
	}
	if err := c.Naming.validate(); err != nil {
		return err
	}
	if err := c.Casing.validate(); err != nil {
		return err
	}
	return c.Length.validate()
}

func (c Config) clone() Config {
	c.Adjectives = slices.Clone(c.Adjectives)
	c.Nouns = slices.Clone(c.Nouns)
	return c
}

func (c Casing) validate() error {
	if c.Kind == casingUnset {
		return &UninitializedFieldError{Field: "casing"}
	}
	if _, ok := casingKindNames[c.Kind]; !ok {
		return validationErrorf("unknown casing kind %d", int(c.Kind))
	}
	if c.Kind.TakesSeparator() && !c.Sep.IsSet() {
		return &UninitializedFieldError{Field: "casing.separator"}
	}
	return nil
}
