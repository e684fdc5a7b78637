package names

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sum types are encoded in externally tagged form: a bare variant name when
// the variant carries no data ("SnakeCase", "Plain", "None"), otherwise a
// single-key object mapping the name to its payload
// ({"Lowercase": "-"}, {"Numbered": [4, "-"]}, {"Truncate": 20}).

type variant struct {
	name    string
	payload any // nil for variants without data
}

func (v variant) json() ([]byte, error) {
	if v.payload == nil {
		return json.Marshal(v.name)
	}
	return json.Marshal(map[string]any{v.name: v.payload})
}

func (v variant) yaml() (any, error) {
	if v.payload == nil {
		return v.name, nil
	}
	return map[string]any{v.name: v.payload}, nil
}

// rawVariant is a decoded tag whose payload has not been interpreted yet.
type rawVariant struct {
	name       string
	hasPayload bool
	decode     func(target any) error
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func parseJSONVariant(data []byte) (rawVariant, error) {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		return rawVariant{name: name}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return rawVariant{}, fmt.Errorf("expected a variant name or a single-key object: %w", err)
	}
	if len(obj) != 1 {
		return rawVariant{}, fmt.Errorf("expected exactly one variant key, got %d", len(obj))
	}
	var rv rawVariant
	for k, raw := range obj {
		rv = rawVariant{
			name:       k,
			hasPayload: true,
			decode:     func(target any) error { return json.Unmarshal(raw, target) },
		}
	}
	return rv, nil
}

func parseYAMLVariant(n *yaml.Node) (rawVariant, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return rawVariant{name: n.Value}, nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return rawVariant{}, fmt.Errorf("line %d: expected exactly one variant key, got %d", n.Line, len(n.Content)/2)
		}
		payload := n.Content[1]
		return rawVariant{
			name:       n.Content[0].Value,
			hasPayload: true,
			decode:     payload.Decode,
		}, nil
	default:
		return rawVariant{}, fmt.Errorf("line %d: expected a variant name or a single-key mapping", n.Line)
	}
}

// Separator

func (s Separator) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Separator) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("separator: %w", err)
	}
	*s = ParseSeparator(str)
	return nil
}

func (s Separator) MarshalYAML() (any, error) {
	return s.String(), nil
}

func (s *Separator) UnmarshalYAML(n *yaml.Node) error {
	var str string
	if err := n.Decode(&str); err != nil {
		return fmt.Errorf("separator: %w", err)
	}
	*s = ParseSeparator(str)
	return nil
}

// Casing

var casingKindByName = func() map[string]CasingKind {
	m := make(map[string]CasingKind, len(casingKindNames))
	for k, name := range casingKindNames {
		m[name] = k
	}
	return m
}()

func (c Casing) variant() (variant, error) {
	if err := c.validate(); err != nil {
		return variant{}, err
	}
	if c.Kind.TakesSeparator() {
		return variant{name: c.Kind.String(), payload: c.Sep}, nil
	}
	return variant{name: c.Kind.String()}, nil
}

func (c *Casing) fromVariant(rv rawVariant) error {
	kind, ok := casingKindByName[rv.name]
	if !ok {
		return fmt.Errorf("unknown casing %q", rv.name)
	}
	if !kind.TakesSeparator() {
		if rv.hasPayload {
			return fmt.Errorf("casing %s takes no separator", kind)
		}
		*c = Casing{Kind: kind}
		return nil
	}
	if !rv.hasPayload {
		return fmt.Errorf("casing %s requires a separator", kind)
	}
	var sep Separator
	if err := rv.decode(&sep); err != nil {
		return fmt.Errorf("casing %s: %w", kind, err)
	}
	*c = Casing{Kind: kind, Sep: sep}
	return nil
}

func (c Casing) MarshalJSON() ([]byte, error) {
	v, err := c.variant()
	if err != nil {
		return nil, err
	}
	return v.json()
}

func (c *Casing) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	rv, err := parseJSONVariant(data)
	if err != nil {
		return fmt.Errorf("casing: %w", err)
	}
	return c.fromVariant(rv)
}

func (c Casing) MarshalYAML() (any, error) {
	v, err := c.variant()
	if err != nil {
		return nil, err
	}
	return v.yaml()
}

func (c *Casing) UnmarshalYAML(n *yaml.Node) error {
	rv, err := parseYAMLVariant(n)
	if err != nil {
		return fmt.Errorf("casing: %w", err)
	}
	return c.fromVariant(rv)
}

// Naming

// numberedPayload is the [digits, separator] tuple of the numbered variants.
type numberedPayload struct {
	Digits int
	Sep    Separator
}

func (p numberedPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Digits, p.Sep})
}

func (p *numberedPayload) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("expected [digits, separator], got %d elements", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &p.Digits); err != nil {
		return fmt.Errorf("digits: %w", err)
	}
	return json.Unmarshal(tuple[1], &p.Sep)
}

func (p numberedPayload) MarshalYAML() (any, error) {
	return []any{p.Digits, p.Sep}, nil
}

func (p *numberedPayload) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode || len(n.Content) != 2 {
		return fmt.Errorf("line %d: expected [digits, separator]", n.Line)
	}
	if err := n.Content[0].Decode(&p.Digits); err != nil {
		return fmt.Errorf("digits: %w", err)
	}
	return n.Content[1].Decode(&p.Sep)
}

func (n Naming) variant() (variant, error) {
	switch n.Kind {
	case Plain:
		return variant{name: n.Kind.String()}, nil
	case Numbered, ZeroPaddedNumbered:
		return variant{name: n.Kind.String(), payload: numberedPayload{Digits: n.Digits, Sep: n.Sep}}, nil
	default:
		return variant{}, &UninitializedFieldError{Field: "naming"}
	}
}

func (n *Naming) fromVariant(rv rawVariant) error {
	switch rv.name {
	case "Plain":
		if rv.hasPayload {
			return errors.New("naming Plain takes no payload")
		}
		*n = PlainNaming
		return nil
	case "Numbered", "ZeroPaddedNumbered":
		if !rv.hasPayload {
			return fmt.Errorf("naming %s requires [digits, separator]", rv.name)
		}
		var p numberedPayload
		if err := rv.decode(&p); err != nil {
			return fmt.Errorf("naming %s: %w", rv.name, err)
		}
		kind := Numbered
		if rv.name == "ZeroPaddedNumbered" {
			kind = ZeroPaddedNumbered
		}
		*n = Naming{Kind: kind, Digits: p.Digits, Sep: p.Sep}
		return nil
	default:
		return fmt.Errorf("unknown naming %q", rv.name)
	}
}

func (n Naming) MarshalJSON() ([]byte, error) {
	v, err := n.variant()
	if err != nil {
		return nil, err
	}
	return v.json()
}

func (n *Naming) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	rv, err := parseJSONVariant(data)
	if err != nil {
		return fmt.Errorf("naming: %w", err)
	}
	return n.fromVariant(rv)
}

func (n Naming) MarshalYAML() (any, error) {
	v, err := n.variant()
	if err != nil {
		return nil, err
	}
	return v.yaml()
}

func (n *Naming) UnmarshalYAML(node *yaml.Node) error {
	rv, err := parseYAMLVariant(node)
	if err != nil {
		return fmt.Errorf("naming: %w", err)
	}
	return n.fromVariant(rv)
}

// Length

func (l Length) variant() (variant, error) {
	switch l.Kind {
	case LengthNone:
		return variant{name: l.Kind.String()}, nil
	case Truncate, Reroll:
		return variant{name: l.Kind.String(), payload: l.N}, nil
	default:
		return variant{}, &UninitializedFieldError{Field: "length"}
	}
}

func (l *Length) fromVariant(rv rawVariant) error {
	var kind LengthKind
	switch rv.name {
	case "None":
		if rv.hasPayload {
			return errors.New("length None takes no payload")
		}
		*l = NoLength
		return nil
	case "Truncate":
		kind = Truncate
	case "Reroll":
		kind = Reroll
	default:
		return fmt.Errorf("unknown length %q", rv.name)
	}
	if !rv.hasPayload {
		return fmt.Errorf("length %s requires a target length", kind)
	}
	var n int
	if err := rv.decode(&n); err != nil {
		return fmt.Errorf("length %s: %w", kind, err)
	}
	*l = Length{Kind: kind, N: n}
	return nil
}

func (l Length) MarshalJSON() ([]byte, error) {
	v, err := l.variant()
	if err != nil {
		return nil, err
	}
	return v.json()
}

func (l *Length) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	rv, err := parseJSONVariant(data)
	if err != nil {
		return fmt.Errorf("length: %w", err)
	}
	return l.fromVariant(rv)
}

func (l Length) MarshalYAML() (any, error) {
	v, err := l.variant()
	if err != nil {
		return nil, err
	}
	return v.yaml()
}

func (l *Length) UnmarshalYAML(n *yaml.Node) error {
	rv, err := parseYAMLVariant(n)
	if err != nil {
		return fmt.Errorf("length: %w", err)
	}
	return l.fromVariant(rv)
}

// Config and Generator. Keys missing from the input keep their defaults.

// configFields has Config's fields and tags but none of its methods, so
// decoding into it does not recurse.
type configFields Config

func (c *Config) UnmarshalJSON(data []byte) error {
	fields := configFields(DefaultConfig())
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*c = Config(fields)
	return nil
}

func (c *Config) UnmarshalYAML(n *yaml.Node) error {
	fields := configFields(DefaultConfig())
	if err := n.Decode(&fields); err != nil {
		return err
	}
	*c = Config(fields)
	return nil
}

// MarshalJSON encodes the generator's Config. The random source is not
// encoded.
func (g *Generator) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Config())
}

// UnmarshalJSON decodes a Config, validates it and reinitializes g with a
// fresh OS-seeded source.
func (g *Generator) UnmarshalJSON(data []byte) error {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	return g.reset(cfg)
}

func (g *Generator) MarshalYAML() (any, error) {
	return g.Config(), nil
}

func (g *Generator) UnmarshalYAML(n *yaml.Node) error {
	var cfg Config
	if err := n.Decode(&cfg); err != nil {
		return err
	}
	return g.reset(cfg)
}

func (g *Generator) reset(cfg Config) error {
	ng, err := New(cfg)
	if err != nil {
		return err
	}
	*g = *ng
	return nil
}
