package names

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CasingKind selects how the chosen words are letter-cased and joined.
type CasingKind int

const (
	casingUnset CasingKind = iota
	// Lowercase: "adjective-noun"
	Lowercase
	// Uppercase: "ADJECTIVE-NOUN"
	Uppercase
	// Capitalize: "Adjective-Noun"
	Capitalize
	// CapitalizeFirst: "Adjective-noun"
	CapitalizeFirst
	// CapitalizeLast: "adjective-Noun"
	CapitalizeLast
	// SnakeCase: "adjective_noun"
	SnakeCase
	// ScreamingSnakeCase: "ADJECTIVE_NOUN"
	ScreamingSnakeCase
	// CamelCase: "adjectiveNoun"
	CamelCase
	// PascalCase: "AdjectiveNoun"
	PascalCase
	// KebabCase: "adjective-noun"
	KebabCase
	// ScreamingKebabCase: "ADJECTIVE-NOUN"
	ScreamingKebabCase
)

var casingKindNames = map[CasingKind]string{
	Lowercase:          "Lowercase",
	Uppercase:          "Uppercase",
	Capitalize:         "Capitalize",
	CapitalizeFirst:    "CapitalizeFirst",
	CapitalizeLast:     "CapitalizeLast",
	SnakeCase:          "SnakeCase",
	ScreamingSnakeCase: "ScreamingSnakeCase",
	CamelCase:          "CamelCase",
	PascalCase:         "PascalCase",
	KebabCase:          "KebabCase",
	ScreamingKebabCase: "ScreamingKebabCase",
}

func (k CasingKind) String() string {
	if s, ok := casingKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("CasingKind(%d)", int(k))
}

// TakesSeparator reports whether the kind carries its own separator.
// The remaining kinds have a fixed one.
func (k CasingKind) TakesSeparator() bool {
	switch k {
	case Lowercase, Uppercase, Capitalize, CapitalizeFirst, CapitalizeLast:
		return true
	}
	return false
}

// Casing is a casing style. Sep is only consulted for kinds where
// TakesSeparator is true.
type Casing struct {
	Kind CasingKind
	Sep  Separator
}

// DefaultCasing is Lowercase joined with a dash.
var DefaultCasing = Casing{Kind: Lowercase, Sep: Dash}

// String renders c as Lowercase("-") or SnakeCase.
func (c Casing) String() string {
	if c.Kind.TakesSeparator() {
		return fmt.Sprintf("%s(%q)", c.Kind, c.Sep.String())
	}
	return c.Kind.String()
}

// CasingKinds lists every casing kind in declaration order.
func CasingKinds() []CasingKind {
	return []CasingKind{
		Lowercase, Uppercase, Capitalize, CapitalizeFirst, CapitalizeLast,
		SnakeCase, ScreamingSnakeCase, CamelCase, PascalCase,
		KebabCase, ScreamingKebabCase,
	}
}

// casingAliases maps normalized spellings (lowercased, with '-', '_' and
// spaces removed) to kinds.
var casingAliases = map[string]CasingKind{
	"lowercase":          Lowercase,
	"lower":              Lowercase,
	"uppercase":          Uppercase,
	"upper":              Uppercase,
	"capitalize":         Capitalize,
	"capitalizefirst":    CapitalizeFirst,
	"capitalizelast":     CapitalizeLast,
	"snake":              SnakeCase,
	"snakecase":          SnakeCase,
	"screamingsnake":     ScreamingSnakeCase,
	"screamingsnakecase": ScreamingSnakeCase,
	"camel":              CamelCase,
	"camelcase":          CamelCase,
	"pascal":             PascalCase,
	"pascalcase":         PascalCase,
	"kebab":              KebabCase,
	"kebabcase":          KebabCase,
	"screamingkebab":     ScreamingKebabCase,
	"screamingkebabcase": ScreamingKebabCase,
}

// ParseCasing resolves a casing name such as "snake", "capitalize-first" or
// "PascalCase". sep is used only by kinds that take a separator.
func ParseCasing(name string, sep Separator) (Casing, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	kind, ok := casingAliases[key]
	if !ok {
		return Casing{}, validationErrorf("unknown casing %q", name)
	}
	c := Casing{Kind: kind}
	if kind.TakesSeparator() {
		c.Sep = sep
	}
	return c, nil
}

// Separator returns the literal separator this casing places between words.
func (c Casing) Separator() string {
	switch c.Kind {
	case Lowercase, Uppercase, Capitalize, CapitalizeFirst, CapitalizeLast:
		return c.Sep.String()
	case SnakeCase, ScreamingSnakeCase:
		return "_"
	case KebabCase, ScreamingKebabCase:
		return "-"
	default:
		return ""
	}
}

// Apply cases and joins words. It is pure and consumes no randomness.
func (c Casing) Apply(words ...string) string {
	switch c.Kind {
	case Lowercase:
		return lower(strings.Join(words, c.Sep.String()))
	case Uppercase:
		return upper(strings.Join(words, c.Sep.String()))
	case Capitalize:
		return joinEach(words, c.Sep.String(), func(int, string) bool { return true })
	case CapitalizeFirst:
		return joinEach(words, c.Sep.String(), func(i int, _ string) bool { return i == 0 })
	case CapitalizeLast:
		return joinEach(words, c.Sep.String(), func(i int, _ string) bool { return i == len(words)-1 })
	case SnakeCase:
		return lower(strings.Join(words, "_"))
	case ScreamingSnakeCase:
		return upper(strings.Join(words, "_"))
	case CamelCase:
		return joinEach(words, "", func(i int, _ string) bool { return i > 0 })
	case PascalCase:
		return Casing{Kind: Capitalize, Sep: NoSeparator}.Apply(words...)
	case KebabCase:
		return lower(strings.Join(words, "-"))
	case ScreamingKebabCase:
		return upper(strings.Join(words, "-"))
	default:
		return strings.Join(words, c.Sep.String())
	}
}

// joinEach capitalizes the words selected by capital, lowercases the rest
// and joins them with sep.
func joinEach(words []string, sep string, capital func(i int, w string) bool) string {
	out := make([]string, len(words))
	for i, w := range words {
		if capital(i, w) {
			out[i] = capitalizeWord(w)
		} else {
			out[i] = lower(w)
		}
	}
	return strings.Join(out, sep)
}

// capitalizeWord uppercases the first character and lowercases the rest.
// The uppercase mapping of one character may be longer than one (ß -> SS).
func capitalizeWord(w string) string {
	if w == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(w)
	return upper(w[:size]) + lower(w[size:])
}

// Casers keep per-call state, so a fresh one is built each time.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
