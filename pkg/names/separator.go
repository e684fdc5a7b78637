package names

import "fmt"

type separatorKind int

const (
	sepUnset separatorKind = iota
	sepDash
	sepUnderscore
	sepCustom
	sepNone
)

// Separator is the literal text placed between joined words, or between a
// name and its numeric suffix. The zero value is unset.
type Separator struct {
	kind   separatorKind
	custom string
}

var (
	// Dash renders as "-".
	Dash = Separator{kind: sepDash}
	// Underscore renders as "_".
	Underscore = Separator{kind: sepUnderscore}
	// NoSeparator renders as the empty string.
	NoSeparator = Separator{kind: sepNone}
)

// CustomSeparator returns a separator rendering as s.
// Use ParseSeparator to normalize "-", "_" and "" to their named forms.
func CustomSeparator(s string) Separator {
	return Separator{kind: sepCustom, custom: s}
}

// ParseSeparator maps "-" to Dash, "_" to Underscore, "" to NoSeparator and
// anything else to a custom separator. It never fails.
func ParseSeparator(s string) Separator {
	switch s {
	case "-":
		return Dash
	case "_":
		return Underscore
	case "":
		return NoSeparator
	default:
		return CustomSeparator(s)
	}
}

// IsSet reports whether s is anything other than the zero value.
func (s Separator) IsSet() bool {
	return s.kind != sepUnset
}

// IsCustom reports whether s carries custom text.
func (s Separator) IsCustom() bool {
	return s.kind == sepCustom
}

// String returns the literal separator text.
func (s Separator) String() string {
	switch s.kind {
	case sepDash:
		return "-"
	case sepUnderscore:
		return "_"
	case sepCustom:
		return s.custom
	default:
		return ""
	}
}

// GoString is used by %#v so test failures show the variant, not just the text.
func (s Separator) GoString() string {
	switch s.kind {
	case sepDash:
		return "names.Dash"
	case sepUnderscore:
		return "names.Underscore"
	case sepCustom:
		return fmt.Sprintf("names.CustomSeparator(%q)", s.custom)
	case sepNone:
		return "names.NoSeparator"
	default:
		return "names.Separator{}"
	}
}
