package names

import (
	"fmt"
	"unicode/utf8"
)

// DefaultMaxRerolls bounds the Reroll length policy.
const DefaultMaxRerolls = 10000

// LengthKind selects the length post-processing rule.
type LengthKind int

const (
	lengthUnset LengthKind = iota
	// LengthNone passes names through unchanged.
	LengthNone
	// Truncate cuts names to at most N characters.
	Truncate
	// Reroll regenerates names until one is exactly N characters long.
	Reroll
)

func (k LengthKind) String() string {
	switch k {
	case LengthNone:
		return "None"
	case Truncate:
		return "Truncate"
	case Reroll:
		return "Reroll"
	default:
		return fmt.Sprintf("LengthKind(%d)", int(k))
	}
}

// Length is a length policy. Lengths count characters (runes), not bytes.
type Length struct {
	Kind LengthKind
	N    int
}

// NoLength leaves names untouched.
var NoLength = Length{Kind: LengthNone}

func (l Length) String() string {
	switch l.Kind {
	case Truncate, Reroll:
		return fmt.Sprintf("%s(%d)", l.Kind, l.N)
	default:
		return l.Kind.String()
	}
}

// TruncateTo keeps at most n characters.
func TruncateTo(n int) Length {
	return Length{Kind: Truncate, N: n}
}

// RerollTo regenerates until a name has exactly n characters.
func RerollTo(n int) Length {
	return Length{Kind: Reroll, N: n}
}

func (l Length) validate() error {
	switch l.Kind {
	case LengthNone:
		return nil
	case Truncate, Reroll:
		if l.N < 0 {
			return validationErrorf("%s length must not be negative, got %d", l.Kind, l.N)
		}
		return nil
	default:
		return &UninitializedFieldError{Field: "length"}
	}
}

// truncateRunes keeps the first n runes of s. It never splits a UTF-8 sequence.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
