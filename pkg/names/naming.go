package names

import (
	"fmt"
	"strconv"
)

// MaxDigits is the widest numeric suffix that fits in an int64.
const MaxDigits = 18

// NamingKind selects whether and how a numeric suffix is appended.
type NamingKind int

const (
	namingUnset NamingKind = iota
	// Plain: "adjective-noun"
	Plain
	// Numbered: "adjective-noun{sep}4821"
	Numbered
	// ZeroPaddedNumbered: "adjective-noun{sep}0042" style, always Digits wide
	ZeroPaddedNumbered
)

func (k NamingKind) String() string {
	switch k {
	case Plain:
		return "Plain"
	case Numbered:
		return "Numbered"
	case ZeroPaddedNumbered:
		return "ZeroPaddedNumbered"
	default:
		return fmt.Sprintf("NamingKind(%d)", int(k))
	}
}

// Naming is a naming strategy. Digits and Sep are ignored for Plain.
type Naming struct {
	Kind   NamingKind
	Digits int
	Sep    Separator
}

// PlainNaming appends nothing.
var PlainNaming = Naming{Kind: Plain}

func (n Naming) String() string {
	switch n.Kind {
	case Numbered, ZeroPaddedNumbered:
		return fmt.Sprintf("%s(%d, %q)", n.Kind, n.Digits, n.Sep.String())
	default:
		return n.Kind.String()
	}
}

// NumberedNaming appends sep and a digits-wide number without a leading zero.
func NumberedNaming(digits int, sep Separator) Naming {
	return Naming{Kind: Numbered, Digits: digits, Sep: sep}
}

// ZeroPaddedNaming appends sep and a number zero-padded to digits characters.
func ZeroPaddedNaming(digits int, sep Separator) Naming {
	return Naming{Kind: ZeroPaddedNumbered, Digits: digits, Sep: sep}
}

func (n Naming) validate() error {
	switch n.Kind {
	case Plain:
		return nil
	case Numbered, ZeroPaddedNumbered:
		if !n.Sep.IsSet() {
			return &UninitializedFieldError{Field: "naming.separator"}
		}
		if n.Digits < 1 || n.Digits > MaxDigits {
			return validationErrorf("%s digits must be between 1 and %d, got %d", n.Kind, MaxDigits, n.Digits)
		}
		return nil
	default:
		return &UninitializedFieldError{Field: "naming"}
	}
}

// apply appends the suffix for n to combined, drawing from rng.
func (n Naming) apply(combined string, rng Source) string {
	switch n.Kind {
	case Numbered:
		return combined + n.Sep.String() + strconv.FormatInt(drawDigits(n.Digits, rng), 10)
	case ZeroPaddedNumbered:
		return combined + n.Sep.String() + fmt.Sprintf("%0*d", n.Digits, drawDigits(n.Digits, rng))
	default:
		return combined
	}
}

// drawDigits returns a number uniform in [10^(digits-1), 10^digits - 1].
// digits must already be validated to lie in [1, MaxDigits].
func drawDigits(digits int, rng Source) int64 {
	lo := pow10(digits - 1)
	hi := pow10(digits) - 1
	return lo + rng.Int64N(hi-lo+1)
}

func pow10(n int) int64 {
	v := int64(1)
	for range n {
		v *= 10
	}
	return v
}
