package names

import (
	"errors"
	"fmt"
)

var (
	// ErrAdjectivesEmpty is returned when a generator is configured with no adjectives.
	ErrAdjectivesEmpty = errors.New("adjectives must not be empty")
	// ErrNounsEmpty is returned when a generator is configured with no nouns.
	ErrNounsEmpty = errors.New("nouns must not be empty")
	// ErrEmptyIterator is returned by Generate when a word list is empty at call time.
	ErrEmptyIterator = errors.New("the iterator was empty")
	// ErrRerollExhausted is returned by Generate when a Reroll length policy
	// could not produce a name of the target length within the reroll cap.
	ErrRerollExhausted = errors.New("reroll attempts exhausted")
)

// UninitializedFieldError reports a configuration field that was explicitly
// left unset and has no default.
type UninitializedFieldError struct {
	Field string
}

func (e *UninitializedFieldError) Error() string {
	return fmt.Sprintf("uninitialized field: %s", e.Field)
}

// ValidationError is a catch-all for configuration that is structurally
// complete but semantically invalid.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Msg)
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is one of the build-time configuration
// errors: an empty word list, an uninitialized field, or a validation failure.
func IsConfigError(err error) bool {
	if errors.Is(err, ErrAdjectivesEmpty) || errors.Is(err, ErrNounsEmpty) {
		return true
	}
	var uf *UninitializedFieldError
	var ve *ValidationError
	return errors.As(err, &uf) || errors.As(err, &ve)
}
