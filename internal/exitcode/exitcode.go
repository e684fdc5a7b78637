package exitcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/protocollar/names/internal/config"
	"github.com/protocollar/names/internal/wordlist"
	"github.com/protocollar/names/pkg/names"
)

const (
	Success         = 0
	GeneralError    = 1
	InvalidArgs     = 2
	ConfigError     = 3
	RerollExhausted = 4
	InteractiveOnly = 5
	WordListError   = 6
	AlreadyExists   = 7
)

// ExitError wraps an error with a semantic exit code and machine-readable code string.
type ExitError struct {
	Err      error
	ExitCode int
	Code     string
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// New creates an ExitError with the given code, exit code, and message.
func New(code string, exitCode int, msg string) *ExitError {
	return &ExitError{
		Err:      errors.New(msg),
		ExitCode: exitCode,
		Code:     code,
	}
}

// Wrap creates an ExitError wrapping an existing error.
func Wrap(code string, exitCode int, err error) *ExitError {
	return &ExitError{
		Err:      err,
		ExitCode: exitCode,
		Code:     code,
	}
}

// ClassifyError returns (code, exitCode) for err. An ExitError anywhere in
// the chain wins; otherwise the known error types are matched, then cobra's
// usage messages.
func ClassifyError(err error) (string, int) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, exitErr.ExitCode
	}

	var uninit *names.UninitializedFieldError
	var invalid *names.ValidationError
	var fileErr *wordlist.FileError

	switch {
	case errors.Is(err, names.ErrRerollExhausted):
		return "reroll_exhausted", RerollExhausted
	case errors.Is(err, names.ErrAdjectivesEmpty), errors.Is(err, names.ErrNounsEmpty):
		return "empty_word_list", ConfigError
	case errors.As(err, &uninit):
		return "uninitialized_field", ConfigError
	case errors.As(err, &invalid):
		return "invalid_config", ConfigError
	case errors.As(err, &fileErr):
		return "word_list_error", WordListError
	case errors.Is(err, config.ErrExists):
		return "already_exists", AlreadyExists
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "cannot be used with --json"),
		strings.Contains(msg, "requires a terminal"):
		return "interactive_only", InteractiveOnly
	case strings.Contains(msg, "unknown flag"),
		strings.Contains(msg, "unknown shorthand flag"),
		strings.Contains(msg, "unknown command"),
		strings.Contains(msg, "invalid argument"),
		strings.Contains(msg, "flag needs an argument"),
		strings.Contains(msg, "accepts at most"),
		strings.Contains(msg, "if any flags in the group"):
		return "invalid_args", InvalidArgs
	default:
		return "error", GeneralError
	}
}

// Errorf is New with a formatted message.
func Errorf(code string, exitCode int, format string, args ...any) *ExitError {
	return Wrap(code, exitCode, fmt.Errorf(format, args...))
}
