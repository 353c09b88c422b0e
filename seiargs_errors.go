package seiargs

import (
	"errors"
	"fmt"
)

// Sentinel errors for every way a parse can fail. All errors returned by
// Parse match exactly one of these via errors.Is, except value-parser
// failures from custom parsers, which are propagated unchanged.
var (
	// ErrInvalidInput is returned when a value parser's input does not match
	// its kind's grammar (bad boolean word, no matching enum spelling).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSubcmdSpecified is returned when a subcommand schema is reached
	// with no token left to select a variant.
	ErrNoSubcmdSpecified = errors.New("no subcommand specified")

	// ErrUnknownSubcmd is returned when the selector token matches no
	// declared variant.
	ErrUnknownSubcmd = errors.New("unknown subcommand")

	// ErrUnknownArgument is returned when a long-option name or short alias
	// matches no declared field.
	ErrUnknownArgument = errors.New("unknown argument")

	// ErrMissingArgument is returned when a field needed a following value
	// token and none remained, or a non-boolean field appeared mid-bundle.
	ErrMissingArgument = errors.New("missing argument")

	// ErrTooManyArguments is returned when a positional value arrives after
	// all positional slots are already filled.
	ErrTooManyArguments = errors.New("too many arguments")

	// ErrUnsetArguments is returned when the end of input is reached with
	// required named fields or required positional slots unfilled.
	ErrUnsetArguments = errors.New("unset arguments")
)

// parseError carries a sentinel kind plus a contextual message.
type parseError struct {
	kind error
	msg  string
}

func (e *parseError) Error() string {
	return e.msg
}

func (e *parseError) Unwrap() error {
	return e.kind
}

func newParseError(kind error, format string, args ...any) error {
	return &parseError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// ConfigError wraps errors caused by incorrect schema construction.
// These are bugs in the code declaring the schema, not user input errors,
// and are only ever returned at registration time.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

func newConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}
