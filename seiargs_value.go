package seiargs

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFunc converts a single raw token into a typed value. A field's
// ParseFunc may be overridden via SetParser to add custom validation or
// formats; errors it returns are propagated to the caller unchanged.
type ParseFunc[T any] func(string) (T, error)

func IntParser(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return int(v), nil
}

func Int64Parser(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return v, nil
}

func UintParser(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("invalid unsigned integer %q: %w", s, err)
	}
	return uint(v), nil
}

func Uint64Parser(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid unsigned integer %q: %w", s, err)
	}
	return v, nil
}

func Float64Parser(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float %q: %w", s, err)
	}
	return v, nil
}

// StringParser is the identity parser. It never fails.
func StringParser(s string) (string, error) {
	return s, nil
}

// BoolParser accepts exactly the case-sensitive spellings
// true/false/yes/no/y/n/1/0.
func BoolParser(s string) (bool, error) {
	switch s {
	case "true", "yes", "y", "1":
		return true, nil
	case "false", "no", "n", "0":
		return false, nil
	}
	return false, newParseError(ErrInvalidInput,
		"invalid bool value %q (expected true/false/yes/no/y/n/1/0)", s)
}

// EnumParser returns a parser matching its input case-sensitively against
// the allowed spellings.
func EnumParser(allowed ...string) ParseFunc[string] {
	return func(s string) (string, error) {
		for _, a := range allowed {
			if s == a {
				return s, nil
			}
		}
		return "", newParseError(ErrInvalidInput,
			"invalid value %q (valid values: %s)", s, strings.Join(allowed, ", "))
	}
}
