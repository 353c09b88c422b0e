package seiargs

import (
	"fmt"
	"sync"
)

// Leaf describes a schema that is a single scalar value with one parser,
// typically the payload of a subcommand variant. Parse calls serialize on
// an internal mutex; Value reflects the most recently completed parse.
type Leaf[T any] struct {
	mu     sync.Mutex
	name   string
	kind   string
	parser ParseFunc[T]
	def    *T

	Value *T // Destination written during parsing
}

func NewLeaf[T any](name string, parser ParseFunc[T]) *Leaf[T] {
	var zero T
	return &Leaf[T]{
		name:   name,
		kind:   fmt.Sprintf("%T", zero),
		parser: parser,
		Value:  new(T),
	}
}

// SetDefault makes the leaf optional: with no token left, the default is
// used instead of failing.
func (l *Leaf[T]) SetDefault(v T) *Leaf[T] {
	l.def = &v
	return l
}

func (l *Leaf[T]) Get() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return *l.Value
}

// Parse consumes exactly one token and runs the parser on it. With no token
// left it falls back to the declared default, if any. A single trailing
// token beyond the value is rejected unless it opens a "--" tail.
func (l *Leaf[T]) Parse(args []string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(args) == 0 || args[0] == "--" {
		if l.def == nil {
			return nil, newParseError(ErrMissingArgument, "%s requires a value", l.name)
		}
		*l.Value = *l.def
		if len(args) > 0 {
			return args[1:], nil
		}
		return nil, nil
	}

	v, err := l.parser(args[0])
	if err != nil {
		return nil, err
	}
	*l.Value = v

	if len(args) > 1 {
		if args[1] == "--" {
			return args[2:], nil
		}
		return nil, newParseError(ErrTooManyArguments,
			"too many arguments, unused: %q", args[1])
	}
	return nil, nil
}
