package seiargs

import (
	"fmt"
	"strings"
)

type BaseField struct {
	Name       string // Primary identifier, matched by --name when named
	Short      string // Single alphabetic character alias (e.g. "v" for -v)
	Usage      string // Help text shown in dump output
	Positional bool   // Filled by position instead of by --name/-short

	kind string // value kind label for dump output
}

// Field describes one typed field of a Record: its identity, how to convert
// a raw token into a T, and the default used when the field is left unset.
type Field[T any] struct {
	BaseField
	Default *T // Value applied when the field is not supplied
	Value   *T // Destination written during parsing

	parser ParseFunc[T]
	isBool bool
}

// NewField creates a field for an arbitrary value kind with a caller-supplied
// parser. The typed constructors below cover the built-in kinds.
func NewField[T any](name string, parser ParseFunc[T]) *Field[T] {
	var zero T
	return &Field[T]{
		BaseField: BaseField{Name: name, kind: fmt.Sprintf("%T", zero)},
		parser:    parser,
	}
}

func NewInt(name string) *Field[int] {
	f := NewField(name, IntParser)
	f.kind = "int"
	return f
}

func NewInt64(name string) *Field[int64] {
	f := NewField(name, Int64Parser)
	f.kind = "int64"
	return f
}

func NewUint(name string) *Field[uint] {
	f := NewField(name, UintParser)
	f.kind = "uint"
	return f
}

func NewUint64(name string) *Field[uint64] {
	f := NewField(name, Uint64Parser)
	f.kind = "uint64"
	return f
}

func NewFloat64(name string) *Field[float64] {
	f := NewField(name, Float64Parser)
	f.kind = "float64"
	return f
}

func NewString(name string) *Field[string] {
	f := NewField(name, StringParser)
	f.kind = "string"
	return f
}

func NewBool(name string) *Field[bool] {
	f := NewField(name, BoolParser)
	f.kind = "bool"
	f.isBool = true
	return f
}

func NewEnum(name string, allowed ...string) *Field[string] {
	f := NewField(name, EnumParser(allowed...))
	f.kind = "enum"
	return f
}

func (f *Field[T]) SetShort(s string) *Field[T] {
	f.Short = s
	return f
}

func (f *Field[T]) SetUsage(u string) *Field[T] {
	f.Usage = u
	return f
}

func (f *Field[T]) SetDefault(v T) *Field[T] {
	f.Default = &v
	return f
}

func (f *Field[T]) SetPositional(b bool) *Field[T] {
	f.Positional = b
	return f
}

// SetParser overrides the field's parser, replacing any kind default.
func (f *Field[T]) SetParser(fn ParseFunc[T]) *Field[T] {
	f.parser = fn
	return f
}

// Register adds the field to rec and returns the destination that parsing
// will fill. The builder value itself is copied, so it can be reused to
// register the same shape on several records.
func (f *Field[T]) Register(rec *Record) (*T, error) {
	ptr := new(T)
	return ptr, f.RegisterWithPtr(rec, ptr)
}

func (f *Field[T]) RegisterWithPtr(rec *Record, ptr *T) error {
	if f.Name == "" {
		return newConfigError("field name cannot be empty")
	}
	if f.Name[0] == '-' {
		return newConfigError("field name %q cannot start with '-'", f.Name)
	}
	if strings.Contains(f.Name, "=") {
		return newConfigError("field name %q cannot contain '='", f.Name)
	}
	if f.parser == nil {
		return newConfigError("field %q has no parser", f.Name)
	}
	if f.Positional && f.Short != "" {
		return newConfigError("positional field %q cannot have a short alias", f.Name)
	}
	// Boolean named fields toggle relative to their default, so a default
	// is mandatory.
	if f.isBool && !f.Positional && f.Default == nil {
		return newConfigError("bool field %q requires a default", f.Name)
	}

	// Create copy and set value pointer
	field := *f
	field.Value = ptr

	return rec.addField(&field)
}

// fieldInfo is the engine's untyped view of a registered Field[T].
type fieldInfo interface {
	base() *BaseField
	hasDefault() bool
	applyDefault()
	setFromToken(tok string) error
	boolish() bool
	toggle()
	defaultString() string
}

func (f *Field[T]) base() *BaseField {
	return &f.BaseField
}

func (f *Field[T]) hasDefault() bool {
	return f.Default != nil
}

func (f *Field[T]) applyDefault() {
	if f.Default != nil {
		*f.Value = *f.Default
	}
}

func (f *Field[T]) setFromToken(tok string) error {
	v, err := f.parser(tok)
	if err != nil {
		return err
	}
	*f.Value = v
	return nil
}

func (f *Field[T]) boolish() bool {
	return f.isBool
}

func (f *Field[T]) toggle() {
	if b, ok := any(f.Value).(*bool); ok {
		*b = !*b
	}
}

func (f *Field[T]) defaultString() string {
	if f.Default == nil {
		return ""
	}
	return fmt.Sprintf("%v", *f.Default)
}
