// Package seiargs is a schema-driven command-line argument parser. A caller
// declares the expected shape of a program's arguments — positional values,
// named flags with optional single-character shorts, or nested subcommands —
// and hands Parse an already-materialized argument vector (program name
// excluded). Parsing is a single left-to-right pass with no backtracking;
// it fills the typed destinations returned at registration, applies
// defaults, and fails fast with one error from the closed taxonomy in
// seiargs_errors.go.
package seiargs

import "strings"

// Schema is one parseable unit: a Record of fields, a Subcmds variant set,
// or a Leaf scalar. The set of forms is closed.
type Schema interface {
	// Parse consumes args (program name excluded) and returns the untouched
	// tail following a "--" terminator, nil when none was present.
	Parse(args []string) ([]string, error)

	dump(sb *strings.Builder, depth int)
}

var (
	_ Schema = (*Record)(nil)
	_ Schema = (*Subcmds)(nil)
	_ Schema = (*Leaf[int])(nil)
)
