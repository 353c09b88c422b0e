package seiargs

import "sync"

// Subcmds describes a closed set of named variants, each mapping to its own
// child schema. Exactly one variant is matched per parse. Parse calls
// serialize on an internal mutex; Selected and the invoked markers reflect
// the most recently completed parse.
type Subcmds struct {
	mu       sync.Mutex
	name     string
	variants map[string]Schema
	order    []string
	used     map[string]*bool
	selected string
}

func NewSubcmds(name string) *Subcmds {
	return &Subcmds{
		name:     name,
		variants: make(map[string]Schema),
		used:     make(map[string]*bool),
	}
}

// Register adds a variant and returns a marker that reports, after parsing,
// whether this variant was the one invoked.
func (s *Subcmds) Register(name string, child Schema) (*bool, error) {
	if name == "" {
		return nil, newConfigError("subcommand name cannot be empty")
	}
	if child == nil {
		return nil, newConfigError("subcommand %q has no schema", name)
	}
	if _, exists := s.variants[name]; exists {
		return nil, newConfigError("subcommand %q already defined", name)
	}
	s.variants[name] = child
	s.order = append(s.order, name)
	u := new(bool)
	s.used[name] = u
	return u, nil
}

// Selected returns the variant name matched by the last Parse, or "" if
// none has been matched yet.
func (s *Subcmds) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Parse reads exactly one token as the variant selector, then hands the
// remaining tokens to the matched variant's schema.
func (s *Subcmds) Parse(args []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = ""
	for _, u := range s.used {
		*u = false
	}

	if len(args) == 0 || args[0] == "--" {
		return nil, newParseError(ErrNoSubcmdSpecified, "%s: no subcommand specified", s.name)
	}
	sel := args[0]
	child, exists := s.variants[sel]
	if !exists {
		return nil, newParseError(ErrUnknownSubcmd, "unknown subcommand: %s", sel)
	}
	*s.used[sel] = true
	s.selected = sel
	return child.Parse(args[1:])
}
