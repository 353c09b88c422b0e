package seiargs

import "sync"

// Record describes one parseable unit as two groups of typed fields: an
// ordered positional group and a named group addressed by --name or short
// alias. The schema is immutable once registration is done. Parse calls
// serialize on an internal mutex, so a Record may be shared across
// goroutines; the registration-returned destinations reflect the most
// recently completed parse.
type Record struct {
	mu          sync.Mutex
	name        string
	description string
	fields      map[string]fieldInfo
	positional  []string          // positional field names, declaration order
	named       []string          // named field names, declaration order
	shortToName map[string]string // short alias -> full name mapping
}

func NewRecord(name string) *Record {
	return &Record{
		name:        name,
		fields:      make(map[string]fieldInfo),
		positional:  []string{},
		named:       []string{},
		shortToName: make(map[string]string),
	}
}

func (r *Record) SetDescription(desc string) *Record {
	r.description = desc
	return r
}

func (r *Record) addField(f fieldInfo) error {
	b := f.base()

	if _, exists := r.fields[b.Name]; exists {
		return newConfigError("field %q already defined", b.Name)
	}

	if b.Short != "" {
		if len(b.Short) != 1 || !isAlpha(b.Short[0]) {
			return newConfigError("short alias %q for field %q must be a single alphabetic character", b.Short, b.Name)
		}
		if existing, exists := r.shortToName[b.Short]; exists {
			return newConfigError("short alias %q for field %q already taken by %q", b.Short, b.Name, existing)
		}
	}

	if b.Positional {
		// Defaulted positionals must trail: once one positional carries a
		// default, every later one must too.
		if !f.hasDefault() {
			for _, name := range r.positional {
				if r.fields[name].hasDefault() {
					return newConfigError(
						"positional field %q without a default cannot follow defaulted positional field %q",
						b.Name, name)
				}
			}
		}
		r.positional = append(r.positional, b.Name)
	} else {
		r.named = append(r.named, b.Name)
	}

	if b.Short != "" {
		r.shortToName[b.Short] = b.Name
	}
	r.fields[b.Name] = f

	return nil
}
