package seiargs

// recordProps holds the per-parse field properties of a Record: counts,
// the pending-required set of named fields still lacking a value, and the
// first positional index allowed to remain unset because it and everything
// after it carry defaults. Derived fresh at the start of each record-level
// parse; the schema shape it depends on is fixed at construction.
type recordProps struct {
	numNamed        int
	numPositional   int
	pending         map[string]bool
	posDefaultLimit int
}

func (r *Record) deriveProps() *recordProps {
	p := &recordProps{
		numNamed:        len(r.named),
		numPositional:   len(r.positional),
		pending:         make(map[string]bool),
		posDefaultLimit: len(r.positional),
	}
	for _, name := range r.named {
		if !r.fields[name].hasDefault() {
			p.pending[name] = true
		}
	}
	for i := len(r.positional) - 1; i >= 0; i-- {
		if !r.fields[r.positional[i]].hasDefault() {
			break
		}
		p.posDefaultLimit = i
	}
	return p
}
