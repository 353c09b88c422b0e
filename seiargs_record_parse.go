package seiargs

import (
	"strings"
)

// Parse walks args left to right, classifying each token as the "--"
// terminator, a long option, a short-option bundle, or a positional value,
// in that priority order. args excludes the program name. The returned
// rest is the untouched tail following a "--" terminator, nil when none
// was present.
func (r *Record) Parse(args []string) ([]string, error) {
	// Parses write through the shared field destinations, so they must not
	// interleave.
	r.mu.Lock()
	defer r.mu.Unlock()

	props := r.deriveProps()

	// Set defaults first; supplied values overwrite them.
	for _, name := range r.positional {
		r.fields[name].applyDefault()
	}
	for _, name := range r.named {
		r.fields[name].applyDefault()
	}

	var rest []string
	posIdx := 0
	i := 0

	for i < len(args) {
		arg := args[i]

		if arg == "--" {
			rest = args[i+1:]
			break
		}

		if len(arg) > 2 && strings.HasPrefix(arg, "--") && props.numNamed > 0 {
			consumed, err := r.parseLong(args, i, props)
			if err != nil {
				return nil, err
			}
			i += consumed
			continue
		}

		if len(arg) > 1 && arg[0] == '-' && arg[1] != '-' && len(r.shortToName) > 0 {
			consumed, err := r.parseShortBundle(args, i, props)
			if err != nil {
				return nil, err
			}
			i += consumed
			continue
		}

		// Positional value
		if posIdx >= props.numPositional {
			return nil, newParseError(ErrTooManyArguments,
				"too many positional arguments, unused: %q", arg)
		}
		if err := r.fields[r.positional[posIdx]].setFromToken(arg); err != nil {
			return nil, err
		}
		posIdx++
		i++
	}

	if err := r.validateUnset(props, posIdx); err != nil {
		return nil, err
	}
	return rest, nil
}

// parseLong handles --name and --name=value tokens, returning how many
// tokens were consumed.
func (r *Record) parseLong(args []string, index int, props *recordProps) (int, error) {
	name := args[index][2:]

	var inline string
	hasInline := false
	if idx := strings.Index(name, "="); idx != -1 {
		inline = name[idx+1:]
		name = name[:idx]
		hasInline = true
	}

	f, exists := r.fields[name]
	if !exists || f.base().Positional {
		return 0, newParseError(ErrUnknownArgument, "unknown flag: --%s", name)
	}
	delete(props.pending, name)

	// Boolean fields toggle relative to their declared default; an inline
	// value is ignored.
	if f.boolish() {
		f.toggle()
		return 1, nil
	}

	if hasInline {
		if err := f.setFromToken(inline); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if index+1 >= len(args) {
		return 0, newParseError(ErrMissingArgument, "flag --%s requires a value", name)
	}
	if err := f.setFromToken(args[index+1]); err != nil {
		return 0, err
	}
	return 2, nil
}

// parseShortBundle handles -x and clustered -abc tokens. Every character
// but the last must resolve to a boolean field; only the final character
// may consume the following token as its value.
func (r *Record) parseShortBundle(args []string, index int, props *recordProps) (int, error) {
	shorts := args[index][1:]

	for pos := 0; pos < len(shorts); pos++ {
		short := string(shorts[pos])
		name, exists := r.shortToName[short]
		if !exists {
			return 0, newParseError(ErrUnknownArgument, "unknown shorthand flag: -%s", short)
		}
		f := r.fields[name]
		delete(props.pending, name)

		if f.boolish() {
			f.toggle()
			continue
		}
		if pos != len(shorts)-1 {
			return 0, newParseError(ErrMissingArgument,
				"non-bool flag -%s must be last in bundle", short)
		}
		if index+1 >= len(args) {
			return 0, newParseError(ErrMissingArgument, "flag -%s requires a value", short)
		}
		if err := f.setFromToken(args[index+1]); err != nil {
			return 0, err
		}
		return 2, nil
	}
	return 1, nil
}

// validateUnset checks the pending-required set and the positional default
// limit after the loop has drained its input.
func (r *Record) validateUnset(props *recordProps, posIdx int) error {
	var missing []string
	for i := posIdx; i < props.posDefaultLimit; i++ {
		missing = append(missing, r.positional[i])
	}
	for _, name := range r.named {
		if props.pending[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return newParseError(ErrUnsetArguments,
			"missing required arguments: [%s]", strings.Join(missing, ", "))
	}
	return nil
}
