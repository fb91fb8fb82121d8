package domain

import "strings"

// Validate checks every invariant of a DFA definition and returns a *DefinitionError
// listing all violations, or nil. Missing transitions are reported for every
// offending (state, symbol) pair, not only the first one.
func (d *Definition) Validate() error {
	return d.ValidateWith()
}

// ValidateWith is Validate with extra violations the caller observed while building
// the definition (for example several start markers in a table). They are reported
// first, in the same *DefinitionError.
func (d *Definition) ValidateWith(extra ...Violation) error {
	violations := append([]Violation(nil), extra...)

	states := make(map[string]bool, len(d.States))
	for _, s := range d.States {
		if s == "" {
			violations = append(violations, Violation{Kind: ViolationEmptyState})
			continue
		}
		states[s] = true
	}
	if len(d.States) == 0 {
		violations = append(violations, Violation{Kind: ViolationNoStates})
	}

	symbols := make(map[string]bool, len(d.Alphabet))
	for _, sym := range d.Alphabet {
		if sym == "" {
			violations = append(violations, Violation{Kind: ViolationEmptySymbol})
			continue
		}
		symbols[sym] = true
	}
	if len(d.Alphabet) == 0 {
		violations = append(violations, Violation{Kind: ViolationNoAlphabet})
	}

	switch {
	case d.Start == "":
		violations = append(violations, Violation{Kind: ViolationNoStart})
	case !states[d.Start]:
		violations = append(violations, Violation{Kind: ViolationUnknownStart, State: d.Start})
	}

	for _, s := range dedupe(d.Accepting) {
		if !states[s] {
			violations = append(violations, Violation{Kind: ViolationUnknownAccepting, State: s})
		}
	}

	// Keys and targets outside Q or Σ.
	for _, key := range d.Keys() {
		switch {
		case !states[key.State]:
			violations = append(violations, Violation{Kind: ViolationUnknownSource, State: key.State})
		case !symbols[key.Symbol]:
			violations = append(violations, Violation{Kind: ViolationUnknownSymbol, State: key.State, Symbol: key.Symbol})
		}
		if next, _ := d.Next(key.State, key.Symbol); !states[next] {
			violations = append(violations, Violation{Kind: ViolationUnknownTarget, State: key.State, Symbol: key.Symbol, Detail: next})
		}
	}
	violations = collapseUnknownSources(violations)

	// Totality over Q × Σ.
	for _, s := range dedupe(d.States) {
		if s == "" {
			continue
		}
		for _, sym := range dedupe(d.Alphabet) {
			if sym == "" {
				continue
			}
			if _, ok := d.Next(s, sym); !ok {
				violations = append(violations, Violation{Kind: ViolationMissingTransition, State: s, Symbol: sym})
			}
		}
	}

	if len(violations) > 0 {
		return &DefinitionError{Violations: violations}
	}
	return nil
}

// MultipleStartViolation builds the violation loaders report when more than one
// state carries a start marker.
func MultipleStartViolation(starts []string) Violation {
	return Violation{Kind: ViolationMultipleStart, Detail: strings.Join(starts, ", ")}
}

// collapseUnknownSources keeps one ViolationUnknownSource per state; a row keyed by an
// unknown state would otherwise be reported once per symbol.
func collapseUnknownSources(in []Violation) []Violation {
	seen := make(map[string]bool)
	out := in[:0]
	for _, v := range in {
		if v.Kind == ViolationUnknownSource {
			if seen[v.State] {
				continue
			}
			seen[v.State] = true
		}
		out = append(out, v)
	}
	return out
}
