package domain

import (
	"sort"
)

// Definition describes a deterministic finite automaton.
//
// It is plain data: loaders fill it in, the engine validates it once and keeps a
// private copy. Nothing in the engine mutates a Definition after construction.
type Definition struct {
	// Name is an optional label (file name, registry key) used in logs and listings.
	Name string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`

	// States is Q. Duplicates collapse.
	States []string `json:"states" yaml:"states" mapstructure:"states"`

	// Alphabet is Σ. Every symbol must be a non-empty string.
	Alphabet []string `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`

	// Start is q0.
	Start string `json:"start" yaml:"start" mapstructure:"start"`

	// Accepting is F, a subset of States. It may be empty.
	Accepting []string `json:"accepting" yaml:"accepting" mapstructure:"accepting"`

	// Transitions is δ as a nested mapping: state -> symbol -> next state.
	Transitions map[string]map[string]string `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// TransitionKey identifies one (state, symbol) pair of the transition function.
type TransitionKey struct {
	State  string `json:"state"`
	Symbol string `json:"symbol"`
}

// Next returns δ(state, symbol) and whether it is defined.
func (d *Definition) Next(state, symbol string) (string, bool) {
	row, ok := d.Transitions[state]
	if !ok {
		return "", false
	}
	next, ok := row[symbol]
	return next, ok
}

// SetTransition defines δ(state, symbol) = next, allocating the nested map on demand.
func (d *Definition) SetTransition(state, symbol, next string) {
	if d.Transitions == nil {
		d.Transitions = make(map[string]map[string]string)
	}
	row, ok := d.Transitions[state]
	if !ok {
		row = make(map[string]string)
		d.Transitions[state] = row
	}
	row[symbol] = next
}

// IsAccepting reports whether state is a member of F.
func (d *Definition) IsAccepting(state string) bool {
	for _, s := range d.Accepting {
		if s == state {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the definition.
func (d Definition) Clone() Definition {
	out := Definition{
		Name:      d.Name,
		Start:     d.Start,
		States:    append([]string(nil), d.States...),
		Alphabet:  append([]string(nil), d.Alphabet...),
		Accepting: append([]string(nil), d.Accepting...),
	}
	if d.Transitions != nil {
		out.Transitions = make(map[string]map[string]string, len(d.Transitions))
		for state, row := range d.Transitions {
			copied := make(map[string]string, len(row))
			for symbol, next := range row {
				copied[symbol] = next
			}
			out.Transitions[state] = copied
		}
	}
	return out
}

// Keys returns every defined (state, symbol) pair in a deterministic order.
func (d *Definition) Keys() []TransitionKey {
	keys := make([]TransitionKey, 0)
	for state, row := range d.Transitions {
		for symbol := range row {
			keys = append(keys, TransitionKey{State: state, Symbol: symbol})
		}
	}
	sortKeys(keys)
	return keys
}

func sortKeys(keys []TransitionKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return keys[i].State < keys[j].State
		}
		return keys[i].Symbol < keys[j].Symbol
	})
}

// dedupe returns the distinct members of in, preserving first-seen order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Normalize returns a copy with duplicate states, symbols and accepting states removed.
func (d Definition) Normalize() Definition {
	out := d.Clone()
	out.States = dedupe(out.States)
	out.Alphabet = dedupe(out.Alphabet)
	out.Accepting = dedupe(out.Accepting)
	return out
}
