package dsl

import (
	"github.com/aretw0/dfasim/pkg/adapters/memory"
	"github.com/aretw0/dfasim/pkg/domain"
)

// Builder manages the definition construction.
type Builder struct {
	name        string
	states      []string
	known       map[string]*StateBuilder
	alphabet    []string
	symbols     map[string]bool
	starts      []string
	accepting   []string
	transitions map[string]map[string]string
}

// New creates a new definition builder.
func New() *Builder {
	return &Builder{
		known:       make(map[string]*StateBuilder),
		symbols:     make(map[string]bool),
		transitions: make(map[string]map[string]string),
	}
}

// Name labels the definition (used in logs, metrics and the HTTP info route).
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Symbols declares alphabet symbols in order. Symbols used by On are added
// automatically, so this is only needed to fix the order or to declare a
// symbol no transition uses yet.
func (b *Builder) Symbols(symbols ...string) *Builder {
	for _, s := range symbols {
		b.addSymbol(s)
	}
	return b
}

// State declares a state and returns its builder.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(id string) *StateBuilder {
	if sb, ok := b.known[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.known[id] = sb
	b.states = append(b.states, id)
	return sb
}

// Start marks id as the start state. Marking a second, different state is
// recorded and reported as a multiple-start violation when the loader is used.
func (b *Builder) Start(id string) *Builder {
	for _, s := range b.starts {
		if s == id {
			return b
		}
	}
	b.starts = append(b.starts, id)
	return b
}

// Accept marks states as accepting.
func (b *Builder) Accept(ids ...string) *Builder {
	b.accepting = append(b.accepting, ids...)
	return b
}

// On adds δ(from, symbol) = to, declaring from and symbol on the way.
// The target is not declared, so a misspelt target surfaces as a violation.
func (b *Builder) On(from, symbol, to string) *Builder {
	b.State(from)
	b.addSymbol(symbol)
	row, ok := b.transitions[from]
	if !ok {
		row = make(map[string]string)
		b.transitions[from] = row
	}
	row[symbol] = to
	return b
}

func (b *Builder) addSymbol(s string) {
	if b.symbols[s] {
		return
	}
	b.symbols[s] = true
	b.alphabet = append(b.alphabet, s)
}

// Definition returns the definition assembled so far. It is not validated.
func (b *Builder) Definition() domain.Definition {
	def := domain.Definition{
		Name:      b.name,
		States:    append([]string(nil), b.states...),
		Alphabet:  append([]string(nil), b.alphabet...),
		Accepting: append([]string(nil), b.accepting...),
	}
	if len(b.starts) > 0 {
		def.Start = b.starts[0]
	}
	for from, row := range b.transitions {
		for sym, to := range row {
			def.SetTransition(from, sym, to)
		}
	}
	return def
}

// Build compiles the definition into a memory loader.
func (b *Builder) Build() *memory.Loader {
	def := b.Definition()
	if len(b.starts) > 1 {
		return memory.NewLoaderWithViolations(def, domain.MultipleStartViolation(b.starts))
	}
	return memory.NewLoader(def)
}
