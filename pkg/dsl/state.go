package dsl

import "github.com/aretw0/dfasim/pkg/adapters/memory"

// StateBuilder provides a fluent API for configuring one state.
type StateBuilder struct {
	id      string
	builder *Builder
}

// On adds a transition from this state on symbol to target.
func (s *StateBuilder) On(symbol, target string) *StateBuilder {
	s.builder.On(s.id, symbol, target)
	return s
}

// Initial marks the state as the start state.
func (s *StateBuilder) Initial() *StateBuilder {
	s.builder.Start(s.id)
	return s
}

// Accepting marks the state as accepting.
func (s *StateBuilder) Accepting() *StateBuilder {
	s.builder.Accept(s.id)
	return s
}

// State switches to another state, continuing the chain.
func (s *StateBuilder) State(id string) *StateBuilder {
	return s.builder.State(id)
}

// ID returns the state name.
func (s *StateBuilder) ID() string {
	return s.id
}

// Build ends a chain that finished on a state. See Builder.Build.
func (s *StateBuilder) Build() *memory.Loader {
	return s.builder.Build()
}
