/*
Package domain contains the core domain models of the dfasim engine.

It defines the automaton definition, the evaluation results and the errors the
engine and its loaders report. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Definition: The five components of a DFA (Q, Σ, q0, F, δ) as plain data.
  - TransitionKey: A single (state, symbol) pair of the transition function.
  - Result: The literal outcome of an evaluation, "Accepted" or "Rejected".
  - Run: The full record of one walk through the automaton (path, reason).
  - DefinitionError: Every invariant violation found in a definition, aggregated.
  - SourceUnavailableError: A loader could not locate the source it reads from.
*/
package domain
