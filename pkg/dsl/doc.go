/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing DFA definitions.

It allows developers to define automata using a fluent builder instead of relying on
external YAML, CSV or spreadsheet files. This is particularly useful for unit testing,
generated automata and leveraging IDE autocompletion/type-checking.

Example usage:

	b := dsl.New().Name("ends-in-1").Symbols("0", "1")

	b.State("S0").Initial().
		On("0", "S0").
		On("1", "S1")

	b.State("S1").Accepting().
		On("0", "S0").
		On("1", "S1")

	// The resulting loader is a ports.DefinitionLoader
	engine, err := dfasim.New("", dfasim.WithLoader(b.Build()))
*/
package dsl
