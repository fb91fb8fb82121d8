package ports

import "github.com/aretw0/dfasim/pkg/domain"

// Evaluator is the engine surface used by adapters (HTTP, MCP, runner).
// Implementations must be safe for concurrent use.
type Evaluator interface {
	// Evaluate decides acceptance, optionally dumping the definition first.
	Evaluate(input []string, trace bool) domain.Result

	// Run returns the full run record (path and rejection reason).
	Run(input []string) domain.Run

	// Definition returns a copy of the validated definition.
	Definition() domain.Definition
}
