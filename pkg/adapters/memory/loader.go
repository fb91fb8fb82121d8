package memory

import (
	"context"

	"github.com/aretw0/dfasim/pkg/domain"
)

// Loader implements ports.DefinitionLoader around a literal definition.
type Loader struct {
	def        domain.Definition
	violations []domain.Violation
}

// NewLoader creates a Loader serving a private copy of def.
func NewLoader(def domain.Definition) *Loader {
	return &Loader{def: def.Clone()}
}

// NewLoaderWithViolations is NewLoader for builders that observed problems the
// Definition value itself cannot express (several start states, for instance).
// Load reports them together with every other violation.
func NewLoaderWithViolations(def domain.Definition, violations ...domain.Violation) *Loader {
	return &Loader{def: def.Clone(), violations: violations}
}

// Load returns a fresh copy of the definition.
func (l *Loader) Load(ctx context.Context) (*domain.Definition, error) {
	if len(l.violations) > 0 {
		return nil, l.def.ValidateWith(l.violations...)
	}
	out := l.def.Clone()
	return &out, nil
}
