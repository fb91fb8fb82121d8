package ports

import (
	"context"

	"github.com/aretw0/dfasim/pkg/domain"
)

// DefinitionLoader is the only contract between a source and the engine.
//
// Load returns a *domain.SourceUnavailableError when the source cannot be
// located at all. Malformed content is reported as an ordinary wrapped error.
// Loaders do not validate; the engine does that once at construction.
type DefinitionLoader interface {
	Load(ctx context.Context) (*domain.Definition, error)
}

// LoaderFunc adapts a plain function to DefinitionLoader.
type LoaderFunc func(ctx context.Context) (*domain.Definition, error)

// Load calls f(ctx).
func (f LoaderFunc) Load(ctx context.Context) (*domain.Definition, error) {
	return f(ctx)
}
