package ports

import (
	"context"

	"github.com/aretw0/dfasim/pkg/domain"
)

// DefinitionCatalog persists named definitions.
// This is what `dfasim publish` writes to and what registry loaders read from.
type DefinitionCatalog interface {
	// Save stores def under name, replacing any previous entry.
	Save(ctx context.Context, name string, def *domain.Definition) error

	// Get retrieves the definition stored under name.
	// Returns a *domain.SourceUnavailableError if there is none.
	Get(ctx context.Context, name string) (*domain.Definition, error)

	// Delete removes the entry. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names.
	List(ctx context.Context) ([]string, error)
}

// CatalogLoader binds a catalog entry to the DefinitionLoader port.
type CatalogLoader struct {
	Catalog DefinitionCatalog
	Name    string
}

// Load fetches the bound entry.
func (l CatalogLoader) Load(ctx context.Context) (*domain.Definition, error) {
	return l.Catalog.Get(ctx, l.Name)
}
