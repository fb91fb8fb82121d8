package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCatalogContract runs a suite of tests to verify that a DefinitionCatalog
// implementation adheres to the interface contract.
func RunCatalogContract(t *testing.T, catalog DefinitionCatalog) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")

	def := &domain.Definition{
		Name:      name,
		States:    []string{"S0", "S1"},
		Alphabet:  []string{"0", "1"},
		Start:     "S0",
		Accepting: []string{"S1"},
		Transitions: map[string]map[string]string{
			"S0": {"0": "S0", "1": "S1"},
			"S1": {"0": "S0", "1": "S1"},
		},
	}

	t.Run("Save and Get", func(t *testing.T) {
		// 1. Save
		err := catalog.Save(ctx, name, def)
		require.NoError(t, err, "Save should not return error")

		// 2. Get
		loaded, err := catalog.Get(ctx, name)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, def.States, loaded.States)
		assert.Equal(t, def.Alphabet, loaded.Alphabet)
		assert.Equal(t, def.Start, loaded.Start)
		assert.Equal(t, def.Accepting, loaded.Accepting)
		assert.Equal(t, def.Transitions, loaded.Transitions)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := catalog.Get(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("Bound Loader", func(t *testing.T) {
		loaded, err := CatalogLoader{Catalog: catalog, Name: name}.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "S0", loaded.Start)
	})

	t.Run("List", func(t *testing.T) {
		other := name + "-2"
		require.NoError(t, catalog.Save(ctx, other, def))
		defer func() { _ = catalog.Delete(ctx, other) }()

		names, err := catalog.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, name)
		assert.Contains(t, names, other)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, catalog.Delete(ctx, name))

		_, err := catalog.Get(ctx, name)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable, "Get after Delete should report the source as unavailable")

		assert.NoError(t, catalog.Delete(ctx, name), "deleting twice is not an error")
	})
}
