package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/dfasim/pkg/adapters/bolt"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/ports"
	contract "github.com/aretw0/dfasim/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binarySuffix() domain.Definition {
	return domain.Definition{
		Name:      "ends-in-1",
		States:    []string{"S0", "S1"},
		Alphabet:  []string{"0", "1"},
		Start:     "S0",
		Accepting: []string{"S1"},
		Transitions: map[string]map[string]string{
			"S0": {"0": "S0", "1": "S1"},
			"S1": {"0": "S0", "1": "S1"},
		},
	}
}

func TestBoltCatalog_Contract(t *testing.T) {
	catalog, err := bolt.Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer catalog.Close()

	ports.RunCatalogContract(t, catalog)
}

func TestBoltCatalog_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	def := binarySuffix()

	// 1. Write and close
	catalog, err := bolt.Open(path)
	require.NoError(t, err)
	require.NoError(t, catalog.Save(context.Background(), "binary", &def))
	require.NoError(t, catalog.Close())

	// 2. Reopen read-only and load
	ro, err := bolt.OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	contract.DefinitionLoaderContractTest(t, ro.Loader("binary"), def)
	contract.MissingSourceContractTest(t, ro.Loader("absent"))
}

func TestBoltCatalog_EmptyFile(t *testing.T) {
	catalog, err := bolt.Open(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer catalog.Close()

	names, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = catalog.Get(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestOpenReadOnly_MissingFile(t *testing.T) {
	_, err := bolt.OpenReadOnly(filepath.Join(t.TempDir(), "nope.db"))
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
