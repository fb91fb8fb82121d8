package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/dfasim/pkg/adapters/memory"
	"github.com/aretw0/dfasim/pkg/domain"
	contract "github.com/aretw0/dfasim/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binarySuffix() domain.Definition {
	return domain.Definition{
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

func TestInMemoryLoader_Contract(t *testing.T) {
	def := binarySuffix()
	contract.DefinitionLoaderContractTest(t, memory.NewLoader(def), def)
}

func TestInMemoryLoader_CopiesInput(t *testing.T) {
	def := binarySuffix()
	loader := memory.NewLoader(def)
	def.Transitions["S0"]["1"] = "S0"

	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	next, _ := got.Next("S0", "1")
	assert.Equal(t, "S1", next)
}

func TestInMemoryLoader_ReportsViolations(t *testing.T) {
	def := binarySuffix()
	delete(def.Transitions["S1"], "0")

	loader := memory.NewLoaderWithViolations(def, domain.MultipleStartViolation([]string{"S0", "S1"}))
	_, err := loader.Load(context.Background())
	require.Error(t, err)

	var defErr *domain.DefinitionError
	require.True(t, errors.As(err, &defErr))
	assert.True(t, defErr.Has(domain.ViolationMultipleStart))
	assert.Equal(t, []domain.TransitionKey{{State: "S1", Symbol: "0"}}, defErr.Missing())
}
