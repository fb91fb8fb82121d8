package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/ports"
)

// DefinitionLoaderContractTest is a reusable test suite that verifies if an adapter
// complies with ports.DefinitionLoader. want is what the source is expected to hold.
func DefinitionLoaderContractTest(t *testing.T, loader ports.DefinitionLoader, want domain.Definition) {
	t.Helper()
	ctx := context.Background()

	// 1. Load (Success)
	t.Run("Load_Success", func(t *testing.T) {
		got, err := loader.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error loading definition: %v", err)
		}
		if got == nil {
			t.Fatal("loader returned a nil definition without an error")
		}
		if got.Start != want.Start {
			t.Errorf("start mismatch. got %q, want %q", got.Start, want.Start)
		}
		assertSameMembers(t, "states", got.States, want.States)
		assertSameMembers(t, "alphabet", got.Alphabet, want.Alphabet)
		assertSameMembers(t, "accepting", got.Accepting, want.Accepting)

		for _, key := range want.Keys() {
			expected, _ := want.Next(key.State, key.Symbol)
			actual, ok := got.Next(key.State, key.Symbol)
			if !ok || actual != expected {
				t.Errorf("transition (%s, %s): got %q, want %q", key.State, key.Symbol, actual, expected)
			}
		}
		if len(got.Keys()) != len(want.Keys()) {
			t.Errorf("expected %d transitions, got %d", len(want.Keys()), len(got.Keys()))
		}
	})

	// 2. Load is repeatable and returns independent values
	t.Run("Load_Independent", func(t *testing.T) {
		first, err := loader.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first.Start = "mutated"

		second, err := loader.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Start != want.Start {
			t.Errorf("mutating a loaded definition leaked into the next load")
		}
	})
}

// MissingSourceContractTest verifies that a loader pointed at nothing reports
// domain.ErrSourceUnavailable rather than an empty definition.
func MissingSourceContractTest(t *testing.T, loader ports.DefinitionLoader) {
	t.Helper()

	t.Run("Load_SourceUnavailable", func(t *testing.T) {
		def, err := loader.Load(context.Background())
		if err == nil {
			t.Fatalf("expected error for missing source, got definition %+v", def)
		}
		if !errors.Is(err, domain.ErrSourceUnavailable) {
			t.Errorf("expected ErrSourceUnavailable, got %v", err)
		}
		var srcErr *domain.SourceUnavailableError
		if !errors.As(err, &srcErr) {
			t.Errorf("expected *domain.SourceUnavailableError, got %T", err)
		}
	})
}

func assertSameMembers(t *testing.T, what string, got, want []string) {
	t.Helper()
	seen := make(map[string]bool, len(got))
	for _, v := range got {
		seen[v] = true
	}
	for _, v := range want {
		if !seen[v] {
			t.Errorf("%s: missing %q in %v", what, v, got)
		}
	}
	if len(seen) != len(want) {
		t.Errorf("%s: got %v, want %v", what, got, want)
	}
}
