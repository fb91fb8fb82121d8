package dfasim_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/dfasim"
	"github.com/aretw0/dfasim/internal/testutils"
	"github.com/aretw0/dfasim/pkg/adapters/bolt"
	"github.com/aretw0/dfasim/pkg/adapters/redis"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binary() domain.Definition {
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

func assertBinaryScenario(t *testing.T, eng *dfasim.Engine) {
	t.Helper()
	want := map[string]domain.Result{
		"":    domain.Rejected,
		"1":   domain.Accepted,
		"10":  domain.Rejected,
		"101": domain.Accepted,
		"2":   domain.Rejected,
	}
	for w, res := range want {
		assert.Equal(t, res, eng.EvaluateString(w, false), "input %q", w)
	}
}

func TestNew_Sources(t *testing.T) {
	ctx := context.Background()

	t.Run("yaml", func(t *testing.T) {
		eng, err := dfasim.New(ctx, filepath.Join("pkg", "adapters", "file", "testdata", "binary.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "ends-in-1", eng.Name)
		assertBinaryScenario(t, eng)
	})

	t.Run("json", func(t *testing.T) {
		eng, err := dfasim.New(ctx, filepath.Join("pkg", "adapters", "file", "testdata", "binary.json"))
		require.NoError(t, err)
		assertBinaryScenario(t, eng)
	})

	t.Run("csv", func(t *testing.T) {
		eng, err := dfasim.New(ctx, filepath.Join("pkg", "adapters", "table", "testdata", "binary.csv"))
		require.NoError(t, err)
		assertBinaryScenario(t, eng)
	})

	t.Run("loam directory", func(t *testing.T) {
		dir := t.TempDir()
		testutils.SeedFiles(t, dir, map[string]string{
			"binary.md": "---\nstates: [S0, S1]\nalphabet: [\"0\", \"1\"]\nstart: S0\naccepting: [S1]\n" +
				"transitions:\n  S0: {\"0\": S0, \"1\": S1}\n  S1: {\"0\": S0, \"1\": S1}\n---\nEnds in 1.\n",
		})
		eng, err := dfasim.New(ctx, dir+"#binary")
		require.NoError(t, err)
		assertBinaryScenario(t, eng)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		catalog := redis.New(mr.Addr(), "", 0)
		def := binary()
		require.NoError(t, catalog.Save(ctx, "binary", &def))
		require.NoError(t, catalog.Close())

		eng, err := dfasim.New(ctx, "redis://"+mr.Addr()+"/binary")
		require.NoError(t, err)
		assertBinaryScenario(t, eng)
	})

	t.Run("bolt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.db")
		catalog, err := bolt.Open(path)
		require.NoError(t, err)
		def := binary()
		require.NoError(t, catalog.Save(ctx, "binary", &def))
		require.NoError(t, catalog.Close())

		eng, err := dfasim.New(ctx, "bolt://"+path+"#binary")
		require.NoError(t, err)
		assertBinaryScenario(t, eng)
	})
}

func TestNew_SourceUnavailable(t *testing.T) {
	ctx := context.Background()
	missing := []string{
		filepath.Join(t.TempDir(), "nope.yaml"),
		filepath.Join(t.TempDir(), "dfa_transitions.xlsx"),
		filepath.Join(t.TempDir(), "nowhere"),
		"bolt://" + filepath.Join(t.TempDir(), "none.db") + "#binary",
	}
	for _, src := range missing {
		_, err := dfasim.New(ctx, src)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable, src)

		var sue *domain.SourceUnavailableError
		assert.True(t, errors.As(err, &sue), src)
	}
}

func TestNew_InvalidDefinition(t *testing.T) {
	_, err := dfasim.New(context.Background(), filepath.Join("pkg", "adapters", "table", "testdata", "incomplete.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
	assert.NotEmpty(t, domain.Violations(err))
}

func TestNew_EmptySourceWithoutLoader(t *testing.T) {
	_, err := dfasim.New(context.Background(), "")
	assert.Error(t, err)
}

func TestEngine_TraceWriter(t *testing.T) {
	var buf bytes.Buffer
	eng, err := dfasim.FromDefinition(binary(), dfasim.WithTraceWriter(&buf))
	require.NoError(t, err)

	assert.Equal(t, domain.Accepted, eng.Evaluate([]string{"1"}, true))
	assert.Contains(t, buf.String(), "q0 (Start State): S0")
	assert.Contains(t, buf.String(), "F (Final States): {S1}")
}

func TestEngine_Hooks(t *testing.T) {
	var count atomic.Int32
	eng, err := dfasim.FromDefinition(binary(), dfasim.WithLifecycleHooks(domain.LifecycleHooks{
		OnEvaluate: func(e *domain.EvaluationEvent) {
			count.Add(1)
		},
	}))
	require.NoError(t, err)

	eng.EvaluateString("101", false)
	eng.Run([]string{"1"})
	assert.Equal(t, int32(2), count.Load())
}

func TestEngine_RunAndDefinition(t *testing.T) {
	eng, err := dfasim.FromDefinition(binary())
	require.NoError(t, err)

	run := eng.Run([]string{"1", "0"})
	assert.Equal(t, []string{"S0", "S1", "S0"}, run.Path)
	assert.Equal(t, domain.ReasonNonAccepting, run.Reason)

	def := eng.Definition()
	def.Transitions["S0"]["1"] = "S0"
	assert.Equal(t, domain.Accepted, eng.EvaluateString("1", false), "returned definition is a copy")
	assert.Equal(t, "ends-in-1 (2 states, 2 symbols)", eng.String())
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		raw  string
		want dfasim.Source
	}{
		{"binary.yaml", dfasim.Source{Path: "binary.yaml"}},
		{"./defs#binary", dfasim.Source{Path: "./defs", Name: "binary"}},
		{"redis://localhost:6379/binary", dfasim.Source{Scheme: "redis", Path: "localhost:6379", Name: "binary"}},
		{"redis://:secret@cache:6379/2/binary", dfasim.Source{Scheme: "redis", Path: "cache:6379", Name: "binary", Password: "secret", DB: 2}},
		{"bolt://data/catalog.db#binary", dfasim.Source{Scheme: "bolt", Path: "data/catalog.db", Name: "binary"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := dfasim.ParseSource(tt.raw)
			require.NoError(t, err)
			tt.want.Raw = tt.raw
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "redis://localhost:6379", "redis://h/x/1/2", "bolt://catalog.db"} {
		_, err := dfasim.ParseSource(bad)
		assert.Error(t, err, bad)
	}
}
