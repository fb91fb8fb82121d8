package validator

import (
	"testing"

	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestAnalyze_Clean(t *testing.T) {
	r := Analyze(domain.Definition{
		States:    []string{"S0", "S1"},
		Alphabet:  []string{"0", "1"},
		Start:     "S0",
		Accepting: []string{"S1"},
		Transitions: map[string]map[string]string{
			"S0": {"0": "S0", "1": "S1"},
			"S1": {"0": "S0", "1": "S1"},
		},
	})
	assert.True(t, r.Empty())
	assert.Empty(t, r.Warnings())
}

func TestAnalyze_UnreachableAndDead(t *testing.T) {
	// start -> trap (dead), island is never entered
	r := Analyze(domain.Definition{
		States:    []string{"start", "ok", "trap", "island"},
		Alphabet:  []string{"a", "b"},
		Start:     "start",
		Accepting: []string{"ok", "island"},
		Transitions: map[string]map[string]string{
			"start":  {"a": "ok", "b": "trap"},
			"ok":     {"a": "ok", "b": "ok"},
			"trap":   {"a": "trap", "b": "trap"},
			"island": {"a": "ok", "b": "island"},
		},
	})
	assert.Equal(t, []string{"island"}, r.Unreachable)
	assert.Equal(t, []string{"trap"}, r.Dead)
	assert.False(t, r.AcceptsNothing)
	assert.Len(t, r.Warnings(), 2)
}

func TestAnalyze_AcceptsNothing(t *testing.T) {
	r := Analyze(domain.Definition{
		States:   []string{"S0"},
		Alphabet: []string{"x"},
		Start:    "S0",
		Transitions: map[string]map[string]string{
			"S0": {"x": "S0"},
		},
	})
	assert.True(t, r.AcceptsNothing)
	assert.Equal(t, []string{"S0"}, r.Dead)
	assert.Contains(t, r.Warnings()[0], "every input is rejected")
}
