package tui

import (
	"testing"

	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefinitionMarkdown(t *testing.T) {
	def := domain.Definition{
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

	md := DefinitionMarkdown(def)
	assert.Contains(t, md, "# ends-in-1\n")
	assert.Contains(t, md, "- **Start:** `S0`")
	assert.Contains(t, md, "| | state | 0 | 1 |")
	assert.Contains(t, md, "| → | S0 | S0 | S1 |")
	assert.Contains(t, md, "| \\* | S1 | S0 | S1 |")
}

func TestDefinitionMarkdown_EmptyAcceptingAndPipes(t *testing.T) {
	def := domain.Definition{
		States:      []string{"a|b"},
		Alphabet:    []string{"x"},
		Start:       "a|b",
		Transitions: map[string]map[string]string{"a|b": {"x": "a|b"}},
	}

	md := DefinitionMarkdown(def)
	assert.Contains(t, md, "# DFA\n")
	assert.Contains(t, md, "- **Accepting:** ∅")
	assert.Contains(t, md, `| → | a\|b | a\|b |`)
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render("# Title")
	assert.NoError(t, err)
	assert.Contains(t, out, "Title")
}
