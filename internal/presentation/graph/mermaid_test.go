package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/dfasim/internal/presentation/graph"
	"github.com/aretw0/dfasim/pkg/domain"
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

func TestGenerateMermaid(t *testing.T) {
	merged := domain.Definition{
		States:    []string{"a-b", `say "hi"`},
		Alphabet:  []string{"x", "y"},
		Start:     "a-b",
		Accepting: nil,
		Transitions: map[string]map[string]string{
			"a-b":      {"x": `say "hi"`, "y": `say "hi"`},
			`say "hi"`: {"x": "a-b", "y": "a-b"},
		},
	}

	tests := []struct {
		name     string
		def      domain.Definition
		overlay  *graph.RunOverlay
		contains []string
		absent   []string
	}{
		{
			name: "Shapes",
			def:  binarySuffix(),
			contains: []string{
				"graph LR\n",
				`q0(("S0"))`,
				`q1((("S1")))`,
				"entry[ ]:::entry --> q0",
			},
		},
		{
			name: "Edges",
			def:  binarySuffix(),
			contains: []string{
				`q0 -- "0" --> q0`,
				`q0 -- "1" --> q1`,
				`q1 -- "0" --> q0`,
				`q1 -- "1" --> q1`,
			},
		},
		{
			name: "Merged Parallel Edges And Escaping",
			def:  merged,
			contains: []string{
				`q0(("a-b"))`,
				`q1(("say #quot;hi#quot;"))`,
				`q0 -- "x, y" --> q1`,
				`q1 -- "x, y" --> q0`,
			},
		},
		{
			name:    "Overlay",
			def:     binarySuffix(),
			overlay: &graph.RunOverlay{Path: []string{"S0", "S1", "S0", "S1"}},
			contains: []string{
				"class q0 visited;",
				"class q1 current;",
			},
			absent: []string{"class q1 visited;"},
		},
		{
			name:    "Empty Overlay",
			def:     binarySuffix(),
			overlay: &graph.RunOverlay{},
			absent:  []string{"Overlay Styles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.def, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnexpected substring: %v", got, unwanted)
				}
			}
		})
	}
}
