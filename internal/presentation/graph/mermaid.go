package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/dfasim/pkg/domain"
)

// RunOverlay highlights one run on the diagram.
type RunOverlay struct {
	Path []string // visited states, in order
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies the usual automaton shapes:
// - State: ((Circle))
// - Accepting: (((Double circle)))
// - Start: entered by an arrow from an unlabeled point
// Parallel edges between the same pair of states are merged into one edge
// labeled with every symbol. An overlay marks the visited states and the
// state the run ended in.
func GenerateMermaid(def domain.Definition, overlay *RunOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	// Mermaid IDs come from ordinals, so state names never need sanitizing.
	ids := make(map[string]string, len(def.States))
	for i, s := range def.States {
		ids[s] = fmt.Sprintf("q%d", i)
	}

	for _, s := range def.States {
		opener, closer := "((", "))"
		if def.IsAccepting(s) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[s], opener, escapeLabel(s), closer))
	}

	if start, ok := ids[def.Start]; ok {
		sb.WriteString(fmt.Sprintf("    entry[ ]:::entry --> %s\n", start))
		sb.WriteString("    classDef entry fill:none,stroke:none;\n")
	}

	for _, s := range def.States {
		for _, edge := range edgesFrom(def, s) {
			to, ok := ids[edge.to]
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", ids[s], escapeLabel(strings.Join(edge.symbols, ", ")), to))
		}
	}

	if overlay != nil && len(overlay.Path) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		last := overlay.Path[len(overlay.Path)-1]
		seen := make(map[string]bool)
		for _, s := range overlay.Path {
			id, ok := ids[s]
			if !ok || seen[id] || s == last {
				continue
			}
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
		}
		if id, ok := ids[last]; ok {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", id))
		}
	}

	return sb.String()
}

type edge struct {
	to      string
	symbols []string
}

// edgesFrom groups the outgoing transitions of s by target, in alphabet order.
func edgesFrom(def domain.Definition, s string) []edge {
	var out []edge
	index := make(map[string]int)
	for _, sym := range def.Alphabet {
		next, ok := def.Next(s, sym)
		if !ok {
			continue
		}
		if i, ok := index[next]; ok {
			out[i].symbols = append(out[i].symbols, sym)
			continue
		}
		index[next] = len(out)
		out = append(out, edge{to: next, symbols: []string{sym}})
	}
	return out
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
