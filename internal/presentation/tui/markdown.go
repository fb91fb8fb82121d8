package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/dfasim/pkg/domain"
)

// DefinitionMarkdown describes def as a markdown document with its
// transition table, in the same row layout the tabular loader reads.
func DefinitionMarkdown(def domain.Definition) string {
	var sb strings.Builder

	title := def.Name
	if title == "" {
		title = "DFA"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "- **States:** %s\n", codeList(def.States))
	fmt.Fprintf(&sb, "- **Alphabet:** %s\n", codeList(def.Alphabet))
	fmt.Fprintf(&sb, "- **Start:** `%s`\n", def.Start)
	fmt.Fprintf(&sb, "- **Accepting:** %s\n\n", codeList(def.Accepting))

	sb.WriteString("| | state |")
	for _, sym := range def.Alphabet {
		fmt.Fprintf(&sb, " %s |", cell(sym))
	}
	sb.WriteString("\n|---|---|")
	for range def.Alphabet {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for _, s := range def.States {
		marker := ""
		if s == def.Start {
			marker += "→"
		}
		if def.IsAccepting(s) {
			marker += "\\*"
		}
		fmt.Fprintf(&sb, "| %s | %s |", marker, cell(s))
		for _, sym := range def.Alphabet {
			next, _ := def.Next(s, sym)
			fmt.Fprintf(&sb, " %s |", cell(next))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func codeList(items []string) string {
	if len(items) == 0 {
		return "∅"
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = "`" + it + "`"
	}
	return strings.Join(parts, ", ")
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
