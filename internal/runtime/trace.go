package runtime

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/dfasim/pkg/domain"
)

func (e *Engine) writeTrace() {
	if _, err := e.trace.Write([]byte(FormatDefinition(e.def))); err != nil {
		e.logger.Warn("Failed to write trace", "definition", e.def.Name, "err", err)
	}
}

// FormatDefinition renders the five components of a definition, one per line,
// with set members sorted.
func FormatDefinition(def domain.Definition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Q (States): %s\n", formatSet(def.States))
	fmt.Fprintf(&b, "Sigma (Input Alphabet): %s\n", formatSet(def.Alphabet))
	fmt.Fprintf(&b, "q0 (Start State): %s\n", def.Start)
	fmt.Fprintf(&b, "F (Final States): %s\n", formatSet(def.Accepting))

	keys := def.Keys()
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		next, _ := def.Next(k.State, k.Symbol)
		pairs = append(pairs, fmt.Sprintf("(%s, %s) -> %s", k.State, k.Symbol, next))
	}
	fmt.Fprintf(&b, "Transition Function (delta): {%s}\n", strings.Join(pairs, ", "))
	return b.String()
}

func formatSet(members []string) string {
	sorted := append([]string(nil), members...)
	sort.Strings(sorted)
	return "{" + strings.Join(sorted, ", ") + "}"
}
