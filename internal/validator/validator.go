package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/dfasim/pkg/domain"
)

// Report lists structural oddities of a valid definition. None of them make
// the definition invalid.
type Report struct {
	// Unreachable states cannot be entered from the start state.
	Unreachable []string
	// Dead states are reachable but can never lead to an accepting state.
	Dead []string
	// AcceptsNothing is set when no accepting state is reachable.
	AcceptsNothing bool
}

// Empty reports whether there is nothing to warn about.
func (r Report) Empty() bool {
	return len(r.Unreachable) == 0 && len(r.Dead) == 0 && !r.AcceptsNothing
}

// Warnings renders the report one finding per line.
func (r Report) Warnings() []string {
	var out []string
	if r.AcceptsNothing {
		out = append(out, "no accepting state is reachable: every input is rejected")
	}
	if len(r.Unreachable) > 0 {
		out = append(out, fmt.Sprintf("unreachable states: %s", strings.Join(r.Unreachable, ", ")))
	}
	if len(r.Dead) > 0 {
		out = append(out, fmt.Sprintf("dead states (no path to an accepting state): %s", strings.Join(r.Dead, ", ")))
	}
	return out
}

// Analyze crawls the transition graph of a validated definition.
// States are reported in declaration order.
func Analyze(def domain.Definition) Report {
	reachable := crawl([]string{def.Start}, func(s string) []string {
		row := def.Transitions[s]
		next := make([]string, 0, len(row))
		for _, sym := range def.Alphabet {
			if to, ok := row[sym]; ok {
				next = append(next, to)
			}
		}
		return next
	})

	// Reverse edges, crawled from F, give the states that can still accept.
	reverse := make(map[string][]string, len(def.States))
	for from, row := range def.Transitions {
		for _, to := range row {
			reverse[to] = append(reverse[to], from)
		}
	}
	live := crawl(def.Accepting, func(s string) []string { return reverse[s] })

	var r Report
	anyAccepting := false
	for _, s := range def.States {
		switch {
		case !reachable[s]:
			r.Unreachable = append(r.Unreachable, s)
		case !live[s]:
			r.Dead = append(r.Dead, s)
		case def.IsAccepting(s):
			anyAccepting = true
		}
	}
	r.AcceptsNothing = !anyAccepting
	return r
}

func crawl(from []string, next func(string) []string) map[string]bool {
	visited := make(map[string]bool)
	queue := append([]string(nil), from...)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, target := range next(current) {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}
	return visited
}
