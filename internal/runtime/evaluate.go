package runtime

import (
	"time"

	"github.com/aretw0/dfasim/pkg/domain"
)

// Evaluate decides whether input is accepted.
//
// An empty input is the epsilon case: Accepted iff the start state is accepting.
// A symbol outside the alphabet rejects immediately; that is an ordinary
// outcome, not an error. When trace is true the definition is dumped to the
// trace writer before the walk starts.
func (e *Engine) Evaluate(input []string, trace bool) domain.Result {
	started := time.Now()
	if trace {
		e.writeTrace()
	}
	run := e.walk(input, false)
	e.emit(input, run, trace, started)
	return run.Result
}

// EvaluateString splits w into one symbol per code point and evaluates it.
func (e *Engine) EvaluateString(w string, trace bool) domain.Result {
	return e.Evaluate(Symbols(w), trace)
}

// Run walks input like Evaluate and returns the full record: the visited path
// and, for rejections, why the walk failed.
func (e *Engine) Run(input []string) domain.Run {
	started := time.Now()
	run := e.walk(input, true)
	e.emit(input, run, false, started)
	return run
}

// walk is the transition loop. The path is only recorded when asked for so that
// Evaluate stays allocation free.
func (e *Engine) walk(input []string, record bool) domain.Run {
	current := e.start
	var run domain.Run
	if record {
		run.Path = make([]string, 0, len(input)+1)
		run.Path = append(run.Path, e.def.States[current])
	}

	for i, symbol := range input {
		col, ok := e.symbolIndex[symbol]
		if !ok {
			run.Result = domain.Rejected
			run.Reason = domain.ReasonUnknownSymbol
			run.Position = i
			run.Symbol = symbol
			return run
		}
		current = e.table[current][col]
		if record {
			run.Path = append(run.Path, e.def.States[current])
		}
	}

	if e.accepting[current] {
		run.Result = domain.Accepted
		return run
	}
	run.Result = domain.Rejected
	run.Reason = domain.ReasonNonAccepting
	return run
}

// Symbols splits a string into single code point symbols.
func Symbols(w string) []string {
	out := make([]string, 0, len(w))
	for _, r := range w {
		out = append(out, string(r))
	}
	return out
}
