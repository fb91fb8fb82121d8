package runtime

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/dfasim/pkg/domain"
)

// Engine is the core DFA runner.
//
// It holds a validated, private copy of a definition compiled into a dense
// transition table. An Engine is never mutated after NewEngine returns, so any
// number of goroutines may evaluate against it without coordination.
type Engine struct {
	def domain.Definition

	stateIndex  map[string]int
	symbolIndex map[string]int
	table       [][]int // table[state][symbol] = next state
	accepting   []bool
	start       int

	logger *slog.Logger
	hooks  domain.LifecycleHooks
	trace  io.Writer
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithTraceWriter sets where traced evaluations dump the definition.
// Each dump is written with a single Write call.
func WithTraceWriter(w io.Writer) EngineOption {
	return func(e *Engine) {
		if w != nil {
			e.trace = w
		}
	}
}

// NewEngine validates def and compiles it.
// It fails with a *domain.DefinitionError listing every violated invariant.
func NewEngine(def domain.Definition, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		trace:  io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}

	norm := def.Normalize()
	if err := norm.Validate(); err != nil {
		e.logger.Debug("Definition rejected", "definition", def.Name, "err", err)
		return nil, err
	}

	e.def = norm
	e.compile()

	e.logger.Debug("Definition compiled",
		"definition", norm.Name,
		"states", len(norm.States),
		"symbols", len(norm.Alphabet),
		"accepting", len(norm.Accepting))

	return e, nil
}

// compile builds the dense table. It assumes the definition is valid.
func (e *Engine) compile() {
	e.stateIndex = make(map[string]int, len(e.def.States))
	for i, s := range e.def.States {
		e.stateIndex[s] = i
	}
	e.symbolIndex = make(map[string]int, len(e.def.Alphabet))
	for i, sym := range e.def.Alphabet {
		e.symbolIndex[sym] = i
	}

	e.table = make([][]int, len(e.def.States))
	for i, s := range e.def.States {
		row := make([]int, len(e.def.Alphabet))
		for j, sym := range e.def.Alphabet {
			next, _ := e.def.Next(s, sym)
			row[j] = e.stateIndex[next]
		}
		e.table[i] = row
	}

	e.accepting = make([]bool, len(e.def.States))
	for _, s := range e.def.Accepting {
		e.accepting[e.stateIndex[s]] = true
	}
	e.start = e.stateIndex[e.def.Start]
}

// Definition returns a copy of the validated definition.
func (e *Engine) Definition() domain.Definition {
	return e.def.Clone()
}

// Name returns the definition's label.
func (e *Engine) Name() string {
	return e.def.Name
}

func (e *Engine) emit(input []string, run domain.Run, traced bool, started time.Time) {
	if e.hooks.OnEvaluate == nil {
		return
	}
	e.hooks.OnEvaluate(&domain.EvaluationEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventEvaluate,
		},
		Definition: e.def.Name,
		Symbols:    len(input),
		Run:        run,
		Traced:     traced,
		Duration:   time.Since(started),
	})
}
