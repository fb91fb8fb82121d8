package dfasim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/dfasim/internal/runtime"
	"github.com/aretw0/dfasim/pkg/adapters/memory"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/ports"
)

// Engine is the high-level entry point for the dfasim library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime     *runtime.Engine
	loader      ports.DefinitionLoader
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	traceWriter io.Writer
	Name        string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom DefinitionLoader, bypassing source resolution.
func WithLoader(l ports.DefinitionLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTraceWriter sets where traced evaluations dump the definition.
// Defaults to stdout.
func WithTraceWriter(w io.Writer) Option {
	return func(e *Engine) {
		e.traceWriter = w
	}
}

// New loads a definition from source and compiles it.
// See ParseSource for the accepted forms. With WithLoader, source is only a
// label and may be empty.
//
// A source that cannot be found fails with *domain.SourceUnavailableError; an
// invalid definition fails with *domain.DefinitionError.
func New(ctx context.Context, source string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.traceWriter == nil {
		eng.traceWriter = os.Stdout
	}

	if eng.loader == nil {
		src, err := ParseSource(source)
		if err != nil {
			return nil, err
		}
		loader, closer, err := Open(src)
		if err != nil {
			return nil, err
		}
		defer closer.Close()
		eng.loader = loader
	}

	def, err := eng.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = source
	}
	eng.Name = def.Name
	if eng.Name != "" {
		eng.logger = eng.logger.With("definition", eng.Name)
	}

	rt, err := runtime.NewEngine(*def,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithTraceWriter(eng.traceWriter),
	)
	if err != nil {
		return nil, err
	}
	eng.runtime = rt
	return eng, nil
}

// FromDefinition compiles a literal definition.
func FromDefinition(def domain.Definition, opts ...Option) (*Engine, error) {
	return New(context.Background(), def.Name, append(opts, WithLoader(memory.NewLoader(def)))...)
}

// Evaluate decides acceptance of a symbol sequence. With trace set, the
// definition is dumped to the trace writer first.
func (e *Engine) Evaluate(input []string, trace bool) domain.Result {
	return e.runtime.Evaluate(input, trace)
}

// EvaluateString evaluates w split into one symbol per character.
func (e *Engine) EvaluateString(w string, trace bool) domain.Result {
	return e.runtime.EvaluateString(w, trace)
}

// Run evaluates and returns the full record of the walk.
func (e *Engine) Run(input []string) domain.Run {
	return e.runtime.Run(input)
}

// Definition returns a copy of the validated definition.
func (e *Engine) Definition() domain.Definition {
	return e.runtime.Definition()
}

// Loader returns the DefinitionLoader the engine was built from.
func (e *Engine) Loader() ports.DefinitionLoader {
	return e.loader
}

// String describes the engine for logs.
func (e *Engine) String() string {
	def := e.runtime.Definition()
	return fmt.Sprintf("%s (%d states, %d symbols)", e.Name, len(def.States), len(def.Alphabet))
}
