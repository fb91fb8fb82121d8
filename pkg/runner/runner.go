package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/dfasim/internal/runtime"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/ports"
)

// Runner handles the evaluation loop using the provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on stdin/stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Trace forces a definition dump before every evaluation.
	Trace bool
}

// Stats summarises one Run.
type Stats struct {
	Evaluated int `json:"evaluated"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
}

// NewRunner creates a new Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates requests until the handler reports EOF (or "exit"/"quit"),
// or ctx is cancelled. EOF and cancellation are normal endings and return
// a nil error.
func (r *Runner) Run(ctx context.Context, engine ports.Evaluator) (Stats, error) {
	handler := r.resolveHandler()
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	detailed := false
	if d, ok := handler.(Detailer); ok {
		detailed = d.Detailed()
	}

	var stats Stats
	for {
		req, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				logger.Debug("Runner finished", "evaluated", stats.Evaluated)
				return stats, nil
			}
			return stats, fmt.Errorf("input error: %w", err)
		}

		resp := r.evaluate(engine, req, detailed)
		stats.Evaluated++
		if resp.Result == domain.Accepted {
			stats.Accepted++
		} else {
			stats.Rejected++
		}

		if err := handler.Output(ctx, resp); err != nil {
			return stats, fmt.Errorf("output error: %w", err)
		}
	}
}

// evaluate answers one request. A traced request goes through Evaluate so the
// dump is written; otherwise detailed handlers get the full run record.
func (r *Runner) evaluate(engine ports.Evaluator, req Request, detailed bool) Response {
	symbols := req.Symbols
	if symbols == nil {
		symbols = runtime.Symbols(req.Input)
	}
	resp := Response{Input: req.Input}
	if req.Symbols != nil {
		resp.Symbols = req.Symbols
	}

	if r.Trace || req.Trace || !detailed {
		resp.Result = engine.Evaluate(symbols, r.Trace || req.Trace)
		return resp
	}

	run := engine.Run(symbols)
	resp.Result = run.Result
	resp.Path = run.Path
	resp.Reason = run.Reason
	if run.Reason == domain.ReasonUnknownSymbol {
		pos := run.Position
		resp.Symbol = run.Symbol
		resp.Position = &pos
	}
	return resp
}

func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	return NewTextHandler(os.Stdin, os.Stdout)
}

