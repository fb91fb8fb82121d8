package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/dfasim"
	"github.com/aretw0/dfasim/internal/presentation/tui"
	"github.com/aretw0/dfasim/pkg/runner"
)

// RunSession loads the definition and evaluates lines from in until EOF,
// "exit" or an interrupt.
func RunSession(opts Options, in io.Reader, out io.Writer) error {
	logger, err := CreateLogger(opts.Config, opts.Debug)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	// NDJSON output carries only JSON lines; the dump goes to stderr there.
	var traceOut io.Writer = out
	if opts.JSON {
		traceOut = os.Stderr
	}

	engine, err := CreateEngine(sigCtx, opts, logger, dfasim.WithTraceWriter(traceOut))
	if err != nil {
		return err
	}

	var handler runner.IOHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(in, out)
	} else {
		th := runner.NewTextHandler(in, out)
		if th.Interactive && !opts.Quiet {
			tui.PrintBanner(out)
			printSystemMessage(out, "Loaded %s. Type exit to quit.", engine)
		}
		handler = th
	}

	r := runner.NewRunner(
		runner.WithInputHandler(handler),
		runner.WithLogger(logger),
		runner.WithTrace(opts.Trace),
	)
	stats, runErr := r.Run(sigCtx, engine)

	logger.Debug("Session finished",
		"evaluated", stats.Evaluated,
		"accepted", stats.Accepted,
		"rejected", stats.Rejected,
	)
	if sigCtx.Signal() == os.Interrupt && !opts.JSON && !opts.Quiet {
		fmt.Fprintln(out)
		printSystemMessage(out, "Interrupted after %d evaluations.", stats.Evaluated)
	}
	return handleExecutionError(runErr)
}
