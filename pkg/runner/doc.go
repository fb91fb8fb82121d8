/*
Package runner implements the line-oriented evaluation loop for the dfasim engine.

It acts as the bridge between the engine and the outside world: each input line
is one word, evaluated and answered before the next is read. The interaction
mode is pluggable through IOHandler.

# Key Components

  - Runner: reads requests, evaluates them and writes responses until EOF, "exit" or "quit".
  - TextHandler: plain lines in, "Result for string '<w>': <Result>" out. Prompts and
    colours only when attached to a terminal.
  - JSONHandler: NDJSON requests ({"input":"101"} or {"symbols":["1","0"]}) and responses.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithLogger(logger),
	)

	stats, err := r.Run(ctx, engine)
*/
package runner
