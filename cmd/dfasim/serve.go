package main

import (
	"github.com/aretw0/dfasim"
	"github.com/aretw0/dfasim/internal/cli"
	httpAdapter "github.com/aretw0/dfasim/pkg/adapters/http"
	"github.com/aretw0/dfasim/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [source]",
	Short: "Start the HTTP evaluation server",
	Long: `Serves the definition over HTTP:

  POST /evaluate    {"input":"101"} -> {"input":"101","result":"Accepted","path":[...]}
  GET  /definition  GET /graph  GET /health  GET /info  GET /metrics`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("source") && len(args) > 0 {
			opts.Source = args[0]
		}
		addr := opts.Config.HTTPAddr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		logger, err := cli.CreateLogger(opts.Config, opts.Debug)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return err
		}
		opts.Hooks = append(opts.Hooks, metrics.Hooks())

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		// Traced requests dump to the server log stream, not to clients.
		engine, err := cli.CreateEngine(sigCtx, opts, logger, dfasim.WithTraceWriter(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}

		handler := httpAdapter.NewHandler(engine,
			httpAdapter.WithVersion(dfasimVersion()),
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(reg),
		)
		logger.Info("Serving definition", "definition", engine.Name, "states", len(engine.Definition().States))
		return httpAdapter.ListenAndServe(sigCtx, addr, handler, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on (default from DFASIM_HTTP_ADDR)")
}
