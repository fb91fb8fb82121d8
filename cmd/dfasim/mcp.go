package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/aretw0/dfasim/internal/cli"
	"github.com/aretw0/dfasim/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp [source]",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts dfasim as an MCP Server so AI agents can evaluate strings against
the loaded automaton.

Tools: evaluate, get_definition. Resource: dfasim://definition.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("source") && len(args) > 0 {
			opts.Source = args[0]
		}
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		logger, err := cli.CreateLogger(opts.Config, opts.Debug)
		if err != nil {
			return err
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		engine, err := cli.CreateEngine(sigCtx, opts, logger)
		if err != nil {
			return err
		}

		srv := mcp.NewServer(engine, dfasimVersion(), logger)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting dfasim MCP Server (Stdio)", "definition", engine.Name)
			return srv.ServeStdio()
		case "sse":
			logger.Info("Starting dfasim MCP Server (SSE)", "port", port, "definition", engine.Name)
			if err := srv.ServeSSE(sigCtx, port); err != nil && err != http.ErrServerClosed {
				return err
			}
			logger.Info("MCP Server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
