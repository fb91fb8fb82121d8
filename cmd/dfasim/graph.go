package main

import (
	"fmt"

	"github.com/aretw0/dfasim/internal/cli"
	"github.com/aretw0/dfasim/internal/presentation/graph"
	"github.com/aretw0/dfasim/internal/runtime"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [source]",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph LR) of the automaton: circles for
states, double circles for accepting states, an entry arrow on the start
state. With --input the run over that string is highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("source") && len(args) > 0 {
			opts.Source = args[0]
		}

		logger, err := cli.CreateLogger(opts.Config, opts.Debug)
		if err != nil {
			return err
		}
		engine, err := cli.CreateEngine(cmd.Context(), opts, logger)
		if err != nil {
			return err
		}

		var overlay *graph.RunOverlay
		if cmd.Flags().Changed("input") {
			input, _ := cmd.Flags().GetString("input")
			run := engine.Run(runtime.Symbols(input))
			overlay = &graph.RunOverlay{Path: run.Path}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(engine.Definition(), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("input", "", "Highlight the run over this string")
}
