package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/dfasim/internal/cli"
	"github.com/aretw0/dfasim/internal/validator"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [source]",
	Short: "Check the definition for consistency",
	Long: `Loads the definition and reports every violation at once: unknown or
missing start state, accepting states outside Q, transitions that leave Q or
use symbols outside the alphabet, and every missing (state, symbol) pair.

A valid definition is then crawled from the start state; unreachable and dead
states are printed as warnings.`,
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
			var defErr *domain.DefinitionError
			if errors.As(err, &defErr) {
				out := cmd.OutOrStdout()
				for i, v := range defErr.Violations {
					fmt.Fprintf(out, "%d. %s\n", i+1, v)
				}
				return fmt.Errorf("validation failed: %d violations", len(defErr.Violations))
			}
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Definition is valid! ✅ %s\n", engine)
		for _, w := range validator.Analyze(engine.Definition()).Warnings() {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
