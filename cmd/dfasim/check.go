package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/dfasim"
	"github.com/aretw0/dfasim/internal/cli"
	"github.com/aretw0/dfasim/internal/presentation/tui"
	"github.com/aretw0/dfasim/internal/runtime"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <string>...",
	Short: "Evaluate the given strings",
	Long: `Evaluates each argument and prints one result line per argument.
Use "" for the empty string. With --sep each argument is split on the
separator instead of per character, for multi-character symbols.`,
	Example: `  dfasim check -s dfa_transitions.xlsx "" 1 10 101
  dfasim check -s traffic.yaml --sep , go,stop,go`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		sep, _ := cmd.Flags().GetString("sep")
		failOnReject, _ := cmd.Flags().GetBool("fail")

		logger, err := cli.CreateLogger(opts.Config, opts.Debug)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		engine, err := cli.CreateEngine(cmd.Context(), opts, logger, dfasim.WithTraceWriter(out))
		if err != nil {
			return err
		}

		rejected := 0
		for _, w := range args {
			symbols := runtime.Symbols(w)
			if sep != "" && w != "" {
				symbols = strings.Split(w, sep)
			}
			res := engine.Evaluate(symbols, opts.Trace)
			if res != domain.Accepted {
				rejected++
			}
			fmt.Fprintf(out, "Result for string '%s': %s\n", w, tui.ResultStyle(res == domain.Accepted, string(res)))
		}

		if failOnReject && rejected > 0 {
			return fmt.Errorf("%d of %d strings rejected", rejected, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("sep", "", "Split arguments into symbols on this separator")
	checkCmd.Flags().Bool("fail", false, "Exit with an error if any string is rejected")
}
