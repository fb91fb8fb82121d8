package main

import (
	"github.com/aretw0/dfasim/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [source]",
	Short: "Evaluate strings read from stdin",
	Long: `Loads the definition and evaluates one string per input line, printing
"Result for string '<w>': Accepted|Rejected". Prompts when stdin is a terminal.
"exit", "quit" or end of input stop the loop.

With --json every line is a request ({"input":"101"}, {"symbols":["a","b"]},
or a bare string) and every answer is one JSON object.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("source") && len(args) > 0 {
			opts.Source = args[0]
		}
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Quiet, _ = cmd.Flags().GetBool("quiet")

		return cli.RunSession(opts, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().BoolP("quiet", "q", false, "No banner")

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Args = runCmd.Args
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
