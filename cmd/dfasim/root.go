package main

import (
	"fmt"
	"os"

	"github.com/aretw0/dfasim/internal/cli"
	"github.com/aretw0/dfasim/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dfasim",
	Short: "dfasim simulates deterministic finite automata",
	Long: `dfasim loads a DFA definition (transition table, YAML/JSON document,
loam repository, redis registry or bolt catalog) and decides whether input
strings are accepted.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("source", "s", "", "Definition source (file, directory, redis://host/name, bolt://path#name)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Bool("trace", false, "Print the definition before every evaluation")
	rootCmd.PersistentFlags().String("env-file", "", "Read configuration from this .env file")
}

// loadOptions merges config (environment, .env) with the command flags.
// Flags win when set.
func loadOptions(cmd *cobra.Command) (cli.Options, error) {
	var files []string
	if f, _ := cmd.Flags().GetString("env-file"); f != "" {
		files = append(files, f)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return cli.Options{}, err
	}

	opts := cli.Options{
		Source: cfg.Source,
		Trace:  cfg.Trace,
		Config: cfg,
	}
	if cmd.Flags().Changed("source") {
		opts.Source, _ = cmd.Flags().GetString("source")
	}
	opts.Debug, _ = cmd.Flags().GetBool("debug")
	if cmd.Flags().Changed("trace") {
		opts.Trace, _ = cmd.Flags().GetBool("trace")
	}
	return opts, nil
}
