package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/dfasim"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dfasim",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dfasim version %s\n", dfasimVersion())
	},
}

func dfasimVersion() string {
	return strings.TrimSpace(dfasim.Version)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
