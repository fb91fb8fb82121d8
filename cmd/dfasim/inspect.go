package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/dfasim/internal/cli"
	"github.com/aretw0/dfasim/internal/presentation/tui"
	"github.com/aretw0/dfasim/internal/runtime"
	"github.com/aretw0/dfasim/pkg/adapters/file"
	"github.com/aretw0/dfasim/pkg/adapters/table"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [source]",
	Short: "Print the loaded definition",
	Long: `Prints the validated definition in one of several formats:

  markdown  rendered table (default)
  trace     the five components, as printed by --trace
  yaml      definition document, loadable with -s file.yaml
  json      definition document as JSON
  csv       transition table in the spreadsheet layout
  xlsx      transition workbook, written to --out

Converting between formats is inspect plus a redirect.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("source") && len(args) > 0 {
			opts.Source = args[0]
		}
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		logger, err := cli.CreateLogger(opts.Config, opts.Debug)
		if err != nil {
			return err
		}
		engine, err := cli.CreateEngine(cmd.Context(), opts, logger)
		if err != nil {
			return err
		}
		return writeDefinition(cmd.OutOrStdout(), engine.Definition(), format, outPath)
	},
}

func writeDefinition(w io.Writer, def domain.Definition, format, outPath string) error {
	switch format {
	case "markdown", "md":
		rendered, err := tui.NewRenderer()(tui.DefinitionMarkdown(def))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, rendered)
		return err
	case "trace":
		_, err := io.WriteString(w, runtime.FormatDefinition(def))
		return err
	case "yaml", "yml":
		data, err := file.Marshal(def)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(def)
	case "csv":
		return table.WriteCSV(w, def)
	case "xlsx":
		if outPath == "" {
			return fmt.Errorf("xlsx output needs --out")
		}
		if err := table.SaveWorkbook(outPath, def); err != nil {
			return err
		}
		fmt.Fprintf(w, "Wrote %s\n", outPath)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringP("format", "f", "markdown", "Output format: markdown, trace, yaml, json, csv, xlsx")
	inspectCmd.Flags().StringP("out", "o", "", "Output file (xlsx only)")
}
