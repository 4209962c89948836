// Package main provides the sheetops CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dmarkov/sheetops/pkg/sheetops"
	"github.com/dmarkov/sheetops/pkg/sheetops/ops"
)

var (
	sheetName  string
	outputPath string
	dryRun     bool
	debug      bool
	pretty     bool
	separator  string
	fillValue  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetops",
		Short: "Administrative column edits for xlsx workbooks",
		Long: `sheetops applies header-addressed column operations (merge, remove,
copy, add, regex replace, extract) to Excel workbooks. Columns are
located by matching header text in row 1 of the target sheet.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&sheetName, "sheet", "s", "", "Worksheet to operate on (default: first sheet)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: edit in place)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Apply operations without saving")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Verbose console logging")

	rootCmd.AddCommand(
		newMergeCmd(),
		newRemoveCmd(),
		newCopyCmd(),
		newAddCmd(),
		newReplaceCmd(),
		newExtractCmd(),
		newRunCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [input.xlsx] [target] [source]",
		Short: "Merge the source column into the target column and remove the source",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyOps(args[0], ops.MergeColumns{
				Target:    args[1],
				Source:    args[2],
				Separator: separator,
			})
		},
	}
	cmd.Flags().StringVar(&separator, "separator", " ", "Separator between merged values")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [input.xlsx] [header]",
		Short: "Remove the column with the given header",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyOps(args[0], ops.RemoveColumn{Header: args[1]})
		},
	}
}

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy [input.xlsx] [source] [target]",
		Short: "Copy a column's values into another column, appending it if missing",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyOps(args[0], ops.CopyColumn{Source: args[1], Target: args[2]})
		},
	}
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [input.xlsx] [header]",
		Short: "Append a new column with the given header",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyOps(args[0], ops.AddColumn{Header: args[1], Fill: fillValue})
		},
	}
	cmd.Flags().StringVar(&fillValue, "fill", "", "Value written into every existing data row")
	return cmd
}

func newReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace [input.xlsx] [header] [pattern] [replacement]",
		Short: "Rewrite a column's cells with a regular expression",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyOps(args[0], ops.RegexReplace{
				Header:      args[1],
				Pattern:     args[2],
				Replacement: args[3],
			})
		},
	}
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [input.xlsx] [header]",
		Short: "Print a column's values as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := sheetops.Run(args[0],
				[]ops.Op{ops.ExtractColumn{Header: args[1]}},
				sheetops.Options{Sheet: sheetName, DryRun: true})
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return fmt.Errorf("column %q not found", args[1])
			}

			data, err := toJSON(results[0].Values, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				return os.WriteFile(outputPath, data, 0644)
			}
			fmt.Println(string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [input.xlsx] [pipeline file]",
		Short: "Apply a pipeline of operations declared in a config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := sheetops.LoadPipeline(args[1])
			if err != nil {
				return err
			}

			opList, err := p.Ops(sheetops.DefaultRegistry())
			if err != nil {
				return err
			}

			// Flags win over pipeline-file settings.
			opts := sheetops.Options{Sheet: sheetName, OutputPath: outputPath, DryRun: dryRun}
			if opts.Sheet == "" {
				opts.Sheet = p.Sheet
			}
			if opts.OutputPath == "" {
				opts.OutputPath = p.Output
			}

			return applyWithOptions(args[0], opList, opts)
		},
	}
}

func applyOps(path string, opList ...ops.Op) error {
	opts := sheetops.Options{Sheet: sheetName, OutputPath: outputPath, DryRun: dryRun}
	return applyWithOptions(path, opList, opts)
}

func applyWithOptions(path string, opList []ops.Op, opts sheetops.Options) error {
	results, err := sheetops.Run(path, opList, opts)
	if err != nil {
		return err
	}

	for _, res := range results {
		log.Info().
			Str("op", res.Op).
			Str("column", res.Column).
			Int("cells_changed", res.CellsChanged).
			Msg("done")
	}
	return nil
}

func toJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
