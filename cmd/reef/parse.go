package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reef/internal/diagfmt"
	"reef/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.rf|directory>",
	Short: "Parse a reef script or directory and output the AST",
	Long:  `Parse analyzes a reef script or all *.rf files in a directory and outputs their syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	st, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	opts := driver.ParseOptions{MaxDiagnostics: maxDiagnostics(cmd)}

	var results []*driver.ParseResult
	if st.IsDir() {
		jobs, _ := cmd.Flags().GetInt("jobs")
		results, err = driver.ParseDir(cmd.Context(), args[0], opts, jobs)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
	} else {
		result, err := driver.ParseFile(args[0], opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		results = append(results, result)
	}

	hadErrors := false
	for _, result := range results {
		if result.Bag.Len() > 0 {
			result.Bag.Sort()
			diagfmt.Pretty(os.Stderr, result.Bag, result.Set.Files(), diagfmt.PrettyOpts{
				Color: useColor(cmd, os.Stderr),
			})
		}
		hadErrors = hadErrors || result.Bag.HasErrors()

		switch format {
		case "pretty":
			if err := diagfmt.FormatBlockPretty(os.Stdout, result.Block, result.Set.Files()); err != nil {
				return err
			}
		case "json":
			if err := diagfmt.JSON(os.Stdout, result.Bag, result.Set.Files(), diagfmt.JSONOpts{
				IncludePositions: true,
			}); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	if hadErrors {
		os.Exit(1)
	}
	return nil
}
