package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var diagOutputFile string

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <file>",
	Short: "Report every soft problem found in a version resource",
	Long: `Decodes the version resource and reports everything that was skipped or
decoded lossily rather than failing the parse:
  - Missing or invalid fixed file info
  - String table keys that are not language/codepage pairs
  - String values with invalid UTF-16
  - Translations without a matching string table
  - Language fallback during string table selection

Each issue is reported with the byte offset of the block that caused it.`,
	Example: `  # Text report
  verctl diagnose widget.exe

  # JSON for programmatic analysis
  verctl diagnose --json widget.exe

  # Save report to file
  verctl diagnose --output report.txt widget.exe`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagnoseCmd.Flags().StringVarP(&diagOutputFile, "output", "o", "",
		"Write report to file instead of stdout")

	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(_ *cobra.Command, args []string) error {
	path := args[0]

	r, err := openReader(path, true)
	if err != nil {
		return err
	}
	report := r.Diagnostics()

	var out []byte
	if jsonOut {
		out, err = report.FormatJSON()
		if err != nil {
			return fmt.Errorf("format report: %w", err)
		}
		out = append(out, '\n')
	} else {
		out = []byte(report.FormatText())
	}

	if diagOutputFile != "" {
		if err := os.WriteFile(diagOutputFile, out, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		printInfo("Report written to %s\n", diagOutputFile)
		return nil
	}
	if !quiet {
		os.Stdout.Write(out)
	}
	return nil
}
