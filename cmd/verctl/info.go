package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show a summary of a file's version resource",
		Long: `The info command prints the binary file and product versions and the
standard strings of the string table best matching the preferred language.

Example:
  verctl info widget.exe
  verctl info widget.exe --lang 0407 --codepage 04B0
  verctl info widget.exe --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	info, err := openInfo(path, false)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\n%s\n", paint(headerStyle, "Version Information:"))
	printInfo("  File: %s\n", path)
	if v, ok := info.FileVersionQuad(); ok {
		printInfo("  File version (binary): %s\n", v)
	}
	if v, ok := info.ProductVersionQuad(); ok {
		printInfo("  Product version (binary): %s\n", v)
	}
	if info.Fixed != nil {
		printInfo("  Type: %s\n", format.FileTypeString(info.Fixed.FileType))
	} else {
		printInfo("  Fixed file info: %s\n", paint(mutedStyle, "not present"))
	}

	if info.SelectedBy == types.SelectNone {
		printInfo("  String table: %s\n", paint(mutedStyle, "not present"))
		return nil
	}
	printInfo("  String table: %s (%s)\n", info.Selected, info.SelectedBy)
	printVerbose("  %s\n", describeSelection(info))
	printInfo("\n%s\n", paint(headerStyle, "Strings:"))
	printStrings(info.Strings, standardFirst)
	return nil
}

// standardFirst orders the standard names first in their documented order,
// then any custom names alphabetically.
func standardFirst(m map[string]string) []string {
	names := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, n := range format.StandardNames {
		if _, ok := m[n]; ok {
			names = append(names, n)
			seen[n] = true
		}
	}
	var extra []string
	for n := range m {
		if !seen[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

func printStrings(m map[string]string, order func(map[string]string) []string) {
	names := order(m)
	width := 0
	for _, n := range names {
		if len(n) > width {
			width = len(n)
		}
	}
	for _, n := range names {
		printInfo("  %-*s  %s\n", width+1, n+":", m[n])
	}
	if len(names) == 0 {
		printInfo("  %s\n", paint(mutedStyle, "(none)"))
	}
}

// describeSelection explains a selection in a sentence for verbose output.
func describeSelection(info *types.VersionInfo) string {
	want := types.LangCodepage{Language: cfg.Language, Codepage: cfg.Codepage}
	switch info.SelectedBy {
	case types.SelectExact:
		return fmt.Sprintf("table %s matches the requested language", info.Selected)
	case types.SelectNeutral:
		return fmt.Sprintf("no table for %s; using language-neutral codepage table %s", want, info.Selected)
	case types.SelectTranslation:
		return fmt.Sprintf("no table for %s; using first translation %s", want, info.Selected)
	case types.SelectFirst:
		return fmt.Sprintf("no table for %s; using first table %s", want, info.Selected)
	default:
		return "no string tables"
	}
}
