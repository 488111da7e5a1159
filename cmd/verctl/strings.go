package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/verkit/pkg/types"
)

var stringsAll bool

func init() {
	cmd := newStringsCmd()
	cmd.Flags().BoolVar(&stringsAll, "all", false, "Show every string table, not just the selected one")
	rootCmd.AddCommand(cmd)
}

func newStringsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strings <file>",
		Short: "List the entries of the string table",
		Long: `The strings command lists every name/value pair of the string table
selected for the preferred language, or of every table with --all.

Example:
  verctl strings widget.exe
  verctl strings widget.exe --all
  verctl strings widget.exe --lang 0 --codepage 04B0 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrings(args)
		},
	}
	return cmd
}

func runStrings(args []string) error {
	path := args[0]

	info, err := openInfo(path, false)
	if err != nil {
		return err
	}
	printVerbose("%s\n", describeSelection(info))

	if stringsAll {
		if jsonOut {
			tables := info.Tables
			if tables == nil {
				tables = []types.StringTable{}
			}
			return printJSON(tables)
		}
		for i, t := range info.Tables {
			if i > 0 {
				printInfo("\n")
			}
			printInfo("%s\n", paint(headerStyle, "["+t.Key+"]"))
			for _, e := range t.Entries {
				printInfo("  %s: %s\n", e.Name, e.Value)
			}
		}
		if len(info.Tables) == 0 {
			printInfo("No string tables\n")
		}
		return nil
	}

	if jsonOut {
		return printJSON(info.Strings)
	}
	if info.SelectedBy == types.SelectNone {
		printInfo("No string tables\n")
		return nil
	}
	printInfo("%s\n", paint(headerStyle, "["+info.Selected.Key()+"]"))
	printStrings(info.Strings, standardFirst)
	return nil
}
