package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/pkg/verinfo"
)

var queryCopy bool

func init() {
	cmd := newQueryCmd()
	cmd.Flags().BoolVar(&queryCopy, "copy", false, "Also copy a text value to the clipboard")
	rootCmd.AddCommand(cmd)
}

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <file> <path>",
		Short: "Read one value by VerQueryValue path",
		Long: `The query command resolves a VerQueryValue-style path and prints the
value found there. Segments match case-insensitively; "/" may be used
instead of "\".

Example:
  verctl query widget.exe '\StringFileInfo\040904B0\ProductName'
  verctl query widget.exe /VarFileInfo/Translation
  verctl query widget.exe '\' --json
  verctl query widget.exe '\StringFileInfo\040904B0\FileVersion' --copy`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args)
		},
	}
	return cmd
}

type queryResult struct {
	Path string  `json:"path"`
	Key  string  `json:"key"`
	Type string  `json:"type"`
	Text *string `json:"text,omitempty"`
	Hex  string  `json:"hex"`
}

func runQuery(args []string) error {
	path, query := args[0], args[1]

	data, err := loadResource(path)
	if err != nil {
		return err
	}
	v, err := verinfo.QueryValue(data, query)
	if err != nil {
		return fmt.Errorf("query %s: %w", query, err)
	}

	res := queryResult{Path: query, Key: v.Key, Type: "binary", Hex: hex.EncodeToString(v.Raw)}
	if v.Text {
		s := v.String()
		res.Type = "text"
		res.Text = &s
	}

	if queryCopy && res.Text != nil {
		if err := clipboard.WriteAll(*res.Text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		printVerbose("Copied %d characters to the clipboard\n", len(*res.Text))
	}

	if jsonOut {
		return printJSON(res)
	}
	switch {
	case res.Text != nil:
		printInfo("%s\n", *res.Text)
	case strings.EqualFold(v.Key, format.KeyTranslation):
		for _, tr := range format.DecodeTranslations(v.Raw) {
			printInfo("%s\n", tr.Key())
		}
	default:
		printInfo("%s", hex.Dump(v.Raw))
	}
	return nil
}
