package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTranslationsCmd())
}

func newTranslationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translations <file>",
		Short: "List the language/codepage pairs declared by VarFileInfo",
		Long: `The translations command lists VarFileInfo\Translation in declaration
order and whether a string table exists for each pair.

Example:
  verctl translations widget.exe
  verctl translations widget.exe --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslations(args)
		},
	}
	return cmd
}

type translationRow struct {
	Key      string `json:"key"`
	Language uint16 `json:"language"`
	Codepage uint16 `json:"codepage"`
	HasTable bool   `json:"has_table"`
}

func runTranslations(args []string) error {
	path := args[0]

	info, err := openInfo(path, false)
	if err != nil {
		return err
	}

	rows := make([]translationRow, 0, len(info.Translations))
	for _, lc := range info.Translations {
		_, has := info.Table(lc)
		rows = append(rows, translationRow{Key: lc.Key(), Language: lc.Language, Codepage: lc.Codepage, HasTable: has})
	}

	if jsonOut {
		return printJSON(rows)
	}
	if len(rows) == 0 {
		printInfo("No translation table\n")
		return nil
	}
	for _, row := range rows {
		mark := ""
		if !row.HasTable {
			mark = "  " + paint(warningStyle, "(no string table)")
		}
		printInfo("%s  language 0x%04X  codepage %d%s\n", row.Key, row.Language, row.Codepage, mark)
	}
	return nil
}
