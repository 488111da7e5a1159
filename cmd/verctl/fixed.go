package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/verkit/internal/format"
)

func init() {
	rootCmd.AddCommand(newFixedCmd())
}

func newFixedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixed <file>",
		Short: "Show the fixed file info (VS_FIXEDFILEINFO)",
		Long: `The fixed command decodes the numeric part of the version resource:
file and product versions, flags, target OS, file type and date.

Example:
  verctl fixed widget.exe
  verctl fixed widget.exe --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixed(args)
		},
	}
	return cmd
}

// fixedReport is the JSON shape of the fixed command.
type fixedReport struct {
	FileVersion    string     `json:"file_version"`
	ProductVersion string     `json:"product_version"`
	StrucVersion   string     `json:"struc_version"`
	FileFlagsMask  uint32     `json:"file_flags_mask"`
	FileFlags      uint32     `json:"file_flags"`
	Flags          []string   `json:"flags"`
	FileOS         string     `json:"file_os"`
	FileType       string     `json:"file_type"`
	FileSubtype    uint32     `json:"file_subtype"`
	FileDate       *time.Time `json:"file_date,omitempty"`
}

func runFixed(args []string) error {
	path := args[0]

	r, err := openReader(path, false)
	if err != nil {
		return err
	}
	ffi, ok := r.Fixed()
	if !ok {
		return errors.New("no fixed file info in version resource")
	}

	rep := fixedReport{
		FileVersion:    ffi.FileVersion().String(),
		ProductVersion: ffi.ProductVersion().String(),
		StrucVersion:   fmt.Sprintf("%d.%d", ffi.StrucVersion>>16, ffi.StrucVersion&0xFFFF),
		FileFlagsMask:  ffi.FileFlagsMask,
		FileFlags:      ffi.FileFlags,
		Flags:          format.FileFlagNames(ffi.Flags()),
		FileOS:         format.FileOSString(ffi.FileOS),
		FileType:       format.FileTypeString(ffi.FileType),
		FileSubtype:    ffi.FileSubtype,
	}
	if rep.Flags == nil {
		rep.Flags = []string{}
	}
	if ts, ok := ffi.FileTime(); ok {
		rep.FileDate = &ts
	}

	if jsonOut {
		return printJSON(rep)
	}

	printInfo("\n%s\n", paint(headerStyle, "Fixed File Info:"))
	printInfo("  File version:    %s\n", rep.FileVersion)
	printInfo("  Product version: %s\n", rep.ProductVersion)
	printInfo("  Structure:       %s\n", rep.StrucVersion)
	printInfo("  Flags:           0x%02X/0x%02X %s\n", rep.FileFlags, rep.FileFlagsMask, strings.Join(rep.Flags, " "))
	printInfo("  OS:              %s\n", rep.FileOS)
	printInfo("  Type:            %s\n", rep.FileType)
	printInfo("  Subtype:         0x%08X\n", rep.FileSubtype)
	if rep.FileDate != nil {
		printInfo("  Date:            %s\n", rep.FileDate.UTC().Format(time.RFC3339))
	}
	return nil
}
