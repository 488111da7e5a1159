package main

import (
	"encoding/hex"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/verkit/internal/format"
)

var (
	dumpDepth int
	dumpHex   bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&dumpHex, "hex", false, "Show binary values as a hex dump")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the block tree of the version resource",
		Long: `The dump command prints every block of the version resource with its
offset, declared length, value type and value.

Example:
  verctl dump widget.exe
  verctl dump widget.exe --depth 2
  verctl dump widget.res --raw --hex
  verctl dump widget.exe --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

// blockNode is the JSON shape of one dumped block.
type blockNode struct {
	Key         string       `json:"key"`
	Offset      int          `json:"offset"`
	Length      uint16       `json:"length"`
	ValueLength uint16       `json:"value_length"`
	Type        string       `json:"type"`
	Text        *string      `json:"text,omitempty"`
	Hex         string       `json:"hex,omitempty"`
	Children    []*blockNode `json:"children,omitempty"`
}

func blockType(b *format.Block) string {
	if b.IsText() {
		return "text"
	}
	return "binary"
}

func toNode(b *format.Block, depth int) *blockNode {
	n := &blockNode{
		Key:         b.Key,
		Offset:      b.Offset,
		Length:      b.Length,
		ValueLength: b.ValueLength,
		Type:        blockType(b),
	}
	if len(b.Value) > 0 {
		if b.IsText() {
			s := b.Text()
			n.Text = &s
		} else {
			n.Hex = hex.EncodeToString(b.Value)
		}
	}
	if dumpDepth == 0 || depth+1 < dumpDepth {
		for i := range b.Children {
			n.Children = append(n.Children, toNode(&b.Children[i], depth+1))
		}
	}
	return n
}

func runDump(args []string) error {
	path := args[0]

	r, err := openReader(path, false)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(toNode(r.Root(), 0))
	}

	r.Root().Walk(func(b *format.Block, depth int) bool {
		if dumpDepth > 0 && depth >= dumpDepth {
			return false
		}
		indent := strings.Repeat("  ", depth)
		printInfo("%s[0x%04X] %s  len=%d vlen=%d %s", indent, b.Offset, b.Key, b.Length, b.ValueLength, blockType(b))
		switch {
		case len(b.Value) == 0:
			printInfo("\n")
		case b.IsText():
			printInfo("  %q\n", b.Text())
		case dumpHex:
			printInfo("\n")
			for _, line := range strings.Split(strings.TrimRight(hex.Dump(b.Value), "\n"), "\n") {
				printInfo("%s    %s\n", indent, line)
			}
		default:
			printInfo("  %d bytes\n", len(b.Value))
		}
		return true
	})
	return nil
}
