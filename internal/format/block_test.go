package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/internal/testutil"
)

func TestDecodeBlockStandard(t *testing.T) {
	data := testutil.StandardResource()

	root, err := format.DecodeBlock(data)
	require.NoError(t, err)
	assert.Equal(t, format.KeyVersionInfo, root.Key)
	assert.Equal(t, int(root.Length), len(data))
	assert.Len(t, root.Value, format.FixedFileInfoSize)
	require.Len(t, root.Children, 2)

	sfi, ok := root.Child(format.KeyStringFileInfo)
	require.True(t, ok)
	require.Len(t, sfi.Children, 1)
	table := sfi.Children[0]
	assert.Equal(t, "040904B0", table.Key)
	require.Len(t, table.Children, 8)
	assert.Equal(t, format.NameCompanyName, table.Children[0].Key)
	assert.Equal(t, "Contoso Ltd.", table.Children[0].Text())
	assert.True(t, table.Children[0].IsText())

	vfi, ok := root.Child(format.KeyVarFileInfo)
	require.True(t, ok)
	tr, ok := vfi.Child(format.KeyTranslation)
	require.True(t, ok)
	assert.Equal(t, []byte{0x09, 0x04, 0xB0, 0x04}, tr.Value)
}

func TestDecodeBlockEmptyRoot(t *testing.T) {
	data := testutil.Root(nil).Bytes()
	root, err := format.DecodeBlock(data)
	require.NoError(t, err)
	assert.Empty(t, root.Value)
	assert.Empty(t, root.Children)
}

func TestDecodeBlockUnknownKeysAreStructural(t *testing.T) {
	data := testutil.Root(nil,
		testutil.Group("SomethingElse", testutil.Text("X", "y")),
	).Bytes()
	root, err := format.DecodeBlock(data)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "SomethingElse", root.Children[0].Key)
	assert.Equal(t, "y", root.Children[0].Children[0].Text())
}

func TestDecodeBlockTruncatedAnywhere(t *testing.T) {
	data := testutil.StandardResource()
	for n := 0; n < len(data); n++ {
		_, err := format.DecodeBlock(data[:n])
		require.ErrorIs(t, err, format.ErrTruncated, "truncated to %d bytes", n)
	}
}

func TestDecodeBlockLengthTooSmall(t *testing.T) {
	data := []byte{0x04, 0x00, 0x00, 0x00, 0x00, 0x00}
	_, err := format.DecodeBlock(data)
	require.ErrorIs(t, err, format.ErrTruncated)
}

func TestDecodeBlockUnterminatedKey(t *testing.T) {
	// wLength 10 covers the header and two key characters without a NUL.
	data := []byte{0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 'A', 0x00, 'B', 0x00}
	_, err := format.DecodeBlock(data)
	require.ErrorIs(t, err, format.ErrTruncated)
}

func TestDecodeBlockChildOverrunsParent(t *testing.T) {
	child := testutil.Text("Name", "value").WithLengthDelta(64)
	data := testutil.Root(nil, testutil.Group("StringFileInfo", child)).Bytes()
	_, err := format.DecodeBlock(data)
	require.ErrorIs(t, err, format.ErrTruncated)
}

func TestDecodeBlockOverstatedValueLengthIsClamped(t *testing.T) {
	// "v\0" is 2 code units but wValueLength claims 40.
	str := testutil.Text("Name", "v").WithValueLength(40)
	data := testutil.Root(nil, testutil.StringFileInfo(testutil.Group("040904B0", str))).Bytes()

	root, err := format.DecodeBlock(data)
	require.NoError(t, err)
	s := root.Children[0].Children[0].Children[0]
	assert.Equal(t, "v", s.Text())
}

func TestDecodeBlockTrailingPaddingWithinLength(t *testing.T) {
	// Extra zero bytes declared inside the root are skipped.
	root := testutil.Root(nil, testutil.StringFileInfo(testutil.Table("040904B0", "A", "b")))
	data := root.Bytes()
	data = append(data, make([]byte, 12)...)
	format.PutU16(data, format.BlockLengthOffset, uint16(len(data)))

	blk, err := format.DecodeBlock(data)
	require.NoError(t, err)
	require.Len(t, blk.Children, 1)
	assert.Equal(t, int(blk.Length), len(data))
}

func TestDecodeBlockTrailingGarbageWithinLength(t *testing.T) {
	cases := []struct {
		name string
		tail []byte
	}{
		{"length smaller than header", []byte{0x03, 0x00, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}},
		{"key without terminator", []byte{0x10, 0x00, 0x00, 0x00, 0x01, 0x00, 'A', 0, 'B', 0, 'C', 0, 'D', 0, 'E', 0}},
		{"short non-zero tail", []byte{0x01, 0x02, 0x03, 0x04}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := testutil.StandardResource()
			tailAt := len(data)
			data = append(data, tc.tail...)
			format.PutU16(data, format.BlockLengthOffset, uint16(len(data)))

			root, err := format.DecodeBlock(data)
			require.NoError(t, err)
			require.Len(t, root.Children, 2)
			assert.Equal(t, tailAt, root.TailOffset)
			assert.Equal(t, len(tc.tail), root.TailSize)

			sfi, ok := root.Child(format.KeyStringFileInfo)
			require.True(t, ok)
			v, ok := sfi.Children[0].Child(format.NameProductName)
			require.True(t, ok)
			assert.Equal(t, "Widget Suite", v.Text())
		})
	}
}

func TestDecodeBlockTrailingGarbageInNestedNode(t *testing.T) {
	table := testutil.Table("040904B0", format.NameProductName, "Widget")
	// A String child whose key never terminates within its wLength.
	table.Children = append(table.Children, &testutil.Node{Key: "Junk", Type: format.BlockTypeText})
	data := testutil.Root(nil, testutil.StringFileInfo(table)).Bytes()

	tbl := findTable(t, data)
	junk := tbl.Children[1]
	// Replace the junk key's terminator with a non-zero code unit.
	keyEnd := junk.Offset + format.BlockHeaderSize + len("Junk")*2
	for i := keyEnd; i < junk.Offset+int(junk.Length); i++ {
		data[i] = 'Z'
	}

	root, err := format.DecodeBlock(data)
	require.NoError(t, err)
	got := root.Children[0].Children[0]
	require.Len(t, got.Children, 1)
	assert.Equal(t, "Widget", got.Children[0].Text())
	assert.Equal(t, junk.Offset, got.TailOffset)
	assert.Zero(t, root.TailSize)
}

func TestDecodeBlockZeroPaddingIsNotTail(t *testing.T) {
	data := testutil.StandardResource()
	data = append(data, make([]byte, 8)...)
	format.PutU16(data, format.BlockLengthOffset, uint16(len(data)))

	root, err := format.DecodeBlock(data)
	require.NoError(t, err)
	assert.Zero(t, root.TailOffset)
	assert.Zero(t, root.TailSize)
}

func findTable(t *testing.T, data []byte) format.Block {
	t.Helper()
	root, err := format.DecodeBlock(data)
	require.NoError(t, err)
	return root.Children[0].Children[0]
}

func TestDecodeBlockSiblingsRealigned(t *testing.T) {
	// Odd-length keys force padding between every sibling.
	data := testutil.Root(nil, testutil.StringFileInfo(testutil.Table("040904B0",
		"A", "1",
		"BBB", "22",
		"CCCCC", "333",
	))).Bytes()

	root, err := format.DecodeBlock(data)
	require.NoError(t, err)
	table := root.Children[0].Children[0]
	require.Len(t, table.Children, 3)
	for i, want := range []string{"1", "22", "333"} {
		assert.Equal(t, want, table.Children[i].Text())
		assert.Zero(t, table.Children[i].Offset%format.BlockAlignment, "child %d offset", i)
	}
}

func TestDecodeBlockDepthLimit(t *testing.T) {
	n := testutil.Group("leaf")
	for i := 0; i < format.MaxBlockDepth+1; i++ {
		n = testutil.Group("g", n)
	}
	_, err := format.DecodeBlock(n.Bytes())
	require.ErrorIs(t, err, format.ErrSanityLimit)
}

func TestDecodeBlockIdempotent(t *testing.T) {
	data := testutil.StandardResource()
	a, err := format.DecodeBlock(data)
	require.NoError(t, err)
	b, err := format.DecodeBlock(data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBlockWalk(t *testing.T) {
	root, err := format.DecodeBlock(testutil.StandardResource())
	require.NoError(t, err)

	var keys []string
	maxDepth := 0
	root.Walk(func(b *format.Block, depth int) bool {
		keys = append(keys, b.Key)
		if depth > maxDepth {
			maxDepth = depth
		}
		return b.Key != format.KeyVarFileInfo
	})
	assert.Equal(t, format.KeyVersionInfo, keys[0])
	assert.Equal(t, 3, maxDepth)
	assert.NotContains(t, keys, format.KeyTranslation)
}
