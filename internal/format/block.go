package format

import (
	"fmt"

	"github.com/joshuapare/verkit/internal/buf"
)

// Block is one node of a version resource: the root VS_VERSIONINFO, a
// StringFileInfo/VarFileInfo group, a string table, a String or a Var. The
// layout is identical at every level, so a single walker decodes them all.
//
// Value and KeyRaw alias the buffer passed to DecodeBlock.
type Block struct {
	Offset      int // absolute offset of wLength
	Length      uint16
	ValueLength uint16
	Type        uint16
	KeyRaw      []byte // UTF-16LE, without terminator
	Key         string
	Value       []byte
	Children    []Block

	// TailOffset and TailSize locate non-zero bytes after the last child that
	// did not form a block. Both are zero when the node ends cleanly.
	TailOffset int
	TailSize   int
}

// IsText reports whether the value is a UTF-16 string.
func (b *Block) IsText() bool {
	return b.Type == BlockTypeText
}

// Child returns the first direct child whose key equals key exactly.
func (b *Block) Child(key string) (*Block, bool) {
	for i := range b.Children {
		if b.Children[i].Key == key {
			return &b.Children[i], true
		}
	}
	return nil, false
}

// Text decodes the value as UTF-16LE with trailing NULs removed.
func (b *Block) Text() string {
	return DecodeUTF16(TrimUTF16NUL(b.Value))
}

// DecodeBlock decodes the block at the start of data, including all of its
// descendants. Only structural problems are errors: an unknown key or an
// empty value is returned as-is for the caller to interpret.
func DecodeBlock(data []byte) (Block, error) {
	c := buf.NewCursor(data)
	return decodeBlock(c, 0)
}

// decodeBlock decodes one block at the cursor and leaves the cursor at the
// block's declared end.
func decodeBlock(c *buf.Cursor, depth int) (Block, error) {
	if depth >= MaxBlockDepth {
		return Block{}, fmt.Errorf("block at %d: depth %d: %w", c.Offset(), depth, ErrSanityLimit)
	}

	start := c.Offset()
	length, err := c.PeekU16()
	if err != nil {
		return Block{}, fmt.Errorf("block at %d: wLength: %w", start, ErrTruncated)
	}
	if int(length) < BlockHeaderSize {
		return Block{}, fmt.Errorf("block at %d: wLength %d smaller than header: %w",
			start, length, ErrTruncated)
	}
	if int(length) > c.Remaining() {
		return Block{}, fmt.Errorf("block at %d: wLength %d exceeds remaining %d: %w",
			start, length, c.Remaining(), ErrTruncated)
	}

	nc, err := c.Sub(int(length))
	if err != nil {
		return Block{}, fmt.Errorf("block at %d: %w", start, ErrTruncated)
	}

	blk := Block{Offset: start, Length: length}
	// The three header words are known to fit: length >= BlockHeaderSize.
	_, _ = nc.ReadU16()
	blk.ValueLength, _ = nc.ReadU16()
	blk.Type, _ = nc.ReadU16()

	blk.KeyRaw, err = nc.ReadUTF16Z()
	if err != nil {
		return Block{}, fmt.Errorf("block at %d: key: %w", start, ErrTruncated)
	}
	blk.Key = DecodeUTF16(blk.KeyRaw)
	nc.Align4()

	valueLen := int(blk.ValueLength)
	if blk.Type == BlockTypeText {
		valueLen *= 2
	}
	// Generators frequently overstate wValueLength on text values; the node
	// boundary wins over the declared value size.
	if valueLen > nc.Remaining() {
		valueLen = nc.Remaining()
	}
	blk.Value, _ = nc.ReadBytes(valueLen)
	nc.Align4()

	for nc.Remaining() >= BlockHeaderSize && startsChild(nc) {
		child, err := decodeBlock(nc, depth+1)
		if err != nil {
			return Block{}, fmt.Errorf("child of %q: %w", blk.Key, err)
		}
		blk.Children = append(blk.Children, child)
	}
	if tailAt := nc.Offset(); nc.Remaining() > 0 {
		tail, _ := nc.ReadBytes(nc.Remaining())
		if !allZero(tail) {
			blk.TailOffset, blk.TailSize = tailAt, len(tail)
		}
	}

	// The declared length is authoritative, not where the children stopped.
	if err := c.Seek(start + int(length)); err != nil {
		return Block{}, fmt.Errorf("block at %d: %w", start, ErrTruncated)
	}
	c.Align4()
	return blk, nil
}

// startsChild reports whether the bytes at the cursor can begin a child
// block: a wLength of at least a header and a key terminated within it. A
// wLength past the parent's end still counts so that decodeBlock reports it.
// Anything else is padding or garbage up to the parent's declared end.
func startsChild(c *buf.Cursor) bool {
	length, err := c.PeekU16()
	if err != nil || int(length) < BlockHeaderSize {
		return false
	}
	if int(length) > c.Remaining() {
		return true
	}
	sub, err := c.Sub(int(length))
	if err != nil {
		return false
	}
	if err := sub.Skip(BlockHeaderSize); err != nil {
		return false
	}
	_, err = sub.ReadUTF16Z()
	return err == nil
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// Walk calls fn for b and each descendant in document order. depth is 0 for b.
// Returning false from fn skips that block's children.
func (b *Block) Walk(fn func(blk *Block, depth int) bool) {
	walkBlock(b, 0, fn)
}

func walkBlock(b *Block, depth int, fn func(*Block, int) bool) {
	if !fn(b, depth) {
		return
	}
	for i := range b.Children {
		walkBlock(&b.Children[i], depth+1, fn)
	}
}
