// Package testutil builds synthetic version resources and PE images for tests.
package testutil

import (
	"github.com/joshuapare/verkit/internal/format"
)

// Node describes one block to serialize. Children are laid out in order with
// 4-byte padding between siblings.
type Node struct {
	Key      string
	Type     uint16
	Value    []byte
	Children []*Node

	// valueLength overrides the computed wValueLength when set.
	valueLength *uint16
	// lengthDelta is added to the computed wLength.
	lengthDelta int
}

// WithValueLength forces wValueLength to n.
func (n *Node) WithValueLength(v uint16) *Node {
	n.valueLength = &v
	return n
}

// WithLengthDelta adjusts the serialized wLength by delta bytes.
func (n *Node) WithLengthDelta(delta int) *Node {
	n.lengthDelta = delta
	return n
}

// Binary returns a node with a binary value.
func Binary(key string, value []byte, children ...*Node) *Node {
	return &Node{Key: key, Type: format.BlockTypeBinary, Value: value, Children: children}
}

// Text returns a String node whose value is s encoded as NUL-terminated UTF-16.
func Text(key, s string) *Node {
	v := append(format.EncodeUTF16(s), 0, 0)
	return &Node{Key: key, Type: format.BlockTypeText, Value: v}
}

// TextRaw returns a String node with an already encoded UTF-16 value.
func TextRaw(key string, utf16le []byte) *Node {
	return &Node{Key: key, Type: format.BlockTypeText, Value: utf16le}
}

// Group returns a node with no value, such as StringFileInfo or a string table.
func Group(key string, children ...*Node) *Node {
	return &Node{Key: key, Type: format.BlockTypeText, Children: children}
}

// Root returns a VS_VERSION_INFO node with fixed as its value.
func Root(fixed []byte, children ...*Node) *Node {
	return Binary(format.KeyVersionInfo, fixed, children...)
}

// StringFileInfo returns a StringFileInfo group holding tables.
func StringFileInfo(tables ...*Node) *Node {
	return Group(format.KeyStringFileInfo, tables...)
}

// Table returns a string table keyed by key (e.g. "040904B0") with pairs of
// name, value.
func Table(key string, pairs ...string) *Node {
	n := Group(key)
	for i := 0; i+1 < len(pairs); i += 2 {
		n.Children = append(n.Children, Text(pairs[i], pairs[i+1]))
	}
	return n
}

// VarFileInfo returns a VarFileInfo group with a Translation block listing
// pairs in order.
func VarFileInfo(pairs ...format.Translation) *Node {
	v := make([]byte, len(pairs)*format.TranslationEntrySize)
	for i, p := range pairs {
		format.PutU16(v, i*4, p.Language)
		format.PutU16(v, i*4+2, p.Codepage)
	}
	return Group(format.KeyVarFileInfo, Binary(format.KeyTranslation, v))
}

// Fixed serializes a VS_FIXEDFILEINFO. The signature is filled in when zero.
func Fixed(f format.FixedFileInfo) []byte {
	if f.Signature == 0 {
		f.Signature = format.FixedFileInfoSignature
	}
	b := make([]byte, format.FixedFileInfoSize)
	for i, v := range []uint32{
		f.Signature, f.StrucVersion,
		f.FileVersionMS, f.FileVersionLS,
		f.ProductVersionMS, f.ProductVersionLS,
		f.FileFlagsMask, f.FileFlags,
		f.FileOS, f.FileType, f.FileSubtype,
		f.FileDateMS, f.FileDateLS,
	} {
		format.PutU32(b, i*4, v)
	}
	return b
}

// Bytes serializes the node. Offsets are computed from the node start, which
// matches buffer-relative alignment as long as the node starts 4-aligned.
func (n *Node) Bytes() []byte {
	out := make([]byte, format.BlockHeaderSize)
	out = append(out, format.EncodeUTF16(n.Key)...)
	out = append(out, 0, 0)
	out = pad4(out)
	out = append(out, n.Value...)
	if len(n.Children) > 0 {
		out = pad4(out)
	}
	for i, c := range n.Children {
		out = append(out, c.Bytes()...)
		if i < len(n.Children)-1 {
			out = pad4(out)
		}
	}

	vl := uint16(len(n.Value))
	if n.Type == format.BlockTypeText {
		vl = uint16(len(n.Value) / 2)
	}
	if n.valueLength != nil {
		vl = *n.valueLength
	}
	format.PutU16(out, format.BlockLengthOffset, uint16(len(out)+n.lengthDelta))
	format.PutU16(out, format.BlockValueLengthOffset, vl)
	format.PutU16(out, format.BlockTypeOffset, n.Type)
	return out
}

func pad4(b []byte) []byte {
	for len(b)%format.BlockAlignment != 0 {
		b = append(b, 0)
	}
	return b
}

// StandardResource returns a typical resource: fixed info 1.2.3.4 /
// 5.6.7.8, one 040904B0 table and a matching Translation entry.
func StandardResource() []byte {
	return Root(
		Fixed(format.FixedFileInfo{
			StrucVersion:     0x00010000,
			FileVersionMS:    0x00010002,
			FileVersionLS:    0x00030004,
			ProductVersionMS: 0x00050006,
			ProductVersionLS: 0x00070008,
			FileFlagsMask:    0x3F,
			FileOS:           format.VOSNTWindows32,
			FileType:         format.VFTApp,
		}),
		StringFileInfo(Table("040904B0",
			format.NameCompanyName, "Contoso Ltd.",
			format.NameFileDescription, "Contoso Widget",
			format.NameFileVersion, "1.2.3.4",
			format.NameInternalName, "widget",
			format.NameLegalCopyright, "Copyright (C) Contoso",
			format.NameOriginalFilename, "widget.exe",
			format.NameProductName, "Widget Suite",
			format.NameProductVersion, "5.6.7.8",
		)),
		VarFileInfo(format.Translation{Language: 0x0409, Codepage: 0x04B0}),
	).Bytes()
}
