package verinfo

import (
	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/internal/reader"
	"github.com/joshuapare/verkit/pkg/types"
)

// Value is the result of QueryValue.
type Value struct {
	// Key is the stored key of the block the path resolved to.
	Key string
	// Text reports whether the block's value is a UTF-16 string.
	Text bool
	// Raw is a copy of the value bytes.
	Raw []byte
}

// String decodes Raw as UTF-16 with trailing NULs removed. It is meaningful
// for text values and string-table entries.
func (v Value) String() string {
	return format.DecodeUTF16(format.TrimUTF16NUL(v.Raw))
}

// QueryValue resolves a VerQueryValue-style path against a raw resource:
//
//	\                                    the VS_FIXEDFILEINFO bytes
//	\VarFileInfo\Translation             language/codepage pairs
//	\StringFileInfo\040904B0\ProductName a single string
//
// Path segments match case-insensitively. A path naming no block returns an
// error matching types.ErrNotFound.
func QueryValue(data []byte, path string) (Value, error) {
	r, err := reader.OpenBytes(data, types.ParseOptions{})
	if err != nil {
		return Value{}, err
	}
	blk, err := r.Query(path)
	if err != nil {
		return Value{}, err
	}
	raw := make([]byte, len(blk.Value))
	copy(raw, blk.Value)
	return Value{Key: blk.Key, Text: blk.IsText(), Raw: raw}, nil
}
