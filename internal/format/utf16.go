package format

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

// utf16le decodes little-endian UTF-16 without BOM handling. Invalid code
// units (unpaired surrogates) become U+FFFD instead of failing.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16 decodes UTF-16LE bytes to a UTF-8 string. A trailing odd byte is
// ignored. Decoding never fails; anything ill-formed is replaced with U+FFFD.
func DecodeUTF16(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	b = b[:len(b)&^1]

	// Fast path: all ASCII
	ascii := true
	for i := 0; i < len(b); i += 2 {
		if b[i+1] != 0 || b[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		var sb strings.Builder
		sb.Grow(len(b) / 2)
		for i := 0; i < len(b); i += 2 {
			sb.WriteByte(b[i])
		}
		return sb.String()
	}

	// The decoder substitutes U+FFFD rather than failing.
	out, _ := utf16le.NewDecoder().Bytes(b)
	return string(out)
}

// TrimUTF16NUL strips trailing NUL code units from a UTF-16LE value.
func TrimUTF16NUL(b []byte) []byte {
	n := len(b) &^ 1
	for n >= 2 && b[n-2] == 0 && b[n-1] == 0 {
		n -= 2
	}
	return b[:n]
}

// EncodeUTF16 encodes s as UTF-16LE without a terminator.
func EncodeUTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		PutU16(out, i*2, u)
	}
	return out
}

// ValidUTF16 reports whether b (UTF-16LE, even length) contains only
// well-formed code unit sequences.
func ValidUTF16(b []byte) bool {
	for i := 0; i+1 < len(b); i += 2 {
		u := ReadU16(b, i)
		switch {
		case u < 0xD800 || u > 0xDFFF:
		case u <= 0xDBFF && i+3 < len(b):
			lo := ReadU16(b, i+2)
			if lo < 0xDC00 || lo > 0xDFFF {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}
