package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrSanityLimit indicates a structure exceeded a hard limit such as nesting depth.
	ErrSanityLimit = errors.New("format: sanity limit exceeded")
	// ErrBadKey indicates a language block key that is not eight hex digits.
	ErrBadKey = errors.New("format: malformed language/codepage key")
)
