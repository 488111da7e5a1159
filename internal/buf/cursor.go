package buf

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned when a read would run past the end of a cursor.
var ErrTruncated = errors.New("buf: truncated buffer")

const alignMask = 3

// Align4 returns n rounded up to the next 4-byte boundary. Every key, value
// and child inside a version resource starts on such a boundary.
//
//	Align4(0) = 0
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(6) = 8
func Align4(n int) int {
	return (n + alignMask) &^ alignMask
}

// Cursor is a forward reader over a byte slice. Offsets are always relative to
// the start of the original buffer, including for cursors created with Sub, so
// alignment is computed against the same origin at every nesting level.
//
// A Cursor never reads outside [0, end) of its buffer; every short read
// returns an error wrapping ErrTruncated and leaves the offset unchanged.
type Cursor struct {
	data []byte
	off  int
	end  int
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{data: b, end: len(b)}
}

// Offset returns the current read position relative to the buffer start.
func (c *Cursor) Offset() int { return c.off }

// End returns the exclusive upper bound of the cursor.
func (c *Cursor) End() int { return c.end }

// Remaining returns the number of unread bytes before End.
func (c *Cursor) Remaining() int { return c.end - c.off }

func (c *Cursor) need(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d at offset %d", ErrTruncated, n, c.off)
	}
	if end, ok := AddOverflowSafe(c.off, n); !ok || end > c.end {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, c.off, c.Remaining())
	}
	return nil
}

// ReadU16 reads a little-endian uint16 and advances by 2.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := U16LE(c.data[c.off:])
	c.off += 2
	return v, nil
}

// ReadU32 reads a little-endian uint32 and advances by 4.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := U32LE(c.data[c.off:])
	c.off += 4
	return v, nil
}

// PeekU16 returns the next little-endian uint16 without advancing.
func (c *Cursor) PeekU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	return U16LE(c.data[c.off:]), nil
}

// ReadBytes returns the next n bytes and advances past them. The returned
// slice aliases the underlying buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.off : c.off+n : c.off+n]
	c.off += n
	return b, nil
}

// ReadUTF16Z reads UTF-16LE code units up to and including a 0x0000
// terminator and returns the bytes before the terminator. A missing
// terminator is reported as truncation and the offset is left unchanged.
func (c *Cursor) ReadUTF16Z() ([]byte, error) {
	for i := c.off; i+1 < c.end; i += 2 {
		if c.data[i] == 0 && c.data[i+1] == 0 {
			s := c.data[c.off:i:i]
			c.off = i + 2
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: unterminated UTF-16 string at offset %d", ErrTruncated, c.off)
}

// Skip advances by n bytes.
func (c *Cursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.off += n
	return nil
}

// Seek moves to an absolute offset within [Offset(), End()]. Cursors never
// move backwards.
func (c *Cursor) Seek(off int) error {
	if off < c.off || off > c.end {
		return fmt.Errorf("%w: seek to %d outside [%d, %d]", ErrTruncated, off, c.off, c.end)
	}
	c.off = off
	return nil
}

// Align4 advances to the next multiple of 4 relative to the buffer start,
// clamped to End. It is a no-op when already aligned or at the end.
func (c *Cursor) Align4() {
	next := Align4(c.off)
	if next > c.end {
		next = c.end
	}
	c.off = next
}

// Sub returns a cursor bounded to the next n bytes. The parent is not
// advanced; callers Seek past the child once they are done with it.
func (c *Cursor) Sub(n int) (*Cursor, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	return &Cursor{data: c.data, off: c.off, end: c.off + n}, nil
}
