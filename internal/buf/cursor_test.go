package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorReads(t *testing.T) {
	c := NewCursor([]byte{0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0xAA, 0xBB})

	v16, err := c.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), v16)

	v32, err := c.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), v32)
	require.Equal(t, 6, c.Offset())
	require.Equal(t, 2, c.Remaining())

	b, err := c.ReadBytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB}, b)
	require.Zero(t, c.Remaining())
}

func TestCursorTruncation(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03})
	_, err := c.ReadU32()
	require.ErrorIs(t, err, ErrTruncated)
	require.Equal(t, 0, c.Offset(), "failed read must not advance")

	_, err = c.ReadBytes(4)
	require.ErrorIs(t, err, ErrTruncated)
	_, err = c.ReadBytes(-1)
	require.ErrorIs(t, err, ErrTruncated)

	require.NoError(t, c.Skip(2))
	_, err = c.ReadU16()
	require.ErrorIs(t, err, ErrTruncated)
	_, err = c.PeekU16()
	require.ErrorIs(t, err, ErrTruncated)
}

func TestAlign4(t *testing.T) {
	for in, want := range map[int]int{0: 0, 1: 4, 3: 4, 4: 4, 5: 8, 6: 8, 38: 40} {
		require.Equal(t, want, Align4(in), "Align4(%d)", in)
	}
	prev := 0
	for n := 0; n < 1024; n++ {
		got := Align4(n)
		require.GreaterOrEqual(t, got, n)
		require.LessOrEqual(t, got-n, 3)
		require.Zero(t, got%4)
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestCursorAlign4(t *testing.T) {
	data := make([]byte, 10)
	c := NewCursor(data)

	c.Align4()
	require.Equal(t, 0, c.Offset(), "aligned offset must not move")

	require.NoError(t, c.Skip(1))
	c.Align4()
	require.Equal(t, 4, c.Offset())

	require.NoError(t, c.Skip(5))
	c.Align4()
	require.Equal(t, 10, c.Offset(), "align clamps to end")

	c.Align4()
	require.Equal(t, 10, c.Offset())
}

func TestCursorAlign4NeverPassesBoundary(t *testing.T) {
	data := make([]byte, 64)
	for start := 0; start < 16; start++ {
		for n := 0; n <= 8; n++ {
			parent := NewCursor(data)
			require.NoError(t, parent.Skip(start))
			sub, err := parent.Sub(n)
			require.NoError(t, err)
			before := sub.Offset()
			sub.Align4()
			require.GreaterOrEqual(t, sub.Offset(), before)
			require.LessOrEqual(t, sub.Offset(), start+n)
		}
	}
}

func TestCursorSubUsesParentOrigin(t *testing.T) {
	data := make([]byte, 16)
	c := NewCursor(data)
	require.NoError(t, c.Skip(6))

	sub, err := c.Sub(8)
	require.NoError(t, err)
	require.Equal(t, 6, sub.Offset())
	require.Equal(t, 14, sub.End())

	sub.Align4()
	require.Equal(t, 8, sub.Offset(), "alignment is relative to the buffer start")
	require.Equal(t, 6, c.Offset(), "parent is not advanced")

	_, err = c.Sub(11)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestCursorSeek(t *testing.T) {
	c := NewCursor(make([]byte, 8))
	require.NoError(t, c.Seek(4))
	require.Error(t, c.Seek(2), "seek backwards")
	require.Error(t, c.Seek(9), "seek past end")
	require.NoError(t, c.Seek(8))
	require.Zero(t, c.Remaining())
}

func TestCursorReadUTF16Z(t *testing.T) {
	// "AB\0" followed by padding
	c := NewCursor([]byte{'A', 0, 'B', 0, 0, 0, 0xFF, 0xFF})
	s, err := c.ReadUTF16Z()
	require.NoError(t, err)
	require.Equal(t, []byte{'A', 0, 'B', 0}, s)
	require.Equal(t, 6, c.Offset())

	// terminator must be code-unit aligned
	c = NewCursor([]byte{'A', 0, 0, 'B'})
	_, err = c.ReadUTF16Z()
	require.ErrorIs(t, err, ErrTruncated)
	require.Equal(t, 0, c.Offset())

	c = NewCursor([]byte{0, 0})
	s, err = c.ReadUTF16Z()
	require.NoError(t, err)
	require.Empty(t, s)
}
