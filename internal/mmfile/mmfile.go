// Package mmfile maps executable images read-only so the PE resource walker
// can slice them without copying.
package mmfile

import (
	"fmt"
	"os"
	"sync"
)

// File is a read-only view of a file's contents.
type File struct {
	data  []byte
	unmap func([]byte) error
	once  sync.Once
	err   error
}

// Open maps the file at path. Empty files yield an empty view.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("mmfile: %s is not a regular file", path)
	}
	size := info.Size()
	if size == 0 {
		return &File{data: []byte{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, unmap, err := mapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("mmfile: map %s: %w", path, err)
	}
	return &File{data: data, unmap: unmap}, nil
}

// Bytes returns the mapped contents. The slice is invalid after Close.
func (m *File) Bytes() []byte { return m.data }

// Close releases the mapping. It is safe to call more than once.
func (m *File) Close() error {
	m.once.Do(func() {
		if m.unmap != nil && len(m.data) > 0 {
			m.err = m.unmap(m.data)
		}
		m.data = nil
	})
	return m.err
}
