// Package peres locates resources in the .rsrc section of a PE image.
//
// debug/pe parses the headers and section table; the resource directory tree
// itself is walked here with bounds-checked reads.
package peres

import (
	"bytes"
	"debug/pe"
	"errors"
	"fmt"

	"github.com/joshuapare/verkit/internal/buf"
)

// Resource type IDs (RT_*) used by this package.
const (
	TypeIcon    uint32 = 3
	TypeVersion uint32 = 16
)

const (
	dirHeaderSize   = 16
	dirNamedOffset  = 12
	dirIDOffset     = 14
	dirEntrySize    = 8
	dataEntrySize   = 16
	subdirFlag      = 0x80000000
	nameStringFlag  = 0x80000000
	resourceDirSlot = pe.IMAGE_DIRECTORY_ENTRY_RESOURCE
)

var (
	// ErrNoResource indicates the image has no resource of the requested type.
	ErrNoResource = errors.New("peres: resource not found")
	// ErrNotPE indicates the input is not a PE image.
	ErrNotPE = errors.New("peres: not a PE image")
	// ErrCorrupt indicates a resource directory that points outside the section.
	ErrCorrupt = errors.New("peres: corrupt resource directory")
)

// Entry is one leaf of the resource tree.
type Entry struct {
	Type     uint32
	Name     uint32 // integer ID; zero for string-named entries
	Language uint32
	Data     []byte
}

// ExtractVersion returns the first RT_VERSION resource of the image.
func ExtractVersion(data []byte) ([]byte, error) {
	entries, err := Find(data, TypeVersion)
	if err != nil {
		return nil, err
	}
	return entries[0].Data, nil
}

// Find returns every leaf under resource type typeID in directory order.
// The returned data does not alias the input.
func Find(data []byte, typeID uint32) ([]Entry, error) {
	// debug/pe accepts bare COFF objects; only images are wanted here.
	if len(data) < 2 || data[0] != 'M' || data[1] != 'Z' {
		return nil, fmt.Errorf("%w: missing MZ header", ErrNotPE)
	}
	f, err := pe.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPE, err)
	}
	defer f.Close()

	dir, ok := resourceDirectory(f)
	if !ok || dir.Size == 0 {
		return nil, fmt.Errorf("no resource directory: %w", ErrNoResource)
	}
	sec := sectionFor(f, dir.VirtualAddress)
	if sec == nil {
		return nil, fmt.Errorf("resource directory rva 0x%x outside sections: %w", dir.VirtualAddress, ErrCorrupt)
	}
	raw, err := sec.Data()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sec.Name, err)
	}
	w := &walker{
		section: raw,
		base:    int(dir.VirtualAddress - sec.VirtualAddress),
		va:      sec.VirtualAddress,
	}

	typeDir, err := w.entries(0)
	if err != nil {
		return nil, err
	}
	var out []Entry
	for _, te := range typeDir {
		if te.named || te.id != typeID || !te.subdir {
			continue
		}
		names, err := w.entries(te.offset)
		if err != nil {
			return nil, err
		}
		for _, ne := range names {
			if !ne.subdir {
				continue
			}
			langs, err := w.entries(ne.offset)
			if err != nil {
				return nil, err
			}
			for _, le := range langs {
				if le.subdir {
					continue
				}
				payload, err := w.leaf(le.offset)
				if err != nil {
					return nil, err
				}
				e := Entry{Type: typeID, Language: le.id, Data: payload}
				if !ne.named {
					e.Name = ne.id
				}
				out = append(out, e)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("type %d: %w", typeID, ErrNoResource)
	}
	return out, nil
}

func resourceDirectory(f *pe.File) (pe.DataDirectory, bool) {
	switch oh := f.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		if oh.NumberOfRvaAndSizes > resourceDirSlot {
			return oh.DataDirectory[resourceDirSlot], true
		}
	case *pe.OptionalHeader64:
		if oh.NumberOfRvaAndSizes > resourceDirSlot {
			return oh.DataDirectory[resourceDirSlot], true
		}
	}
	return pe.DataDirectory{}, false
}

func sectionFor(f *pe.File, rva uint32) *pe.Section {
	for _, s := range f.Sections {
		size := s.VirtualSize
		if s.Size > size {
			size = s.Size
		}
		if rva >= s.VirtualAddress && rva-s.VirtualAddress < size {
			return s
		}
	}
	return nil
}

type dirEntry struct {
	id     uint32
	named  bool
	subdir bool
	offset int // relative to the resource directory root
}

type walker struct {
	section []byte
	base    int    // offset of the root directory within section
	va      uint32 // section virtual address
}

func (w *walker) entries(off int) ([]dirEntry, error) {
	at, ok := buf.AddOverflowSafe(w.base, off)
	if !ok || !buf.Has(w.section, at, dirHeaderSize) {
		return nil, fmt.Errorf("directory at 0x%x: %w", off, ErrCorrupt)
	}
	count := int(buf.U16LE(w.section[at+dirNamedOffset:])) + int(buf.U16LE(w.section[at+dirIDOffset:]))
	if _, err := buf.CheckListBounds(len(w.section), at+dirHeaderSize, count, dirEntrySize); err != nil {
		return nil, fmt.Errorf("directory at 0x%x: %w: %w", off, ErrCorrupt, err)
	}
	out := make([]dirEntry, 0, count)
	for i := 0; i < count; i++ {
		e := w.section[at+dirHeaderSize+i*dirEntrySize:]
		name := buf.U32LE(e)
		target := buf.U32LE(e[4:])
		out = append(out, dirEntry{
			id:     name &^ nameStringFlag,
			named:  name&nameStringFlag != 0,
			subdir: target&subdirFlag != 0,
			offset: int(target &^ subdirFlag),
		})
	}
	return out, nil
}

func (w *walker) leaf(off int) ([]byte, error) {
	at, ok := buf.AddOverflowSafe(w.base, off)
	if !ok || !buf.Has(w.section, at, dataEntrySize) {
		return nil, fmt.Errorf("data entry at 0x%x: %w", off, ErrCorrupt)
	}
	rva := buf.U32LE(w.section[at:])
	size := buf.U32LE(w.section[at+4:])
	if rva < w.va {
		return nil, fmt.Errorf("data rva 0x%x before section: %w", rva, ErrCorrupt)
	}
	payload, ok := buf.Slice(w.section, int(rva-w.va), int(size))
	if !ok {
		return nil, fmt.Errorf("data rva 0x%x size %d: %w", rva, size, ErrCorrupt)
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}
