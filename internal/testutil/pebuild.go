package testutil

import (
	"encoding/binary"
)

// PE layout used by BuildPE. Everything fits in one file alignment unit
// before the .rsrc section.
const (
	peHeaderOffset     = 0x40
	peRsrcFileOffset   = 0x200
	peRsrcRVA          = 0x1000
	peOptional32Size   = 224
	peOptional64Size   = 240
	peSectionHdrSize   = 40
	peResourceDirIndex = 2

	peMachineI386  = 0x014c
	peMachineAMD64 = 0x8664

	rtVersion = 16
	rtIcon    = 3
)

// PEOptions controls BuildPE.
type PEOptions struct {
	// PE32Plus emits a 64-bit optional header.
	PE32Plus bool
	// OmitVersion leaves RT_VERSION out of the resource tree.
	OmitVersion bool
	// OmitResources produces an image with no resource data directory.
	OmitResources bool
	// ExtraIcon adds an RT_ICON type ahead of RT_VERSION.
	ExtraIcon bool
	// Language is the language ID of the RT_VERSION leaf. Zero means 0x0409.
	Language uint16
}

// BuildPE returns a minimal PE image whose .rsrc section carries res as the
// RT_VERSION resource.
func BuildPE(res []byte, opts PEOptions) []byte {
	rsrc := buildResourceSection(res, opts)

	optSize := peOptional32Size
	if opts.PE32Plus {
		optSize = peOptional64Size
	}
	img := make([]byte, peRsrcFileOffset+len(rsrc))

	// DOS header
	img[0], img[1] = 'M', 'Z'
	binary.LittleEndian.PutUint32(img[0x3c:], peHeaderOffset)

	// NT signature + COFF file header
	copy(img[peHeaderOffset:], []byte{'P', 'E', 0, 0})
	fh := img[peHeaderOffset+4:]
	machine := uint16(peMachineI386)
	if opts.PE32Plus {
		machine = peMachineAMD64
	}
	binary.LittleEndian.PutUint16(fh[0:], machine)
	binary.LittleEndian.PutUint16(fh[2:], 1) // NumberOfSections
	binary.LittleEndian.PutUint16(fh[16:], uint16(optSize))
	binary.LittleEndian.PutUint16(fh[18:], 0x0102)

	// Optional header
	oh := img[peHeaderOffset+24:]
	ddOff := 96
	if opts.PE32Plus {
		binary.LittleEndian.PutUint16(oh[0:], 0x20b)
		binary.LittleEndian.PutUint32(oh[108:], 16)
		ddOff = 112
	} else {
		binary.LittleEndian.PutUint16(oh[0:], 0x10b)
		binary.LittleEndian.PutUint32(oh[92:], 16)
	}
	binary.LittleEndian.PutUint32(oh[32:], peRsrcRVA) // SectionAlignment
	binary.LittleEndian.PutUint32(oh[36:], 0x200)     // FileAlignment
	if !opts.OmitResources {
		dd := oh[ddOff+peResourceDirIndex*8:]
		binary.LittleEndian.PutUint32(dd[0:], peRsrcRVA)
		binary.LittleEndian.PutUint32(dd[4:], uint32(len(rsrc)))
	}

	// Section table
	sh := img[peHeaderOffset+24+optSize:]
	copy(sh[0:8], ".rsrc")
	binary.LittleEndian.PutUint32(sh[8:], uint32(len(rsrc)))  // VirtualSize
	binary.LittleEndian.PutUint32(sh[12:], peRsrcRVA)         // VirtualAddress
	binary.LittleEndian.PutUint32(sh[16:], uint32(len(rsrc))) // SizeOfRawData
	binary.LittleEndian.PutUint32(sh[20:], peRsrcFileOffset)  // PointerToRawData
	binary.LittleEndian.PutUint32(sh[36:], 0x40000040)

	copy(img[peRsrcFileOffset:], rsrc)
	return img
}

// buildResourceSection lays out: root directory, one type directory per
// type, one name directory, one language directory per type, data entries,
// then the payloads.
func buildResourceSection(res []byte, opts PEOptions) []byte {
	lang := opts.Language
	if lang == 0 {
		lang = 0x0409
	}
	type leaf struct {
		typeID  uint32
		payload []byte
	}
	var leaves []leaf
	if opts.ExtraIcon {
		leaves = append(leaves, leaf{rtIcon, []byte{0xde, 0xad, 0xbe, 0xef}})
	}
	if !opts.OmitVersion {
		leaves = append(leaves, leaf{rtVersion, res})
	}

	const dirSize, entrySize, dataEntrySize = 16, 8, 16
	n := len(leaves)
	rootSize := dirSize + n*entrySize
	// per leaf: name dir (1 entry) + lang dir (1 entry) + data entry
	perLeaf := 2*(dirSize+entrySize) + dataEntrySize
	payloadStart := rootSize + n*perLeaf
	size := payloadStart
	payloadOff := make([]int, n)
	for i, l := range leaves {
		payloadOff[i] = size
		size += len(l.payload)
		size = (size + 7) &^ 7
	}
	b := make([]byte, size)

	binary.LittleEndian.PutUint16(b[14:], uint16(n)) // NumberOfIdEntries
	for i, l := range leaves {
		nameDir := rootSize + i*perLeaf
		langDir := nameDir + dirSize + entrySize
		dataEntry := langDir + dirSize + entrySize

		e := b[dirSize+i*entrySize:]
		binary.LittleEndian.PutUint32(e[0:], l.typeID)
		binary.LittleEndian.PutUint32(e[4:], 0x80000000|uint32(nameDir))

		binary.LittleEndian.PutUint16(b[nameDir+14:], 1)
		binary.LittleEndian.PutUint32(b[nameDir+dirSize:], 1)
		binary.LittleEndian.PutUint32(b[nameDir+dirSize+4:], 0x80000000|uint32(langDir))

		binary.LittleEndian.PutUint16(b[langDir+14:], 1)
		binary.LittleEndian.PutUint32(b[langDir+dirSize:], uint32(lang))
		binary.LittleEndian.PutUint32(b[langDir+dirSize+4:], uint32(dataEntry))

		binary.LittleEndian.PutUint32(b[dataEntry:], peRsrcRVA+uint32(payloadOff[i]))
		binary.LittleEndian.PutUint32(b[dataEntry+4:], uint32(len(l.payload)))

		copy(b[payloadOff[i]:], l.payload)
	}
	return b
}
