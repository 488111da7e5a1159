package format

import (
	"fmt"
	"strconv"
)

// StringEntry is one String child of a string table.
type StringEntry struct {
	Name  string
	Value string
}

// StringTable is one language/codepage block under StringFileInfo.
type StringTable struct {
	Key      string // as stored, e.g. "040904b0"
	Language uint16
	Codepage uint16
	Entries  []StringEntry // document order, names unique
	index    map[string]int
}

// Lookup returns the value stored under name. Names are matched exactly.
func (t *StringTable) Lookup(name string) (string, bool) {
	if t.index != nil {
		if i, ok := t.index[name]; ok {
			return t.Entries[i].Value, true
		}
		return "", false
	}
	for _, e := range t.Entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// Matches reports whether the table is keyed by (language, codepage).
func (t *StringTable) Matches(language, codepage uint16) bool {
	return t.Language == language && t.Codepage == codepage
}

// ParseLangCodepage parses an eight hex digit table key such as "040904B0".
func ParseLangCodepage(key string) (language, codepage uint16, err error) {
	if len(key) != LangCodepageKeyLen {
		return 0, 0, fmt.Errorf("%q: %w", key, ErrBadKey)
	}
	v, err := strconv.ParseUint(key, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", key, ErrBadKey)
	}
	return uint16(v >> 16), uint16(v), nil
}

// DecodeStringValue decodes a String block's value as UTF-16LE whatever its
// wType, since several resource compilers mark strings as binary. Trailing
// NULs and an odd trailing byte are dropped.
func DecodeStringValue(b *Block) string {
	return b.Text()
}

// DecodeStringTable builds a StringTable from a language block. When the key
// is not a valid language/codepage pair the table is still returned, with
// Language and Codepage zero, alongside an error wrapping ErrBadKey.
func DecodeStringTable(blk *Block) (StringTable, error) {
	t := StringTable{
		Key:     blk.Key,
		Entries: make([]StringEntry, 0, len(blk.Children)),
		index:   make(map[string]int, len(blk.Children)),
	}
	lang, cp, keyErr := ParseLangCodepage(blk.Key)
	t.Language, t.Codepage = lang, cp

	for i := range blk.Children {
		s := &blk.Children[i]
		if _, dup := t.index[s.Key]; dup {
			// first occurrence wins, matching the platform lookup
			continue
		}
		t.index[s.Key] = len(t.Entries)
		t.Entries = append(t.Entries, StringEntry{Name: s.Key, Value: DecodeStringValue(s)})
	}
	return t, keyErr
}

// FindStringTables decodes every language block under StringFileInfo in
// document order. Key parse failures are reported per table through onBadKey
// (which may be nil) and do not stop decoding.
func FindStringTables(root *Block, onBadKey func(blk *Block, err error)) []StringTable {
	var out []StringTable
	for i := range root.Children {
		sfi := &root.Children[i]
		if sfi.Key != KeyStringFileInfo {
			continue
		}
		for j := range sfi.Children {
			t, err := DecodeStringTable(&sfi.Children[j])
			if err != nil && onBadKey != nil {
				onBadKey(&sfi.Children[j], err)
			}
			out = append(out, t)
		}
	}
	return out
}
