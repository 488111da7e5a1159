package types

import (
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindOS          ErrKind = iota // the raw resource could not be loaded (missing file, no resource, denied)
	ErrKindMalformed                  // the resource could not be walked (truncated/corrupt)
	ErrKindNotFound                   // a queried block or value does not exist
	ErrKindUnsupported                // recognized input we do not handle
)

// String implements fmt.Stringer.
func (k ErrKind) String() string {
	switch k {
	case ErrKindOS:
		return "os"
	case ErrKindMalformed:
		return "malformed"
	case ErrKindNotFound:
		return "not found"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrNoVersionInfo)
// holds for every malformed-resource error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrLoad indicates the OS collaborator could not supply the resource bytes.
	ErrLoad = &Error{Kind: ErrKindOS, Msg: "cannot load version resource"}
	// ErrNoVersionInfo indicates the resource could not be walked structurally.
	ErrNoVersionInfo = &Error{Kind: ErrKindMalformed, Msg: "malformed version resource"}
	// ErrNotFound indicates a missing block or value.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrUnsupported indicates input that is recognized but not handled.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported input"}
)

// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

// ParseOptions controls how a decoded resource is presented.
type ParseOptions struct {
	// Prefer is the (language, codepage) the caller wants strings in. Nil
	// selects U.S. English / Unicode (0409/04B0).
	Prefer *LangCodepage

	// CollectDiagnostics records every soft absence (missing fixed info,
	// unparsable table key, invalid UTF-16, ...) in VersionInfo.Diagnostics.
	CollectDiagnostics bool
}

// -----------------------------------------------------------------------------
// Decoded model
// -----------------------------------------------------------------------------

// Version is a four-part binary version number.
type Version struct {
	Major    uint16 `json:"major"`
	Minor    uint16 `json:"minor"`
	Build    uint16 `json:"build"`
	Revision uint16 `json:"revision"`
}

// String formats the version as "major.minor.build.revision".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// Compare returns -1, 0 or +1 comparing v with o component by component.
func (v Version) Compare(o Version) int {
	a := [4]uint16{v.Major, v.Minor, v.Build, v.Revision}
	b := [4]uint16{o.Major, o.Minor, o.Build, o.Revision}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// LangCodepage identifies a string table by language ID and codepage.
type LangCodepage struct {
	Language uint16 `json:"language"`
	Codepage uint16 `json:"codepage"`
}

// Key formats the pair the way string tables are keyed, e.g. "040904B0".
func (lc LangCodepage) Key() string {
	return fmt.Sprintf("%04X%04X", lc.Language, lc.Codepage)
}

// String implements fmt.Stringer.
func (lc LangCodepage) String() string { return lc.Key() }

// FixedFileInfo is the decoded VS_FIXEDFILEINFO.
type FixedFileInfo struct {
	StrucVersion   uint32  `json:"struc_version"`
	FileVersion    Version `json:"file_version"`
	ProductVersion Version `json:"product_version"`
	FileFlagsMask  uint32  `json:"file_flags_mask"`
	FileFlags      uint32  `json:"file_flags"`
	FileOS         uint32  `json:"file_os"`
	FileType       uint32  `json:"file_type"`
	FileSubtype    uint32  `json:"file_subtype"`
	FileDate       uint64  `json:"file_date"`
}

// File flag bits (VS_FF_*).
const (
	FlagDebug        uint32 = 0x01
	FlagPrerelease   uint32 = 0x02
	FlagPatched      uint32 = 0x04
	FlagPrivateBuild uint32 = 0x08
	FlagInfoInferred uint32 = 0x10
	FlagSpecialBuild uint32 = 0x20
)

// HasFlag reports whether flag is set and declared valid by the mask.
func (f *FixedFileInfo) HasFlag(flag uint32) bool {
	return f.FileFlags&f.FileFlagsMask&flag != 0
}

// StringEntry is a single name/value pair of a string table.
type StringEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StringTable is one language/codepage block of the string file info.
type StringTable struct {
	LangCodepage
	Key     string        `json:"key"`
	Entries []StringEntry `json:"entries"`
}

// Lookup returns the value stored under name.
func (t *StringTable) Lookup(name string) (string, bool) {
	for _, e := range t.Entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// Selection records why a string table was chosen.
type Selection int

const (
	SelectNone        Selection = iota // no string table exists
	SelectExact                        // table matching the requested language and codepage
	SelectNeutral                      // table matching the requested language with codepage 0
	SelectTranslation                  // table named by the first Translation entry
	SelectFirst                        // first table in document order
)

// String implements fmt.Stringer.
func (s Selection) String() string {
	switch s {
	case SelectNone:
		return "none"
	case SelectExact:
		return "exact"
	case SelectNeutral:
		return "neutral"
	case SelectTranslation:
		return "translation"
	case SelectFirst:
		return "first"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Selection) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
