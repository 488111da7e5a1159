package format

import (
	"fmt"
	"time"
)

// FixedFileInfo mirrors VS_FIXEDFILEINFO.
type FixedFileInfo struct {
	Signature        uint32
	StrucVersion     uint32
	FileVersionMS    uint32
	FileVersionLS    uint32
	ProductVersionMS uint32
	ProductVersionLS uint32
	FileFlagsMask    uint32
	FileFlags        uint32
	FileOS           uint32
	FileType         uint32
	FileSubtype      uint32
	FileDateMS       uint32
	FileDateLS       uint32
}

// Quad is a four-part version number split from an MS/LS pair.
type Quad [4]uint16

// String formats the quad as "major.minor.build.revision".
func (q Quad) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", q[0], q[1], q[2], q[3])
}

// SplitVersion splits an MS/LS pair into its four 16-bit components.
func SplitVersion(ms, ls uint32) Quad {
	return Quad{uint16(ms >> 16), uint16(ms), uint16(ls >> 16), uint16(ls)}
}

// FileVersion returns the binary file version.
func (f FixedFileInfo) FileVersion() Quad {
	return SplitVersion(f.FileVersionMS, f.FileVersionLS)
}

// ProductVersion returns the binary product version.
func (f FixedFileInfo) ProductVersion() Quad {
	return SplitVersion(f.ProductVersionMS, f.ProductVersionLS)
}

// Flags returns FileFlags restricted to the bits declared valid by FileFlagsMask.
func (f FixedFileInfo) Flags() uint32 {
	return f.FileFlags & f.FileFlagsMask
}

// FileDate combines the two date halves. Almost every compiler leaves it zero.
func (f FixedFileInfo) FileDate() uint64 {
	return uint64(f.FileDateMS)<<32 | uint64(f.FileDateLS)
}

// FileTime interprets FileDate as a FILETIME. ok is false when the date is unset.
func (f FixedFileInfo) FileTime() (t time.Time, ok bool) {
	d := f.FileDate()
	if d == 0 {
		return time.Time{}, false
	}
	return FiletimeToTime(d), true
}

// DecodeFixedFileInfo decodes a VS_FIXEDFILEINFO from the root block's value.
// Values longer than the structure are accepted; the extra bytes are ignored.
func DecodeFixedFileInfo(b []byte) (FixedFileInfo, error) {
	if len(b) < FixedFileInfoSize {
		return FixedFileInfo{}, fmt.Errorf("fixed file info: %w (have %d, need %d)",
			ErrTruncated, len(b), FixedFileInfoSize)
	}
	sig := ReadU32(b, FixedSignatureOffset)
	if sig != FixedFileInfoSignature {
		return FixedFileInfo{}, fmt.Errorf("fixed file info: %w (0x%08X)", ErrSignatureMismatch, sig)
	}
	return FixedFileInfo{
		Signature:        sig,
		StrucVersion:     ReadU32(b, FixedStrucVersionOffset),
		FileVersionMS:    ReadU32(b, FixedFileVersionMSOffset),
		FileVersionLS:    ReadU32(b, FixedFileVersionLSOffset),
		ProductVersionMS: ReadU32(b, FixedProductVersionMSOffset),
		ProductVersionLS: ReadU32(b, FixedProductVersionLSOffset),
		FileFlagsMask:    ReadU32(b, FixedFileFlagsMaskOffset),
		FileFlags:        ReadU32(b, FixedFileFlagsOffset),
		FileOS:           ReadU32(b, FixedFileOSOffset),
		FileType:         ReadU32(b, FixedFileTypeOffset),
		FileSubtype:      ReadU32(b, FixedFileSubtypeOffset),
		FileDateMS:       ReadU32(b, FixedFileDateMSOffset),
		FileDateLS:       ReadU32(b, FixedFileDateLSOffset),
	}, nil
}

// FileOSString names a dwFileOS value, e.g. "VOS_NT_WINDOWS32".
func FileOSString(v uint32) string {
	switch v {
	case VOSUnknown:
		return "VOS_UNKNOWN"
	case VOSDOSWindows16:
		return "VOS_DOS_WINDOWS16"
	case VOSDOSWindows32:
		return "VOS_DOS_WINDOWS32"
	case VOSOS216PM16:
		return "VOS_OS216_PM16"
	case VOSOS232PM32:
		return "VOS_OS232_PM32"
	case VOSNTWindows32:
		return "VOS_NT_WINDOWS32"
	}
	var hi, lo string
	switch v & vosHighWordMask {
	case VOSDOS:
		hi = "VOS_DOS"
	case VOSOS216:
		hi = "VOS_OS216"
	case VOSOS232:
		hi = "VOS_OS232"
	case VOSNT:
		hi = "VOS_NT"
	}
	switch v & vosLowWordMask {
	case VOSWindows16:
		lo = "VOS__WINDOWS16"
	case VOSPM16:
		lo = "VOS__PM16"
	case VOSPM32:
		lo = "VOS__PM32"
	case VOSWindows32:
		lo = "VOS__WINDOWS32"
	}
	switch {
	case hi != "" && lo != "":
		return hi + "|" + lo
	case hi != "" && v&vosLowWordMask == 0:
		return hi
	case lo != "" && v&vosHighWordMask == 0:
		return lo
	}
	return fmt.Sprintf("0x%08X", v)
}

// FileTypeString names a dwFileType value, e.g. "VFT_APP".
func FileTypeString(v uint32) string {
	switch v {
	case VFTUnknown:
		return "VFT_UNKNOWN"
	case VFTApp:
		return "VFT_APP"
	case VFTDLL:
		return "VFT_DLL"
	case VFTDriver:
		return "VFT_DRV"
	case VFTFont:
		return "VFT_FONT"
	case VFTVXD:
		return "VFT_VXD"
	case VFTStaticLib:
		return "VFT_STATIC_LIB"
	default:
		return fmt.Sprintf("0x%08X", v)
	}
}

// FileFlagNames lists the VS_FF_* names set in flags.
func FileFlagNames(flags uint32) []string {
	var names []string
	for _, f := range []struct {
		bit  uint32
		name string
	}{
		{VSFFDebug, "VS_FF_DEBUG"},
		{VSFFPrerelease, "VS_FF_PRERELEASE"},
		{VSFFPatched, "VS_FF_PATCHED"},
		{VSFFPrivateBuild, "VS_FF_PRIVATEBUILD"},
		{VSFFInfoInferred, "VS_FF_INFOINFERRED"},
		{VSFFSpecialBuild, "VS_FF_SPECIALBUILD"},
	} {
		if flags&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	return names
}
