// Package format houses low-level decoders for the Windows version resource
// (VS_VERSIONINFO) format. The decoders are structural and allocation-light;
// interpreting which language block a caller sees is left to higher layers.
package format

// Keys of the well-known blocks. Comparisons against these are case-sensitive.
const (
	// KeyVersionInfo is the key of the root block.
	KeyVersionInfo = "VS_VERSION_INFO"
	// KeyStringFileInfo is the key of the child holding the string tables.
	KeyStringFileInfo = "StringFileInfo"
	// KeyVarFileInfo is the key of the child holding the Var blocks.
	KeyVarFileInfo = "VarFileInfo"
	// KeyTranslation is the key of the Var block listing language/codepage pairs.
	KeyTranslation = "Translation"
)

// Standard string names found in a string table.
const (
	NameComments         = "Comments"
	NameCompanyName      = "CompanyName"
	NameFileDescription  = "FileDescription"
	NameFileVersion      = "FileVersion"
	NameInternalName     = "InternalName"
	NameLegalCopyright   = "LegalCopyright"
	NameLegalTrademarks  = "LegalTrademarks"
	NameOriginalFilename = "OriginalFilename"
	NameProductName      = "ProductName"
	NameProductVersion   = "ProductVersion"
	NamePrivateBuild     = "PrivateBuild"
	NameSpecialBuild     = "SpecialBuild"
)

// StandardNames lists the string names every platform reader queries, in the
// order the platform documents them.
var StandardNames = []string{
	NameComments,
	NameCompanyName,
	NameFileDescription,
	NameFileVersion,
	NameInternalName,
	NameLegalCopyright,
	NameLegalTrademarks,
	NameOriginalFilename,
	NameProductName,
	NameProductVersion,
	NamePrivateBuild,
	NameSpecialBuild,
}

// ============================================================================
// Block header (shared by every VS_VERSIONINFO sub-structure)
// ============================================================================
//
//	0x00  WORD   wLength       total size including children
//	0x02  WORD   wValueLength  size of Value (WCHARs when wType == 1)
//	0x04  WORD   wType         0 = binary, 1 = text
//	0x06  WCHAR  szKey[]       NUL-terminated, then padding to 4 bytes
//	      ...    Value         then padding to 4 bytes
//	      ...    Children
const (
	BlockLengthOffset      = 0x00
	BlockValueLengthOffset = 0x02
	BlockTypeOffset        = 0x04
	BlockKeyOffset         = 0x06

	// BlockHeaderSize is the size of the three fixed WORDs.
	BlockHeaderSize = BlockKeyOffset

	// BlockAlignment is the boundary every key, value and child is padded to.
	BlockAlignment = 4
)

// Block value types (wType).
const (
	BlockTypeBinary uint16 = 0
	BlockTypeText   uint16 = 1
)

// MaxBlockDepth bounds recursion. Real resources nest four levels deep
// (root, StringFileInfo, table, String).
const MaxBlockDepth = 16

// ============================================================================
// VS_FIXEDFILEINFO
// ============================================================================
const (
	// FixedFileInfoSignature is the dwSignature magic.
	FixedFileInfoSignature uint32 = 0xFEEF04BD

	// FixedFileInfoSize is sizeof(VS_FIXEDFILEINFO).
	FixedFileInfoSize = 52

	FixedSignatureOffset        = 0x00
	FixedStrucVersionOffset     = 0x04
	FixedFileVersionMSOffset    = 0x08
	FixedFileVersionLSOffset    = 0x0C
	FixedProductVersionMSOffset = 0x10
	FixedProductVersionLSOffset = 0x14
	FixedFileFlagsMaskOffset    = 0x18
	FixedFileFlagsOffset        = 0x1C
	FixedFileOSOffset           = 0x20
	FixedFileTypeOffset         = 0x24
	FixedFileSubtypeOffset      = 0x28
	FixedFileDateMSOffset       = 0x2C
	FixedFileDateLSOffset       = 0x30
)

// File flags (dwFileFlags).
const (
	VSFFDebug        uint32 = 0x00000001
	VSFFPrerelease   uint32 = 0x00000002
	VSFFPatched      uint32 = 0x00000004
	VSFFPrivateBuild uint32 = 0x00000008
	VSFFInfoInferred uint32 = 0x00000010
	VSFFSpecialBuild uint32 = 0x00000020
)

// Target operating systems (dwFileOS).
const (
	VOSUnknown      uint32 = 0x00000000
	VOSDOS          uint32 = 0x00010000
	VOSOS216        uint32 = 0x00020000
	VOSOS232        uint32 = 0x00030000
	VOSNT           uint32 = 0x00040000
	VOSWindows16    uint32 = 0x00000001
	VOSPM16         uint32 = 0x00000002
	VOSPM32         uint32 = 0x00000003
	VOSWindows32    uint32 = 0x00000004
	VOSDOSWindows16 uint32 = 0x00010001
	VOSDOSWindows32 uint32 = 0x00010004
	VOSOS216PM16    uint32 = 0x00020002
	VOSOS232PM32    uint32 = 0x00030003
	VOSNTWindows32  uint32 = 0x00040004
	vosHighWordMask uint32 = 0xFFFF0000
	vosLowWordMask  uint32 = 0x0000FFFF
)

// File types (dwFileType).
const (
	VFTUnknown   uint32 = 0x00000000
	VFTApp       uint32 = 0x00000001
	VFTDLL       uint32 = 0x00000002
	VFTDriver    uint32 = 0x00000003
	VFTFont      uint32 = 0x00000004
	VFTVXD       uint32 = 0x00000005
	VFTStaticLib uint32 = 0x00000007
)

// File subtypes (dwFileSubtype) for VFTDriver and VFTFont.
const (
	VFT2Unknown                uint32 = 0x00000000
	VFT2DriverPrinter          uint32 = 0x00000001
	VFT2DriverKeyboard         uint32 = 0x00000002
	VFT2DriverLanguage         uint32 = 0x00000003
	VFT2DriverDisplay          uint32 = 0x00000004
	VFT2DriverMouse            uint32 = 0x00000005
	VFT2DriverNetwork          uint32 = 0x00000006
	VFT2DriverSystem           uint32 = 0x00000007
	VFT2DriverInstallable      uint32 = 0x00000008
	VFT2DriverSound            uint32 = 0x00000009
	VFT2DriverComm             uint32 = 0x0000000A
	VFT2DriverVersionedPrinter uint32 = 0x0000000C
	VFT2FontRaster             uint32 = 0x00000001
	VFT2FontVector             uint32 = 0x00000002
	VFT2FontTrueType           uint32 = 0x00000003
)

// ============================================================================
// Translation / language block keys
// ============================================================================
const (
	// TranslationEntrySize is one (WORD language, WORD codepage) pair.
	TranslationEntrySize = 4

	// LangCodepageKeyLen is the length of a string table key such as "040904B0".
	LangCodepageKeyLen = 8

	// DefaultLanguage and DefaultCodepage are U.S. English / Unicode (1200),
	// the pair resource compilers emit by default.
	DefaultLanguage uint16 = 0x0409
	DefaultCodepage uint16 = 0x04B0

	// NeutralCodepage marks a table valid for any codepage of its language.
	NeutralCodepage uint16 = 0x0000
)
