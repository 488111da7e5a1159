package types

// Standard string names.
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

// VersionInfo is the decoded version resource of one file.
//
// Every part is optional: Fixed is nil when the resource carries no valid
// VS_FIXEDFILEINFO, Strings is empty when there is no string table, and a
// named field missing from the selected table is reported as absent by its
// accessor rather than as an empty string.
type VersionInfo struct {
	// Fixed is the numeric fixed file info, or nil.
	Fixed *FixedFileInfo `json:"fixed,omitempty"`

	// Selected is the language/codepage of the table Strings came from.
	Selected LangCodepage `json:"selected"`
	// SelectedBy records which fallback step picked the table.
	SelectedBy Selection `json:"selected_by"`

	// Strings holds the entries of the selected table.
	Strings map[string]string `json:"strings"`

	// Tables lists every string table in document order.
	Tables []StringTable `json:"tables,omitempty"`

	// Translations lists VarFileInfo\Translation in declaration order.
	Translations []LangCodepage `json:"translations,omitempty"`

	// Diagnostics is populated only when ParseOptions.CollectDiagnostics is set.
	Diagnostics *DiagnosticReport `json:"diagnostics,omitempty"`
}

// Get returns the named value from the selected table.
func (v *VersionInfo) Get(name string) (string, bool) {
	if v == nil || v.Strings == nil {
		return "", false
	}
	s, ok := v.Strings[name]
	return s, ok
}

// Table returns the table for lc, if present.
func (v *VersionInfo) Table(lc LangCodepage) (*StringTable, bool) {
	for i := range v.Tables {
		if v.Tables[i].LangCodepage == lc {
			return &v.Tables[i], true
		}
	}
	return nil, false
}

// FileVersionQuad returns the binary file version when fixed info is present.
func (v *VersionInfo) FileVersionQuad() (Version, bool) {
	if v == nil || v.Fixed == nil {
		return Version{}, false
	}
	return v.Fixed.FileVersion, true
}

// ProductVersionQuad returns the binary product version when fixed info is present.
func (v *VersionInfo) ProductVersionQuad() (Version, bool) {
	if v == nil || v.Fixed == nil {
		return Version{}, false
	}
	return v.Fixed.ProductVersion, true
}

func (v *VersionInfo) Comments() (string, bool)         { return v.Get(NameComments) }
func (v *VersionInfo) CompanyName() (string, bool)      { return v.Get(NameCompanyName) }
func (v *VersionInfo) FileDescription() (string, bool)  { return v.Get(NameFileDescription) }
func (v *VersionInfo) FileVersion() (string, bool)      { return v.Get(NameFileVersion) }
func (v *VersionInfo) InternalName() (string, bool)     { return v.Get(NameInternalName) }
func (v *VersionInfo) LegalCopyright() (string, bool)   { return v.Get(NameLegalCopyright) }
func (v *VersionInfo) LegalTrademarks() (string, bool)  { return v.Get(NameLegalTrademarks) }
func (v *VersionInfo) OriginalFilename() (string, bool) { return v.Get(NameOriginalFilename) }
func (v *VersionInfo) ProductName() (string, bool)      { return v.Get(NameProductName) }
func (v *VersionInfo) ProductVersion() (string, bool)   { return v.Get(NameProductVersion) }
func (v *VersionInfo) PrivateBuild() (string, bool)     { return v.Get(NamePrivateBuild) }
func (v *VersionInfo) SpecialBuild() (string, bool)     { return v.Get(NameSpecialBuild) }
