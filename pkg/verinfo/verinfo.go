package verinfo

import (
	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/internal/reader"
	"github.com/joshuapare/verkit/pkg/types"
)

// Parse decodes a raw version resource.
//
// Example:
//
//	data, _ := os.ReadFile("widget.res")
//	info, err := verinfo.Parse(data, verinfo.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, _ := info.ProductName()
func Parse(data []byte, opts Options) (*types.VersionInfo, error) {
	r, err := reader.OpenBytes(data, opts.ParseOptions)
	if err != nil {
		return nil, err
	}
	return build(r), nil
}

// FromFile loads the version resource of the file at path through
// opts.Loader and decodes it. Loader failures are returned as a
// *types.Error of kind ErrKindOS wrapping the loader's error.
func FromFile(path string, opts Options) (*types.VersionInfo, error) {
	data, err := opts.loader().Load(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindOS, Msg: "load " + path, Err: err}
	}
	return Parse(data, opts)
}

func build(r *reader.Reader) *types.VersionInfo {
	info := &types.VersionInfo{Strings: map[string]string{}}

	if ffi, ok := r.Fixed(); ok {
		info.Fixed = convertFixed(ffi)
	}

	for _, t := range r.Tables() {
		info.Tables = append(info.Tables, convertTable(t))
	}
	for _, tr := range r.Translations() {
		info.Translations = append(info.Translations, types.LangCodepage{Language: tr.Language, Codepage: tr.Codepage})
	}

	if sel, how := r.Selected(); sel != nil {
		info.Selected = types.LangCodepage{Language: sel.Language, Codepage: sel.Codepage}
		info.SelectedBy = how
		for _, e := range sel.Entries {
			info.Strings[e.Name] = e.Value
		}
	}

	info.Diagnostics = r.Diagnostics()
	return info
}

func convertFixed(f format.FixedFileInfo) *types.FixedFileInfo {
	return &types.FixedFileInfo{
		StrucVersion:   f.StrucVersion,
		FileVersion:    convertQuad(f.FileVersion()),
		ProductVersion: convertQuad(f.ProductVersion()),
		FileFlagsMask:  f.FileFlagsMask,
		FileFlags:      f.FileFlags,
		FileOS:         f.FileOS,
		FileType:       f.FileType,
		FileSubtype:    f.FileSubtype,
		FileDate:       f.FileDate(),
	}
}

func convertQuad(q format.Quad) types.Version {
	return types.Version{Major: q[0], Minor: q[1], Build: q[2], Revision: q[3]}
}

func convertTable(t format.StringTable) types.StringTable {
	out := types.StringTable{
		LangCodepage: types.LangCodepage{Language: t.Language, Codepage: t.Codepage},
		Key:          t.Key,
		Entries:      make([]types.StringEntry, 0, len(t.Entries)),
	}
	for _, e := range t.Entries {
		out.Entries = append(out.Entries, types.StringEntry{Name: e.Name, Value: e.Value})
	}
	return out
}
