// Package reader decodes a raw version resource into its parts and answers
// queries against it. The public verinfo package builds its result from a
// Reader; the CLI uses it directly for block dumps and path queries.
package reader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/pkg/types"
)

// Reader holds one decoded version resource. It is immutable once OpenBytes
// returns.
type Reader struct {
	buf          []byte
	root         format.Block
	fixed        *format.FixedFileInfo
	tables       []format.StringTable
	translations []format.Translation
	selected     *format.StringTable
	selectedBy   types.Selection
	diagnostics  *diagnosticCollector
}

// OpenBytes walks buf, decodes the fixed info, string tables and translation
// table, and selects the string table for opts.Prefer. Only a structural
// failure of the walk is an error; it is returned as a *types.Error of kind
// ErrKindMalformed.
func OpenBytes(buf []byte, opts types.ParseOptions) (*Reader, error) {
	root, err := format.DecodeBlock(buf)
	if err != nil {
		return nil, wrapFormatErr(err)
	}

	r := &Reader{buf: buf, root: root}
	if opts.CollectDiagnostics {
		r.diagnostics = newDiagnosticCollector()
	}

	if root.Key != format.KeyVersionInfo {
		r.diagnostics.record(types.SevWarning, root.Offset, `\`,
			fmt.Sprintf("root key is %q, expected %q", root.Key, format.KeyVersionInfo))
	}

	r.decodeFixed()
	r.tables = format.FindStringTables(&r.root, func(b *format.Block, err error) {
		r.diagnostics.record(types.SevWarning, b.Offset, `\`+format.KeyStringFileInfo+`\`+b.Key,
			"string table key is not a language/codepage pair")
	})
	r.translations = format.FindTranslations(&r.root)
	r.checkStrings()
	r.checkTranslations()
	r.checkTails(&r.root, `\`)

	want := types.LangCodepage{Language: format.DefaultLanguage, Codepage: format.DefaultCodepage}
	if opts.Prefer != nil {
		want = *opts.Prefer
	}
	r.selectFor(want)
	r.diagnostics.finalize()
	return r, nil
}

func (r *Reader) decodeFixed() {
	if len(r.root.Value) == 0 {
		r.diagnostics.record(types.SevInfo, r.root.Offset, `\`, "no fixed file info")
		return
	}
	ffi, err := format.DecodeFixedFileInfo(r.root.Value)
	switch {
	case err == nil:
		r.fixed = &ffi
	case errors.Is(err, format.ErrSignatureMismatch):
		r.diagnostics.record(types.SevWarning, r.root.Offset, `\`, "fixed file info signature mismatch")
	default:
		r.diagnostics.record(types.SevWarning, r.root.Offset, `\`,
			fmt.Sprintf("fixed file info too short (%d bytes)", len(r.root.Value)))
	}
}

func (r *Reader) checkStrings() {
	if r.diagnostics == nil {
		return
	}
	found := false
	for i := range r.root.Children {
		sfi := &r.root.Children[i]
		if sfi.Key != format.KeyStringFileInfo {
			continue
		}
		found = true
		for j := range sfi.Children {
			table := &sfi.Children[j]
			for k := range table.Children {
				s := &table.Children[k]
				if !format.ValidUTF16(format.TrimUTF16NUL(s.Value)) {
					r.diagnostics.record(types.SevError, s.Offset,
						`\`+format.KeyStringFileInfo+`\`+table.Key+`\`+s.Key,
						"value is not valid UTF-16; replaced invalid units with U+FFFD")
				}
			}
		}
	}
	if !found {
		r.diagnostics.record(types.SevInfo, -1, `\`+format.KeyStringFileInfo, "no string file info")
	}
}

// checkTails reports bytes skipped inside a block because they did not form
// a child.
func (r *Reader) checkTails(b *format.Block, path string) {
	if r.diagnostics == nil {
		return
	}
	if b.TailSize > 0 {
		r.diagnostics.record(types.SevWarning, b.TailOffset, path,
			fmt.Sprintf("skipped %d bytes of trailing data", b.TailSize))
	}
	for i := range b.Children {
		c := &b.Children[i]
		r.checkTails(c, strings.TrimSuffix(path, `\`)+`\`+c.Key)
	}
}

func (r *Reader) checkTranslations() {
	if r.diagnostics == nil {
		return
	}
	path := `\` + format.KeyVarFileInfo + `\` + format.KeyTranslation
	if len(r.translations) == 0 {
		r.diagnostics.record(types.SevInfo, -1, path, "no translation table")
		return
	}
	for _, tr := range r.translations {
		if find(r.tables, tr.Language, tr.Codepage) == nil {
			r.diagnostics.record(types.SevInfo, -1, path,
				fmt.Sprintf("translation %s has no string table", tr.Key()))
		}
	}
}

// Root returns the decoded root block.
func (r *Reader) Root() *format.Block { return &r.root }

// Fixed returns the fixed file info when it was present and valid.
func (r *Reader) Fixed() (format.FixedFileInfo, bool) {
	if r.fixed == nil {
		return format.FixedFileInfo{}, false
	}
	return *r.fixed, true
}

// Tables returns every string table in document order.
func (r *Reader) Tables() []format.StringTable { return r.tables }

// Translations returns the translation table in declaration order.
func (r *Reader) Translations() []format.Translation { return r.translations }

// Bytes returns the buffer the reader was opened over.
func (r *Reader) Bytes() []byte { return r.buf }

// Size returns the declared size of the resource.
func (r *Reader) Size() int { return int(r.root.Length) }

// Diagnostics returns the collected report, or nil when collection was off.
func (r *Reader) Diagnostics() *types.DiagnosticReport {
	return r.diagnostics.getReport()
}

func wrapFormatErr(err error) error {
	switch {
	case errors.Is(err, format.ErrTruncated):
		return &types.Error{Kind: types.ErrKindMalformed, Msg: "version resource truncated", Err: err}
	case errors.Is(err, format.ErrSanityLimit):
		return &types.Error{Kind: types.ErrKindMalformed, Msg: "version resource nested too deeply", Err: err}
	default:
		return &types.Error{Kind: types.ErrKindMalformed, Msg: err.Error(), Err: err}
	}
}
