package reader

import (
	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/pkg/types"
)

// Select picks the string table for a requested (language, codepage):
//
//  1. the table keyed exactly (language, codepage)
//  2. the table keyed (language, 0)
//  3. the table named by the first Translation entry
//  4. the first table in document order
//
// It returns nil and SelectNone when tables is empty.
func Select(tables []format.StringTable, translations []format.Translation, language, codepage uint16) (*format.StringTable, types.Selection) {
	if len(tables) == 0 {
		return nil, types.SelectNone
	}
	if t := find(tables, language, codepage); t != nil {
		return t, types.SelectExact
	}
	if t := find(tables, language, format.NeutralCodepage); t != nil {
		return t, types.SelectNeutral
	}
	if len(translations) > 0 {
		if t := find(tables, translations[0].Language, translations[0].Codepage); t != nil {
			return t, types.SelectTranslation
		}
	}
	return &tables[0], types.SelectFirst
}

func find(tables []format.StringTable, language, codepage uint16) *format.StringTable {
	for i := range tables {
		if tables[i].Matches(language, codepage) {
			return &tables[i]
		}
	}
	return nil
}

// Select applies Select to the reader's tables.
func (r *Reader) Select(language, codepage uint16) (*format.StringTable, types.Selection) {
	return Select(r.tables, r.translations, language, codepage)
}

// Selected returns the table chosen for the request passed to OpenBytes.
func (r *Reader) Selected() (*format.StringTable, types.Selection) {
	return r.selected, r.selectedBy
}

func (r *Reader) selectFor(want types.LangCodepage) {
	r.selected, r.selectedBy = Select(r.tables, r.translations, want.Language, want.Codepage)
	switch r.selectedBy {
	case types.SelectNone, types.SelectExact:
	default:
		r.diagnostics.record(types.SevInfo, -1, `\`+format.KeyStringFileInfo+`\`+r.selected.Key,
			"requested "+want.Key()+" not present; selected by "+r.selectedBy.String())
	}
}
