package verinfo

import (
	"github.com/joshuapare/verkit/pkg/types"
)

// Options controls Parse and FromFile.
type Options struct {
	types.ParseOptions

	// Loader supplies raw resource bytes to FromFile. Nil uses DefaultLoader.
	Loader Loader
}

// WithLanguage returns a copy of o preferring the given language/codepage.
func (o Options) WithLanguage(language, codepage uint16) Options {
	o.Prefer = &types.LangCodepage{Language: language, Codepage: codepage}
	return o
}

func (o Options) loader() Loader {
	if o.Loader != nil {
		return o.Loader
	}
	return DefaultLoader()
}
