package format

import "fmt"

// Translation is one (language, codepage) pair from VarFileInfo\Translation.
type Translation struct {
	Language uint16
	Codepage uint16
}

// Key formats the pair as a string table key, e.g. "040904B0".
func (t Translation) Key() string {
	return fmt.Sprintf("%04X%04X", t.Language, t.Codepage)
}

// DecodeTranslations decodes a flat array of (WORD language, WORD codepage)
// pairs in declaration order. A trailing partial pair is ignored.
func DecodeTranslations(b []byte) []Translation {
	n := len(b) / TranslationEntrySize
	if n == 0 {
		return nil
	}
	out := make([]Translation, 0, n)
	for i := 0; i < n; i++ {
		off := i * TranslationEntrySize
		out = append(out, Translation{
			Language: ReadU16(b, off),
			Codepage: ReadU16(b, off+2),
		})
	}
	return out
}

// FindTranslations locates VarFileInfo\Translation among the root's children.
// Multiple Var blocks are concatenated in document order.
func FindTranslations(root *Block) []Translation {
	var out []Translation
	for i := range root.Children {
		vfi := &root.Children[i]
		if vfi.Key != KeyVarFileInfo {
			continue
		}
		for j := range vfi.Children {
			if vfi.Children[j].Key == KeyTranslation {
				out = append(out, DecodeTranslations(vfi.Children[j].Value)...)
			}
		}
	}
	return out
}
