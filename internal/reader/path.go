package reader

import (
	"strings"

	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/pkg/types"
)

// Query resolves a VerQueryValue-style path against the block tree:
//
//	\                                 root (value: VS_FIXEDFILEINFO)
//	\VarFileInfo\Translation          translation array
//	\StringFileInfo\040904B0\FileVersion
//
// Segments match case-insensitively. Forward slashes are accepted as
// separators. A path that names no block returns an error matching
// types.ErrNotFound.
func (r *Reader) Query(path string) (*format.Block, error) {
	segments := normalizePath(strings.TrimSpace(path))
	current := &r.root
	for _, seg := range segments {
		next, ok := childFold(current, seg)
		if !ok {
			return nil, &types.Error{Kind: types.ErrKindNotFound, Msg: "no block at " + path}
		}
		current = next
	}
	return current, nil
}

func childFold(b *format.Block, key string) (*format.Block, bool) {
	for i := range b.Children {
		if strings.EqualFold(b.Children[i].Key, key) {
			return &b.Children[i], true
		}
	}
	return nil, false
}

func normalizePath(path string) []string {
	if path == "" || path == `\` || path == "/" {
		return nil
	}
	path = strings.ReplaceAll(path, "/", `\`)
	path = strings.TrimPrefix(path, `\`)
	if path == "" {
		return nil
	}
	parts := strings.Split(path, `\`)
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
