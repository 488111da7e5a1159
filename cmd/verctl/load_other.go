//go:build !windows

package main

import (
	"github.com/joshuapare/verkit/pkg/types"
	"github.com/joshuapare/verkit/pkg/verinfo"
)

func systemLoader() (verinfo.Loader, error) {
	return nil, &types.Error{Kind: types.ErrKindUnsupported, Msg: "the system loader is only available on Windows"}
}
