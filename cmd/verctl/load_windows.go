//go:build windows

package main

import "github.com/joshuapare/verkit/pkg/verinfo"

func systemLoader() (verinfo.Loader, error) {
	return verinfo.SystemLoader{}, nil
}
