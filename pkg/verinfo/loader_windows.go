//go:build windows

package verinfo

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// SystemLoader asks version.dll for the resource, the same facility
// Explorer's properties dialog uses. It also resolves MUI satellite files.
type SystemLoader struct{}

// Load calls GetFileVersionInfoSize and GetFileVersionInfo for path.
func (SystemLoader) Load(path string) ([]byte, error) {
	var zero windows.Handle
	size, err := windows.GetFileVersionInfoSize(path, &zero)
	if err != nil {
		return nil, fmt.Errorf("GetFileVersionInfoSize %s: %w", path, err)
	}
	if size == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoResource)
	}
	data := make([]byte, size)
	if err := windows.GetFileVersionInfo(path, 0, size, unsafe.Pointer(&data[0])); err != nil {
		return nil, fmt.Errorf("GetFileVersionInfo %s: %w", path, err)
	}
	return data, nil
}

// DefaultLoader returns SystemLoader.
func DefaultLoader() Loader { return SystemLoader{} }
