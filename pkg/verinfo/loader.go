package verinfo

import (
	"fmt"
	"os"

	"github.com/joshuapare/verkit/internal/mmfile"
	"github.com/joshuapare/verkit/internal/peres"
)

// Loader supplies the raw version resource of a file.
type Loader interface {
	Load(path string) ([]byte, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) ([]byte, error)

// Load calls f(path).
func (f LoaderFunc) Load(path string) ([]byte, error) { return f(path) }

// ErrNoResource is returned by PELoader when the image has no RT_VERSION
// resource.
var ErrNoResource = peres.ErrNoResource

// PELoader extracts the RT_VERSION resource by reading the PE image directly.
// It works on every platform.
type PELoader struct{}

// Load maps the image at path and copies out its first RT_VERSION resource.
func (PELoader) Load(path string) ([]byte, error) {
	m, err := mmfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	res, err := peres.ExtractVersion(m.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// RawLoader reads a file that already holds a bare version resource, such as
// the output of a resource extractor.
type RawLoader struct{}

// Load reads the file at path.
func (RawLoader) Load(path string) ([]byte, error) {
	return os.ReadFile(path)
}
