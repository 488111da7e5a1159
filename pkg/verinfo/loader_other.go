//go:build !windows

package verinfo

// DefaultLoader returns PELoader; there is no system facility off Windows.
func DefaultLoader() Loader { return PELoader{} }
