package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/verkit/cmd/verctl/logger"
	"github.com/joshuapare/verkit/internal/reader"
	"github.com/joshuapare/verkit/pkg/types"
	"github.com/joshuapare/verkit/pkg/verinfo"
)

// loaderFor maps a loader setting to a verinfo.Loader.
func loaderFor(name string) (verinfo.Loader, error) {
	switch name {
	case loaderRaw:
		return verinfo.RawLoader{}, nil
	case loaderPE:
		return verinfo.PELoader{}, nil
	case loaderSystem:
		return systemLoader()
	default:
		return verinfo.DefaultLoader(), nil
	}
}

// parseOptions returns the parse options selected by the global settings.
func parseOptions(diagnostics bool) types.ParseOptions {
	return types.ParseOptions{
		Prefer:             &types.LangCodepage{Language: cfg.Language, Codepage: cfg.Codepage},
		CollectDiagnostics: diagnostics,
	}
}

// loadResource returns the raw version resource of the file at path.
func loadResource(path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	l, err := loaderFor(cfg.Loader)
	if err != nil {
		return nil, err
	}
	logger.Debug("loading version resource", "path", path, "loader", fmt.Sprintf("%T", l))
	data, err := l.Load(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindOS, Msg: "load " + path, Err: err}
	}
	logger.Debug("loaded version resource", "path", path, "bytes", len(data))
	return data, nil
}

// openInfo loads and decodes the resource of the file at path.
func openInfo(path string, diagnostics bool) (*types.VersionInfo, error) {
	printVerbose("Reading version resource: %s\n", path)
	data, err := loadResource(path)
	if err != nil {
		return nil, err
	}
	info, err := verinfo.Parse(data, verinfo.Options{ParseOptions: parseOptions(diagnostics)})
	if err != nil {
		return nil, fmt.Errorf("failed to parse version resource: %w", err)
	}
	logger.Debug("decoded version resource", "path", path,
		"tables", len(info.Tables), "selected", info.Selected.Key(), "selected_by", info.SelectedBy.String())
	return info, nil
}

// openReader loads the resource of the file at path and returns the low-level
// reader, for commands that work on the block tree.
func openReader(path string, diagnostics bool) (*reader.Reader, error) {
	printVerbose("Reading version resource: %s\n", path)
	data, err := loadResource(path)
	if err != nil {
		return nil, err
	}
	r, err := reader.OpenBytes(data, parseOptions(diagnostics))
	if err != nil {
		return nil, fmt.Errorf("failed to parse version resource: %w", err)
	}
	return r, nil
}
