/*
Package verinfo reads the version resource (VS_VERSIONINFO) embedded in
Windows executables and libraries.

# Quick Start

Read the version of a file:

	info, err := verinfo.FromFile("widget.exe", verinfo.Options{})
	if err != nil {
	    log.Fatal(err)
	}
	if v, ok := info.FileVersion(); ok {
	    fmt.Println(v)
	}

Decode a resource already in memory:

	info, err := verinfo.Parse(data, verinfo.Options{})

# Language Selection

A resource may carry several string tables, one per language/codepage pair.
Options.Prefer names the pair wanted (U.S. English / Unicode when nil); the
table is chosen by exact match, then the same language with a neutral
codepage, then the first Translation entry, then the first table present.
VersionInfo.SelectedBy records which step matched, and every table remains
available through VersionInfo.Tables.

# Error Handling

Only two conditions are errors: the loader could not supply the resource
(kind types.ErrKindOS) and the resource could not be walked at all (kind
types.ErrKindMalformed, matching types.ErrNoVersionInfo). A missing fixed
info block, string table, translation table or individual field is reported
as absent by the corresponding accessor. Set Options.CollectDiagnostics to
get a report of every such absence.

	info, err := verinfo.FromFile(path, verinfo.Options{})
	switch {
	case errors.Is(err, types.ErrLoad):
	    // not a PE, no resource, permission denied, ...
	case errors.Is(err, types.ErrNoVersionInfo):
	    // corrupt resource
	}

# Loaders

FromFile obtains the raw resource through Options.Loader. DefaultLoader uses
version.dll on Windows and reads the PE resource section directly elsewhere;
PELoader is available on every platform.

# Thread Safety

Parse holds no shared state and may be called concurrently. A VersionInfo
does not reference the input buffer.
*/
package verinfo
