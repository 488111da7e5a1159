package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/internal/testutil"
)

func TestInfoCommand(t *testing.T) {
	tests := []struct {
		name           string
		json           bool
		lang           uint16
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name: "text",
			lang: 0x0409,
			wantContain: []string{
				"File version (binary): 1.2.3.4",
				"Product version (binary): 5.6.7.8",
				"Type: VFT_APP",
				"String table: 040904B0 (exact)",
				"CompanyName:",
				"Contoso Ltd.",
				"ProductName:",
			},
		},
		{
			name:        "fallback language",
			lang:        0x0407,
			wantContain: []string{"String table: 040904B0 (translation)"},
		},
		{
			name:           "json",
			json:           true,
			lang:           0x0409,
			wantContain:    []string{`"selected_by": "exact"`, `"CompanyName": "Contoso Ltd."`},
			wantNotContain: []string{"Version Information"},
		},
	}

	path := standardExe(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json
			cfg.Language = tt.lang

			output, err := captureOutput(t, func() error {
				return runInfo([]string{path})
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("runInfo() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestInfoCommandErrors(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	if _, err := captureOutput(t, func() error {
		return runInfo([]string{filepath.Join(dir, "missing.exe")})
	}); err == nil {
		t.Error("expected error for missing file")
	}

	notPE := testutil.WriteFile(t, "notes.txt", []byte("hello"))
	if _, err := captureOutput(t, func() error {
		return runInfo([]string{notPE})
	}); err == nil {
		t.Error("expected error for non-PE file")
	}

	cfg.Loader = loaderRaw
	corrupt := testutil.WriteFile(t, "corrupt.res", testutil.StandardResource()[:40])
	if _, err := captureOutput(t, func() error {
		return runInfo([]string{corrupt})
	}); err == nil {
		t.Error("expected error for truncated resource")
	}
}

func TestInfoCommandQuiet(t *testing.T) {
	resetFlags()
	quiet = true
	output, err := captureOutput(t, func() error {
		return runInfo([]string{standardExe(t)})
	})
	if err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}
	if output != "" {
		t.Errorf("quiet mode produced output: %q", output)
	}
}

func TestStringsCommand(t *testing.T) {
	data := testutil.Root(nil,
		testutil.StringFileInfo(
			testutil.Table("040904B0", format.NameProductName, "English", "Custom", "x"),
			testutil.Table("040704B0", format.NameProductName, "Deutsch"),
		),
	).Bytes()
	path := testutil.WriteFile(t, "multi.res", data)

	resetFlags()
	cfg.Loader = loaderRaw
	output, err := captureOutput(t, func() error { return runStrings([]string{path}) })
	if err != nil {
		t.Fatalf("runStrings() error = %v", err)
	}
	assertContains(t, output, []string{"[040904B0]", "English", "Custom:"})
	assertNotContains(t, output, []string{"Deutsch"})

	cfg.Language = 0x0407
	output, err = captureOutput(t, func() error { return runStrings([]string{path}) })
	if err != nil {
		t.Fatalf("runStrings() error = %v", err)
	}
	assertContains(t, output, []string{"Deutsch"})

	stringsAll = true
	output, err = captureOutput(t, func() error { return runStrings([]string{path}) })
	if err != nil {
		t.Fatalf("runStrings() error = %v", err)
	}
	assertContains(t, output, []string{"[040904B0]", "[040704B0]", "English", "Deutsch"})

	jsonOut = true
	output, err = captureOutput(t, func() error { return runStrings([]string{path}) })
	if err != nil {
		t.Fatalf("runStrings() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"key": "040704B0"`})
}

func TestFixedCommand(t *testing.T) {
	resetFlags()
	path := standardExe(t)

	output, err := captureOutput(t, func() error { return runFixed([]string{path}) })
	if err != nil {
		t.Fatalf("runFixed() error = %v", err)
	}
	assertContains(t, output, []string{"1.2.3.4", "5.6.7.8", "VOS_NT_WINDOWS32", "VFT_APP", "Structure:       1.0"})

	jsonOut = true
	output, err = captureOutput(t, func() error { return runFixed([]string{path}) })
	if err != nil {
		t.Fatalf("runFixed() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"file_os": "VOS_NT_WINDOWS32"`, `"flags": []`})

	// No fixed info at all
	resetFlags()
	cfg.Loader = loaderRaw
	bare := testutil.WriteFile(t, "bare.res", testutil.Root(nil).Bytes())
	if _, err := captureOutput(t, func() error { return runFixed([]string{bare}) }); err == nil {
		t.Error("expected error when fixed info is missing")
	}
}

func TestTranslationsCommand(t *testing.T) {
	data := testutil.Root(nil,
		testutil.StringFileInfo(testutil.Table("040904B0", format.NameProductName, "x")),
		testutil.VarFileInfo(
			format.Translation{Language: 0x0409, Codepage: 0x04B0},
			format.Translation{Language: 0x0407, Codepage: 0x04E4},
		),
	).Bytes()
	path := testutil.WriteFile(t, "tr.res", data)

	resetFlags()
	cfg.Loader = loaderRaw
	output, err := captureOutput(t, func() error { return runTranslations([]string{path}) })
	if err != nil {
		t.Fatalf("runTranslations() error = %v", err)
	}
	assertContains(t, output, []string{"040904B0  language 0x0409  codepage 1200", "040704E4  language 0x0407  codepage 1252  (no string table)"})

	jsonOut = true
	output, err = captureOutput(t, func() error { return runTranslations([]string{path}) })
	if err != nil {
		t.Fatalf("runTranslations() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"has_table": false`})
}

func TestDumpCommand(t *testing.T) {
	resetFlags()
	path := standardExe(t)

	output, err := captureOutput(t, func() error { return runDump([]string{path}) })
	if err != nil {
		t.Fatalf("runDump() error = %v", err)
	}
	assertContains(t, output, []string{
		"[0x0000] VS_VERSION_INFO",
		"  ",
		"StringFileInfo",
		"040904B0",
		`"Contoso Ltd."`,
		"Translation",
		"52 bytes",
	})

	dumpDepth = 1
	output, err = captureOutput(t, func() error { return runDump([]string{path}) })
	if err != nil {
		t.Fatalf("runDump() error = %v", err)
	}
	assertNotContains(t, output, []string{"StringFileInfo"})

	dumpDepth = 0
	dumpHex = true
	output, err = captureOutput(t, func() error { return runDump([]string{path}) })
	if err != nil {
		t.Fatalf("runDump() error = %v", err)
	}
	assertContains(t, output, []string{"bd 04 ef fe"})

	jsonOut = true
	output, err = captureOutput(t, func() error { return runDump([]string{path}) })
	if err != nil {
		t.Fatalf("runDump() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"key": "VS_VERSION_INFO"`, `"text": "Contoso Ltd."`})
}

func TestQueryCommand(t *testing.T) {
	resetFlags()
	path := standardExe(t)

	tests := []struct {
		query   string
		json    bool
		want    []string
		wantErr bool
	}{
		{query: `\StringFileInfo\040904B0\ProductName`, want: []string{"Widget Suite"}},
		{query: `/stringfileinfo/040904b0/productname`, want: []string{"Widget Suite"}},
		{query: `\VarFileInfo\Translation`, want: []string{"040904B0"}},
		{query: `\`, want: []string{"bd 04 ef fe"}},
		{query: `\VarFileInfo\Translation`, json: true, want: []string{`"hex": "0904b004"`, `"type": "binary"`}},
		{query: `\StringFileInfo\000004B0\ProductName`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			jsonOut = tt.json
			output, err := captureOutput(t, func() error { return runQuery([]string{path, tt.query}) })
			if (err != nil) != tt.wantErr {
				t.Fatalf("runQuery() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.want)
		})
	}
}

func TestDiagnoseCommand(t *testing.T) {
	data := testutil.Root(testutil.Fixed(format.FixedFileInfo{Signature: 0x12345678}),
		testutil.StringFileInfo(testutil.Table("english", format.NameProductName, "x")),
	).Bytes()
	path := testutil.WriteFile(t, "odd.res", data)

	resetFlags()
	cfg.Loader = loaderRaw
	output, err := captureOutput(t, func() error { return runDiagnose(nil, []string{path}) })
	if err != nil {
		t.Fatalf("runDiagnose() error = %v", err)
	}
	assertContains(t, output, []string{
		"issue(s)",
		"fixed file info signature mismatch",
		"string table key is not a language/codepage pair",
		"no translation table",
	})

	jsonOut = true
	output, err = captureOutput(t, func() error { return runDiagnose(nil, []string{path}) })
	if err != nil {
		t.Fatalf("runDiagnose() error = %v", err)
	}
	assertJSON(t, output)

	jsonOut = false
	diagOutputFile = filepath.Join(t.TempDir(), "report.txt")
	if _, err := captureOutput(t, func() error { return runDiagnose(nil, []string{path}) }); err != nil {
		t.Fatalf("runDiagnose() error = %v", err)
	}
	report, err := os.ReadFile(diagOutputFile)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	assertContains(t, string(report), []string{"signature mismatch"})
}
