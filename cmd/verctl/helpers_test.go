package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/verkit/internal/testutil"
)

// standardExe writes a PE image carrying the standard test resource.
func standardExe(t *testing.T) string {
	t.Helper()
	return testutil.WritePE(t, "widget.exe", testutil.StandardResource(), testutil.PEOptions{})
}

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = true
	rawInput = false
	langFlag = ""
	cpFlag = ""
	configFile = ""
	logFormat = ""
	cfg = defaultSettings()
	cfg.Loader = loaderPE
	stringsAll = false
	dumpDepth = 0
	dumpHex = false
	diagOutputFile = ""
	queryCopy = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
