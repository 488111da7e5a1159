package main

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/verkit/internal/testutil"
)

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	var lang, cp, lf string
	cmd.Flags().StringVar(&lang, "lang", "", "")
	cmd.Flags().StringVar(&cp, "codepage", "", "")
	cmd.Flags().StringVar(&lf, "log-format", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadSettingsDefaults(t *testing.T) {
	resetFlags()
	t.Setenv("HOME", t.TempDir())

	s, err := loadSettings(newFlagCmd(t))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0409), s.Language)
	assert.Equal(t, uint16(0x04B0), s.Codepage)
	assert.Equal(t, loaderAuto, s.Loader)
	assert.Equal(t, logFormatText, s.LogFormat)
}

func TestLoadSettingsPrecedence(t *testing.T) {
	resetFlags()
	t.Setenv("HOME", t.TempDir())

	configFile = testutil.WriteFile(t, "verctl.json", []byte(`{"lang": "0C0A", "codepage": "04E4", "loader": "PE"}`))
	s, err := loadSettings(newFlagCmd(t))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0C0A), s.Language)
	assert.Equal(t, uint16(0x04E4), s.Codepage)
	assert.Equal(t, loaderPE, s.Loader)

	t.Setenv("VERCTL_LANG", "0x0407")
	s, err = loadSettings(newFlagCmd(t))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0407), s.Language, "environment overrides config file")
	assert.Equal(t, uint16(0x04E4), s.Codepage)

	s, err = loadSettings(newFlagCmd(t, "--lang", "411", "--codepage", "3a4"))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0411), s.Language, "flag overrides environment")
	assert.Equal(t, uint16(0x03A4), s.Codepage)

	rawInput = true
	s, err = loadSettings(newFlagCmd(t))
	require.NoError(t, err)
	assert.Equal(t, loaderRaw, s.Loader)
}

func TestLoadSettingsErrors(t *testing.T) {
	resetFlags()
	t.Setenv("HOME", t.TempDir())

	_, err := loadSettings(newFlagCmd(t, "--lang", "english"))
	assert.ErrorContains(t, err, "lang")

	t.Setenv("VERCTL_LOADER", "magic")
	_, err = loadSettings(newFlagCmd(t))
	assert.ErrorContains(t, err, "unknown loader")
	t.Setenv("VERCTL_LOADER", "auto")

	_, err = loadSettings(newFlagCmd(t, "--log-format", "xml"))
	assert.ErrorContains(t, err, "log-format")

	configFile = filepath.Join(t.TempDir(), "missing.json")
	_, err = loadSettings(newFlagCmd(t))
	assert.ErrorContains(t, err, "read config")
}

func TestLoadSettingsLogFormat(t *testing.T) {
	resetFlags()
	t.Setenv("HOME", t.TempDir())

	t.Setenv("VERCTL_LOG_FORMAT", "JSON")
	s, err := loadSettings(newFlagCmd(t))
	require.NoError(t, err)
	assert.Equal(t, logFormatJSON, s.LogFormat)

	s, err = loadSettings(newFlagCmd(t, "--log-format", "text"))
	require.NoError(t, err)
	assert.Equal(t, logFormatText, s.LogFormat, "flag overrides environment")
}

func TestLoggerOptions(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	s := defaultSettings()

	opts := loggerOptions(s)
	assert.False(t, opts.Enabled)
	assert.False(t, opts.JSON)

	verbose = true
	s.LogFormat = logFormatJSON
	opts = loggerOptions(s)
	assert.True(t, opts.Enabled)
	assert.True(t, opts.JSON)
	assert.Equal(t, slog.LevelDebug, opts.Level)

	quiet = true
	assert.False(t, loggerOptions(s).Enabled, "quiet wins over verbose")
}

func TestParseHex16(t *testing.T) {
	for in, want := range map[string]uint16{"0409": 0x0409, "0x04B0": 0x04B0, " 4e4 ": 0x04E4, "0": 0} {
		got, err := parseHex16(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "0x", "10000", "zz"} {
		_, err := parseHex16(bad)
		assert.Error(t, err, bad)
	}
}
