package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshuapare/verkit/cmd/verctl/logger"
	"github.com/joshuapare/verkit/internal/format"
)

const (
	envPrefix  = "VERCTL"
	configName = "verctl"
)

// Loader names accepted by the "loader" setting.
const (
	loaderAuto   = "auto"
	loaderPE     = "pe"
	loaderRaw    = "raw"
	loaderSystem = "system"
)

// Log formats accepted by the "log-format" setting.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// settings are the knobs shared by every command.
type settings struct {
	Language uint16
	Codepage uint16
	Loader   string

	// LogFormat selects the handler behind --verbose logging.
	LogFormat string
}

func defaultSettings() settings {
	return settings{
		Language: format.DefaultLanguage,
		Codepage: format.DefaultCodepage,
		Loader:   loaderAuto,

		LogFormat: logFormatText,
	}
}

// loadSettings merges, in increasing precedence, the config file, VERCTL_*
// environment variables and command-line flags.
func loadSettings(cmd *cobra.Command) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("lang", fmt.Sprintf("%04X", format.DefaultLanguage))
	v.SetDefault("codepage", fmt.Sprintf("%04X", format.DefaultCodepage))
	v.SetDefault("loader", loaderAuto)
	v.SetDefault("log-format", logFormatText)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, "."+configName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	flags := cmd.Flags()
	for key, name := range map[string]string{
		"lang":       "lang",
		"codepage":   "codepage",
		"log-format": "log-format",
	} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, err
			}
		}
	}

	s := defaultSettings()
	var err error
	if s.Language, err = parseHex16(v.GetString("lang")); err != nil {
		return settings{}, fmt.Errorf("lang: %w", err)
	}
	if s.Codepage, err = parseHex16(v.GetString("codepage")); err != nil {
		return settings{}, fmt.Errorf("codepage: %w", err)
	}

	s.Loader = strings.ToLower(v.GetString("loader"))
	if rawInput {
		s.Loader = loaderRaw
	}
	switch s.Loader {
	case loaderAuto, loaderPE, loaderRaw, loaderSystem:
	default:
		return settings{}, fmt.Errorf("loader: unknown loader %q (want auto, pe, raw or system)", s.Loader)
	}

	s.LogFormat = strings.ToLower(v.GetString("log-format"))
	switch s.LogFormat {
	case logFormatText, logFormatJSON:
	default:
		return settings{}, fmt.Errorf("log-format: unknown format %q (want text or json)", s.LogFormat)
	}
	return s, nil
}

// loggerOptions maps the resolved settings and the verbosity flags onto the
// logger configuration.
func loggerOptions(s settings) logger.Options {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logger.Options{
		Enabled: verbose && !quiet,
		Level:   level,
		JSON:    s.LogFormat == logFormatJSON,
	}
}

// parseHex16 parses "0409", "0x0409" or "409" as a 16-bit hex value.
func parseHex16(s string) (uint16, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return 0, errors.New("empty value")
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid hex value %q", s)
	}
	return uint16(v), nil
}
