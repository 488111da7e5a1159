package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/verkit/cmd/verctl/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	rawInput   bool
	langFlag   string
	cpFlag     string
	configFile string
	logFormat  string

	// cfg is resolved from flags, environment and the config file before
	// every command runs.
	cfg = defaultSettings()
)

var rootCmd = &cobra.Command{
	Use:   "verctl",
	Short: "Inspect the version resources of Windows executables",
	Long: `verctl reads the VS_VERSIONINFO resource embedded in Windows
executables and libraries (.exe, .dll, .sys, ...) and prints the fixed file
info, string tables and translation table it contains. It runs on any
platform: PE images are read directly unless the system loader is chosen.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		cfg = s
		logger.Init(loggerOptions(cfg))
		logger.Debug("settings resolved", "lang", fmt.Sprintf("%04X", cfg.Language),
			"codepage", fmt.Sprintf("%04X", cfg.Codepage), "loader", cfg.Loader)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		BoolVar(&rawInput, "raw", false, "Input is a bare version resource, not a PE image")
	rootCmd.PersistentFlags().
		StringVar(&langFlag, "lang", "", "Preferred language ID in hex (default 0409)")
	rootCmd.PersistentFlags().
		StringVar(&cpFlag, "codepage", "", "Preferred codepage in hex (default 04B0)")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "Config file (default $HOME/.verctl/verctl.{json,yaml,toml})")
	rootCmd.PersistentFlags().
		StringVar(&logFormat, "log-format", "", "Log format for --verbose: text or json (default text)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprint(os.Stderr, paint(errorStyle, "Error:")+" ")
	fmt.Fprintf(os.Stderr, format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
