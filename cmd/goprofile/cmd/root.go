package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile    string
	logLevel   string
	logFormat  string
	properties []string
	excludes   []string
	dataOnly   bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "goprofile",
	Short: "Property/Type Profiler for Semi-Structured Records",
	Long: `A CLI tool for schema discovery and data-quality auditing over
semi-structured data: it streams records and reports, per property name,
the distinct runtime types observed across the whole stream.

Features:
  - NDJSON and MySQL record sources
  - First-observed property ordering across the stream
  - Insertion-ordered, deduplicated type label sets per property
  - Allow-list and exclusion filtering of property names
  - Null/unresolvable values recorded under a sentinel label`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "goprofile.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Property filtering overrides
	rootCmd.PersistentFlags().StringSliceVarP(&properties, "property", "p", nil,
		"Restrict profiling to the named properties (repeatable)")
	rootCmd.PersistentFlags().StringSliceVar(&excludes, "exclude", nil,
		"Exclude the named properties from profiling (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&dataOnly, "data-only", false,
		"Enumerate data properties only, skipping computed accessors")

	// Output
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel   string
	LogFormat  string
	Properties []string
	Excludes   []string
	DataOnly   bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		Properties: properties,
		Excludes:   excludes,
		DataOnly:   dataOnly,
	}
}
