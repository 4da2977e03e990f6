package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goprofile/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate loads the configuration file and checks it for problems
before any profiling runs.

Checks performed:
  - Configuration syntax and required fields
  - Source types (ndjson, mysql) and their settings
  - NDJSON input file existence
  - Logging settings

Example:
  goprofile validate --config goprofile.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Check NDJSON input files exist
	var warnings int
	for _, name := range cfg.ListSources() {
		src, err := cfg.GetSource(name)
		if err != nil {
			return err
		}
		if src.Type != "ndjson" || src.Path == "-" {
			continue
		}
		if _, err := os.Stat(src.Path); err != nil {
			cmd.Printf("warning: source %q: input file %s is not accessible\n", name, src.Path)
			warnings++
		}
	}

	cmd.Printf("Configuration %s is valid (%d source(s), %d warning(s))\n",
		configFile, len(cfg.Sources), warnings)
	return nil
}
