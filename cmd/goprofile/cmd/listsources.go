package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goprofile/internal/config"
)

var listSourcesCmd = &cobra.Command{
	Use:   "list-sources",
	Short: "List all sources defined in configuration",
	Long: `List-sources displays all record stream sources defined in the
configuration file along with their basic settings.

Example:
  goprofile list-sources --config goprofile.yaml`,
	RunE: runListSources,
}

func init() {
	rootCmd.AddCommand(listSourcesCmd)
}

func runListSources(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Get all source names
	sourceNames := cfg.ListSources()

	if len(sourceNames) == 0 {
		cmd.Printf("No sources defined in %s\n", configFile)
		return nil
	}

	// Sort source names for consistent output
	sort.Strings(sourceNames)

	cmd.Printf("Sources defined in %s:\n\n", configFile)

	for i, name := range sourceNames {
		src, err := cfg.GetSource(name)
		if err != nil {
			return fmt.Errorf("failed to get source %q: %w", name, err)
		}

		// Source header
		cmd.Printf("%d. %s\n", i+1, name)
		cmd.Printf("   Type:   %s\n", src.Type)

		switch src.Type {
		case "ndjson":
			if src.Path == "-" {
				cmd.Printf("   Path:   (stdin)\n")
			} else {
				cmd.Printf("   Path:   %s\n", src.Path)
			}
		case "mysql":
			cmd.Printf("   Query:  %s\n", src.Query)
		}

		// Add spacing between sources
		if i < len(sourceNames)-1 {
			cmd.Println()
		}
	}

	cmd.Printf("\nTotal: %d source(s)\n", len(sourceNames))
	return nil
}
