package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goprofile/internal/config"
	"github.com/dbsmedya/goprofile/internal/logger"
	"github.com/dbsmedya/goprofile/internal/profile"
	"github.com/dbsmedya/goprofile/internal/record"
	"github.com/dbsmedya/goprofile/internal/render"
	"github.com/dbsmedya/goprofile/internal/source"
)

var profileSource string

var profileCmd = &cobra.Command{
	Use:   "profile [file]",
	Short: "Profile property types across a record stream",
	Long: `Profile streams records from a source and reports, per property name,
the set of distinct runtime types observed for that property's value.
Properties appear in the order they were first observed across the
whole stream; each property's type labels appear in first-seen order
with no duplicates.

The input is either a configured source (--source), an NDJSON file
given as a positional argument, or "-" for stdin.

Example:
  goprofile profile events.ndjson
  goprofile profile --config goprofile.yaml --source orders
  cat events.ndjson | goprofile profile - --property id --property status`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVarP(&profileSource, "source", "s", "",
		"Source name from configuration file")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadProfileConfig(args)
	if err != nil {
		return err
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Properties, overrides.Excludes)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	src, srcName, err := buildSource(ctx, cfg, args)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	log = log.WithSource(srcName)
	log.Infow("Starting profile operation", "config", GetConfigFile())

	kinds := record.DefaultKinds()
	if overrides.DataOnly || !cfg.Profile.IncludeComputed {
		kinds = []record.PropertyKind{record.KindData}
	}

	agg := profile.NewAggregator(profile.Options{
		Properties: cfg.Profile.Properties,
		Exclude:    cfg.Profile.Exclude,
		Kinds:      kinds,
		Logger:     log,
	})

	var skipped int64
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A bad record aborts only itself, never the stream.
			log.Warnw("Skipping record", "error", err)
			skipped++
			continue
		}

		if err := agg.Observe(rec); err != nil {
			log.Warnw("Skipping record", "error", err)
			skipped++
			continue
		}
	}

	result := agg.Finalize()

	cmd.Print(render.Table(result, &render.TableOptions{Color: !noColor}))
	cmd.Println()
	cmd.Println(render.Summary(result))
	if skipped > 0 {
		cmd.Printf("Skipped %d invalid record(s)\n", skipped)
	}

	log.Infow("Profile complete",
		"records", result.Stats.RecordsObserved,
		"properties", result.Stats.PropertiesSeen,
		"skipped", skipped,
	)

	return nil
}

// loadProfileConfig loads the config file. A missing file is tolerated when
// the input comes from a positional argument instead of a configured source.
func loadProfileConfig(args []string) (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		if profileSource == "" && len(args) == 1 {
			return config.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// buildSource resolves the record stream: a configured source by name, an
// NDJSON file path, or stdin via "-".
func buildSource(ctx context.Context, cfg *config.Config, args []string) (source.Source, string, error) {
	if profileSource != "" {
		srcCfg, err := cfg.GetSource(profileSource)
		if err != nil {
			return nil, "", err
		}
		src, err := openConfiguredSource(ctx, srcCfg)
		if err != nil {
			return nil, "", err
		}
		return src, profileSource, nil
	}

	if len(args) == 0 {
		return nil, "", fmt.Errorf("no input: pass an NDJSON file, \"-\" for stdin, or --source")
	}

	path := args[0]
	if path == "-" {
		return source.NewNDJSONSource(os.Stdin), "stdin", nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input file: %w", err)
	}
	return source.NewNDJSONSource(file), path, nil
}

// openConfiguredSource builds a Source from a config entry.
func openConfiguredSource(ctx context.Context, srcCfg *config.SourceConfig) (source.Source, error) {
	switch srcCfg.Type {
	case "ndjson":
		if srcCfg.Path == "-" {
			return source.NewNDJSONSource(os.Stdin), nil
		}
		file, err := os.Open(srcCfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		return source.NewNDJSONSource(file), nil
	case "mysql":
		return source.OpenSQLSource(ctx, srcCfg)
	default:
		return nil, fmt.Errorf("unsupported source type %q", srcCfg.Type)
	}
}
