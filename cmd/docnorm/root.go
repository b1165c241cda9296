package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-docnorm/internal/config"
	"github.com/goliatone/go-docnorm/pkg/pipeline"
)

var (
	flagConfigDir string
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:           "docnorm",
	Short:         "Normalize machine-extracted component documentation",
	Long:          "docnorm merges introspection data with documentation-comment tags into one canonical record and resolves embedded usage examples.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "directory containing docnorm.yaml (defaults to the source file's directory)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "warning log level (debug, info, warn, error)")

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(batchCmd)
}

// loadConfig resolves configuration for a run. CLI flags win over file and
// environment settings.
func loadConfig(sourcePath string) (*config.Config, error) {
	dir := flagConfigDir
	if dir == "" && sourcePath != "" {
		dir = filepath.Dir(sourcePath)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func pipelineOptions(cfg *config.Config, logger *slog.Logger) []pipeline.Option {
	return []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithLoaderPrefix(cfg.LoaderPrefix),
		pipeline.WithSynonyms(pipeline.Synonyms{
			Params:  cfg.Synonyms.Params,
			Returns: cfg.Synonyms.Returns,
		}),
	}
}
