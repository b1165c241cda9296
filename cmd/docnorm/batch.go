package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-docnorm/pkg/component"
	"github.com/goliatone/go-docnorm/pkg/pipeline"
)

var (
	flagComponent   string
	flagBatchOutput string
	flagAll         bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.json>",
	Short: "Normalize records from a manifest",
	Long:  "Reads a manifest mapping source file paths to introspected documentation records, normalizes one component (or all with --all), and writes the result as JSON. When several components are listed and none is selected, an interactive picker is shown.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&flagComponent, "component", "", "source path of the component to normalize")
	batchCmd.Flags().StringVarP(&flagBatchOutput, "output", "o", "", "output file (stdout if empty)")
	batchCmd.Flags().BoolVar(&flagAll, "all", false, "normalize every component in the manifest")
}

func runBatch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	manifest := map[string]*component.Doc{}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("decode manifest: %w", err)
	}
	if len(manifest) == 0 {
		return fmt.Errorf("manifest %s lists no components", args[0])
	}

	if flagAll {
		return normalizeAll(cmd, manifest)
	}

	sourcePath, err := pickComponent(manifest)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(sourcePath)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	pipe := pipeline.New(pipelineOptions(cfg, logger)...)
	normalized, err := pipe.Normalize(cmd.Context(), manifest[sourcePath], sourcePath)
	if err != nil {
		return err
	}
	return writeRecord(normalized, flagBatchOutput)
}

func normalizeAll(cmd *cobra.Command, manifest map[string]*component.Doc) error {
	paths := sortedPaths(manifest)

	cfg, err := loadConfig(paths[0])
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	pipe := pipeline.New(pipelineOptions(cfg, logger)...)

	out := make(map[string]*component.Doc, len(manifest))
	for _, path := range paths {
		normalized, err := pipe.Normalize(cmd.Context(), manifest[path], path)
		if err != nil {
			return fmt.Errorf("normalize %s: %w", path, err)
		}
		out[path] = normalized
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')
	if flagBatchOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(flagBatchOutput, data, 0o644)
}

// pickComponent resolves which manifest entry to normalize: the --component
// flag when given, the only entry when there is just one, otherwise an
// interactive prompt.
func pickComponent(manifest map[string]*component.Doc) (string, error) {
	if flagComponent != "" {
		if _, ok := manifest[flagComponent]; !ok {
			return "", fmt.Errorf("component %q is not in the manifest", flagComponent)
		}
		return flagComponent, nil
	}

	paths := sortedPaths(manifest)
	if len(paths) == 1 {
		return paths[0], nil
	}

	var selected string
	prompt := &survey.Select{
		Message: "Component to normalize:",
		Options: paths,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", fmt.Errorf("select component: %w", err)
	}
	return selected, nil
}

func sortedPaths(manifest map[string]*component.Doc) []string {
	paths := make([]string, 0, len(manifest))
	for path := range manifest {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
