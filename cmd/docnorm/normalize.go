package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-docnorm/pkg/component"
	"github.com/goliatone/go-docnorm/pkg/pipeline"
)

var (
	flagSource string
	flagOutput string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [record.json]",
	Short: "Normalize a single documentation record",
	Long:  "Reads one introspected documentation record as JSON (from the given file or stdin), runs the normalization pipeline against the --source file path, and writes the canonical record as JSON.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVar(&flagSource, "source", "", "path of the component source file the record was extracted from (required)")
	normalizeCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (stdout if empty)")
	_ = normalizeCmd.MarkFlagRequired("source")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	doc, err := readRecord(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flagSource)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	pipe := pipeline.New(pipelineOptions(cfg, logger)...)
	normalized, err := pipe.Normalize(cmd.Context(), doc, flagSource)
	if err != nil {
		return err
	}

	return writeRecord(normalized, flagOutput)
}

func readRecord(args []string) (*component.Doc, error) {
	var reader io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open record: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var doc component.Doc
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &doc, nil
}

func writeRecord(doc *component.Doc, output string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
