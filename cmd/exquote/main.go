// Package main provides the CLI entry point for exquote-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/exquote-go/internal/config"
	"github.com/ukaji3/exquote-go/pkg/exquote"
	"github.com/ukaji3/exquote-go/pkg/exquote/models"
	"github.com/ukaji3/exquote-go/pkg/exquote/output"
)

var (
	configPath string
	outputPath string
	format     string
	pretty     bool
	allSheets  bool
	rawValues  bool
	workers    int
	verbose    bool
	flatten    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exquote [file-or-folder...]",
		Short: "Extract quotation data from supplier spreadsheets",
		Long: `exquote-go reads .xls and .xlsx quotations, recovers the recipient,
date, document number and product lines, and writes JSON, xlsx or SQLite.`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML config file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout for json)")
	rootCmd.Flags().StringVar(&format, "format", "", "Output format: json, xlsx, sqlite")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&flatten, "flat", false, "Write JSON as flat product records")
	rootCmd.Flags().BoolVar(&allSheets, "all-sheets", false, "Extract every sheet instead of only the first")
	rootCmd.Flags().BoolVar(&rawValues, "raw", false, "Read every cell unformatted, dates included")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Files processed concurrently")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	// Load config file, then let flags override it
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Build logger
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	// Expand folders into workbook paths
	paths, err := exquote.ExpandPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no workbooks found in %v", args)
	}

	// Map config to extraction options
	opts := exquote.DefaultOptions()
	if cfg.Extract.AllSheets {
		opts.Sheets = exquote.SheetsAll
	}
	opts.RawCellValues = cfg.Extract.RawCellValues
	opts.Workers = cfg.Extract.Workers

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// Extract data
	result, err := exquote.ExtractAll(ctx, paths, opts, logger)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	// Write output
	if err := writeResult(ctx, cfg.Output, result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if n := len(result.Failed()); n > 0 {
		logger.Warn("some files could not be read", zap.Int("failed", n))
	}
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Path = outputPath
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty = pretty
	}
	if flags.Changed("all-sheets") {
		cfg.Extract.AllSheets = allSheets
	}
	if flags.Changed("raw") {
		cfg.Extract.RawCellValues = rawValues
	}
	if flags.Changed("workers") {
		cfg.Extract.Workers = workers
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
}

func newLogger(c config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	// stdout carries JSON results
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func writeResult(ctx context.Context, c config.OutputConfig, result *models.BatchResult) error {
	switch c.Format {
	case "xlsx":
		return output.WriteXLSX(c.Path, result)
	case "sqlite":
		return output.WriteSQLite(ctx, c.Path, result)
	}

	// Serialize to JSON
	var data []byte
	var err error
	if flatten {
		data, err = output.RecordsToJSON(models.Flatten(result), c.Pretty)
	} else {
		data, err = output.ToJSON(result, c.Pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if c.Path == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(c.Path, data, 0644)
}
