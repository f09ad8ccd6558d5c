package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"watchcli/internal/config"
	"watchcli/internal/infrastructure"
	"watchcli/internal/pipeline"
	"watchcli/internal/report"
)

// options carries the parsed command-line flags.
type options struct {
	input      string
	output     string
	configPath string
	excel      bool
	verbose    bool
}

func main() {
	opts := parseFlags(os.Args[1:])

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	applyFlags(cfg, opts)

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if err := run(context.Background(), logger, cfg, os.Stdout); err != nil {
		logger.Error("Analysis failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) options {
	var opts options
	fs := flag.NewFlagSet("history-report", flag.ExitOnError)
	fs.StringVar(&opts.input, "input", "", "viewing history export to analyze (.csv or .xlsx)")
	fs.StringVar(&opts.output, "output", "", "directory for report artifacts (defaults to reports)")
	fs.StringVar(&opts.configPath, "config", "", "config file path (defaults to watchcli.yaml when present)")
	fs.BoolVar(&opts.excel, "excel", false, "additionally write the report workbook (report.xlsx)")
	fs.BoolVar(&opts.verbose, "verbose", false, "log at debug level")
	fs.Parse(args)
	return opts
}

// applyFlags overlays command-line flags on the merged configuration.
// Flags win over both the config file and the environment.
func applyFlags(cfg *config.Config, opts options) {
	if opts.input != "" {
		cfg.Input.Path = opts.input
	}
	if opts.output != "" {
		cfg.Output.Dir = opts.output
	}
	if opts.excel {
		cfg.Output.Excel = true
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, stdout io.Writer) error {
	if err := cfg.EnsureOutputDir(); err != nil {
		return err
	}

	rep, err := pipeline.New(logger, cfg).Run(ctx)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoInput) {
			return fmt.Errorf("%w (use -input to point at the export file)", err)
		}
		return err
	}

	report.Render(stdout, rep)
	fmt.Fprintf(stdout, "\nArtifacts written to %s\n", cfg.Output.Dir)
	return nil
}
