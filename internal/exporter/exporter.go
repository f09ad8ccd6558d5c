package exporter

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"watchcli/internal/analytics"
	"watchcli/internal/report"
)

// Artifact file names, created inside the configured output directory.
const (
	DailyTotalsFile    = "daily_totals.csv"
	WeekdayDistFile    = "weekday_distribution.csv"
	HeatmapFile        = "viewing_heatmap.csv"
	QQInputFile        = "qq_input.csv"
	ReportJSONFile     = "report.json"
	ReportWorkbookFile = "report.xlsx"
)

// Config controls artifact output.
type Config struct {
	// Dir is the directory artifacts are written into.
	Dir string
	// IncludeBOM prefixes CSV artifacts with a UTF-8 BOM.
	IncludeBOM bool
	// Excel additionally writes the report workbook.
	Excel bool
}

// Exporter writes the artifact set of one analysis run.
type Exporter struct {
	logger *slog.Logger
	csv    *CSVWriter
	config Config
}

// New creates an Exporter with the provided logger and configuration.
func New(logger *slog.Logger, config Config) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		logger: logger,
		csv:    NewCSVWriter(config.Dir),
		config: config,
	}
}

// WriteAll writes every artifact for the run. Artifacts are independent
// of each other, so they are written concurrently; the first failure
// wins and is returned.
func (e *Exporter) WriteAll(ctx context.Context, rep *report.Report, daily []analytics.DailyAggregate, hourly []analytics.HourlyBucket) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return e.writeDailyTotals(daily) })
	g.Go(func() error { return e.writeWeekdayDistribution(daily) })
	g.Go(func() error { return e.writeQQInput(daily) })
	g.Go(func() error { return e.writeHeatmap(hourly) })
	g.Go(func() error { return e.writeReportJSON(rep) })

	files := 5
	if e.config.Excel {
		files++
		g.Go(func() error { return e.writeWorkbook(rep, daily, hourly) })
	}

	if err := g.Wait(); err != nil {
		return err
	}

	e.logger.InfoContext(ctx, "artifacts written",
		slog.String("dir", e.config.Dir),
		slog.Int("files", files),
	)
	return nil
}
