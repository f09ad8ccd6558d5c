// Package pipeline wires the stages of one analysis run together: load,
// filter, aggregate, test, report, export.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"watchcli/internal/analytics"
	"watchcli/internal/config"
	"watchcli/internal/exporter"
	"watchcli/internal/infrastructure"
	"watchcli/internal/loader"
	"watchcli/internal/report"
	"watchcli/internal/stats"
	"watchcli/internal/viewing"
)

// ErrNoInput reports a run started without an input file.
var ErrNoInput = errors.New("no input file specified")

// Pipeline runs a full analysis over one viewing history export.
type Pipeline struct {
	logger   *slog.Logger
	cfg      *config.Config
	loader   *loader.Loader
	filter   *viewing.Filter
	agg      *analytics.Aggregator
	builder  *report.Builder
	exporter *exporter.Exporter
}

// New assembles a Pipeline from the application configuration.
func New(logger *slog.Logger, cfg *config.Config) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger: logger,
		cfg:    cfg,
		loader: loader.NewLoader(infrastructure.WithComponent(logger, "loader")),
		filter: viewing.NewFilter(infrastructure.WithComponent(logger, "filter"), viewing.FilterConfig{
			ExtraExcludedTags: cfg.Filter.ExtraExcludedTags,
		}),
		agg: analytics.NewAggregator(infrastructure.WithComponent(logger, "analytics")),
		builder: report.NewBuilder(infrastructure.WithComponent(logger, "report"), report.BuilderConfig{
			TopShows: cfg.Report.TopShows,
		}),
		exporter: exporter.New(infrastructure.WithComponent(logger, "exporter"), exporter.Config{
			Dir:        cfg.Output.Dir,
			IncludeBOM: cfg.Output.IncludeBOM,
			Excel:      cfg.Output.Excel,
		}),
	}
}

// Run executes the analysis and writes all artifacts. The returned
// report is what the caller renders. A run ID is attached to the
// context when the caller did not provide one.
func (p *Pipeline) Run(ctx context.Context) (*report.Report, error) {
	ctx = infrastructure.EnsureRunID(ctx)
	start := time.Now()

	inputPath := strings.TrimSpace(p.cfg.Input.Path)
	if inputPath == "" {
		return nil, ErrNoInput
	}

	p.logger.InfoContext(ctx, "analysis run started",
		slog.String("input", inputPath),
		slog.String("output_dir", p.cfg.Output.Dir),
	)

	records, err := p.loader.Load(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("load viewing history: %w", err)
	}

	sessions := p.filter.Filter(ctx, records)
	if len(sessions) == 0 {
		// Not fatal: the report renders with zeros and skip markers, and
		// the artifacts come out as headed empty tables.
		p.logger.WarnContext(ctx, "no valid viewing sessions after filtering",
			slog.String("input", inputPath),
		)
	}

	daily := p.agg.Daily(ctx, sessions)
	hourly := p.agg.Hourly(ctx, sessions, daily)
	shows := p.agg.Shows(ctx, sessions)

	in := report.BuildInput{
		Source:    filepath.Base(inputPath),
		Sessions:  sessions,
		Daily:     daily,
		Shows:     shows,
		Normality: stats.ShapiroWilk(dailyMinutes(daily)),
	}

	kw, err := stats.KruskalWallis(analytics.WeekdayGroups(daily))
	switch {
	case err == nil:
		in.WeekdayTest = &kw
	case errors.Is(err, stats.ErrInsufficientData):
		in.WeekdaySkipReason = err.Error()
		p.logger.WarnContext(ctx, "weekday comparison skipped", slog.String("reason", err.Error()))
	default:
		return nil, fmt.Errorf("weekday comparison: %w", err)
	}

	rep := p.builder.Build(ctx, in)

	if err := p.exporter.WriteAll(ctx, rep, daily, hourly); err != nil {
		return nil, fmt.Errorf("write artifacts: %w", err)
	}

	p.logger.InfoContext(ctx, "analysis run completed",
		slog.Int("sessions", len(sessions)),
		slog.Int("active_days", len(daily)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return rep, nil
}

func dailyMinutes(daily []analytics.DailyAggregate) []float64 {
	values := make([]float64, len(daily))
	for i, d := range daily {
		values[i] = d.TotalMinutes
	}
	return values
}
