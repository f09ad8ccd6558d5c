package report

import (
	"context"
	"log/slog"
	"time"

	"watchcli/internal/analytics"
	"watchcli/internal/infrastructure"
	"watchcli/internal/stats"
	"watchcli/internal/viewing"
)

// DefaultTopShows is the ranking depth used when none is configured.
const DefaultTopShows = 5

// BuilderConfig tunes report assembly.
type BuilderConfig struct {
	// TopShows caps the show ranking length.
	TopShows int
}

// Builder assembles reports from aggregated viewing data.
type Builder struct {
	logger *slog.Logger
	config BuilderConfig
}

// NewBuilder creates a Builder with the provided logger and configuration.
func NewBuilder(logger *slog.Logger, config BuilderConfig) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if config.TopShows <= 0 {
		config.TopShows = DefaultTopShows
	}
	return &Builder{logger: logger, config: config}
}

// BuildInput carries everything one report is assembled from.
type BuildInput struct {
	Source            string
	Sessions          []viewing.Session
	Daily             []analytics.DailyAggregate
	Shows             []analytics.ShowSummary
	Normality         stats.NormalityResult
	WeekdayTest       *stats.KruskalWallisResult
	WeekdaySkipReason string
}

// Build assembles the report. The run ID is taken from the context when
// one is present.
func (b *Builder) Build(ctx context.Context, in BuildInput) *Report {
	r := &Report{
		RunID:        infrastructure.GetRunID(ctx),
		GeneratedAt:  time.Now().UTC(),
		Source:       in.Source,
		Totals:       buildTotals(in.Sessions, in.Daily),
		ContentSplit: buildContentSplit(in.Sessions),
		Monthly:      buildMonthly(in.Sessions, in.Daily),
		Normality:    in.Normality,
	}

	if len(in.Daily) > 0 {
		r.DateRange = &DateRange{
			First: in.Daily[0].Date,
			Last:  in.Daily[len(in.Daily)-1].Date,
		}
	}

	if record, ok := analytics.RecordDay(in.Daily); ok {
		r.RecordDay = &record
	}

	topN := b.config.TopShows
	if topN > len(in.Shows) {
		topN = len(in.Shows)
	}
	r.TopShows = in.Shows[:topN]

	r.WeekdayEffect = buildWeekdayEffect(in.WeekdayTest, in.WeekdaySkipReason)

	b.logger.InfoContext(ctx, "report assembled",
		slog.Int("sessions", r.Totals.Sessions),
		slog.Int("active_days", r.Totals.ActiveDays),
		slog.Int("top_shows", len(r.TopShows)),
		slog.Bool("weekday_test_skipped", r.WeekdayEffect.Skipped),
	)
	return r
}

func buildTotals(sessions []viewing.Session, daily []analytics.DailyAggregate) Totals {
	var totalMinutes float64
	for _, d := range daily {
		totalMinutes += d.TotalMinutes
	}

	totals := Totals{
		Sessions:   len(sessions),
		TotalHours: totalMinutes / 60,
		ActiveDays: len(daily),
	}
	if totals.ActiveDays > 0 {
		totals.AvgMinutesPerActive = totalMinutes / float64(totals.ActiveDays)
	}
	return totals
}

func buildContentSplit(sessions []viewing.Session) ContentSplit {
	var split ContentSplit
	for _, s := range sessions {
		switch s.ContentType {
		case viewing.ContentTypeMovie:
			split.MovieSessions++
		case viewing.ContentTypeTVShow:
			split.TVShowSessions++
		}
	}
	if total := split.MovieSessions + split.TVShowSessions; total > 0 {
		split.MoviePercent = 100 * float64(split.MovieSessions) / float64(total)
		split.TVShowPercent = 100 * float64(split.TVShowSessions) / float64(total)
	}
	return split
}

// buildMonthly folds daily totals and session counts into per-month rows.
// Months are keyed by name, so January 2023 and January 2024 land in the
// same row, and come back in calendar order.
func buildMonthly(sessions []viewing.Session, daily []analytics.DailyAggregate) []MonthlyTotal {
	minutes := make(map[time.Month]float64)
	for _, d := range daily {
		minutes[d.Date.Month()] += d.TotalMinutes
	}
	counts := make(map[time.Month]int)
	for _, s := range sessions {
		counts[s.Date.Month()]++
	}

	monthly := make([]MonthlyTotal, 0, len(minutes))
	for m := time.January; m <= time.December; m++ {
		if minutes[m] == 0 && counts[m] == 0 {
			continue
		}
		monthly = append(monthly, MonthlyTotal{
			Month:    m.String(),
			Hours:    minutes[m] / 60,
			Sessions: counts[m],
		})
	}
	return monthly
}

func buildWeekdayEffect(test *stats.KruskalWallisResult, skipReason string) WeekdayEffect {
	if test == nil {
		return WeekdayEffect{Skipped: true, SkipReason: skipReason}
	}
	return WeekdayEffect{
		Test:        test,
		Significant: test.PValue < significanceLevel,
	}
}
