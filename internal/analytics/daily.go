// Package analytics collapses clean viewing sessions into the aggregate
// tables consumed by the diagnostics, the hypothesis test and the summary
// report: daily totals, hourly intensity buckets and per-show rollups.
// All aggregation is pure over immutable inputs; tables are regenerated
// from the session set on every run.
package analytics

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"watchcli/internal/viewing"
)

// DailyAggregate is one row per calendar date with at least one session.
// Days without viewing never materialize, so TotalMinutes is positive for
// every row by construction.
type DailyAggregate struct {
	Date         time.Time       `json:"date"`
	TotalMinutes float64         `json:"total_minutes"`
	Weekday      viewing.Weekday `json:"day_of_week"`
	Month        string          `json:"month"`
}

// Aggregator builds the aggregate tables from the session set
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator creates an aggregator with the given logger
func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// Daily groups sessions by calendar date and sums their minutes, returning
// one row per distinct date in ascending date order. Weekday uses the
// fixed ISO mapping and Month is the English calendar month name.
//
// The sum of TotalMinutes over all rows equals the sum of DurationMinutes
// over all input sessions.
func (a *Aggregator) Daily(ctx context.Context, sessions []viewing.Session) []DailyAggregate {
	totals := make(map[time.Time]float64)
	for _, s := range sessions {
		totals[s.Date] += s.DurationMinutes
	}

	daily := make([]DailyAggregate, 0, len(totals))
	for date, total := range totals {
		daily = append(daily, DailyAggregate{
			Date:         date,
			TotalMinutes: total,
			Weekday:      viewing.WeekdayOf(date),
			Month:        date.Month().String(),
		})
	}

	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.Before(daily[j].Date)
	})

	a.logger.InfoContext(ctx, "daily aggregation completed",
		slog.Int("sessions", len(sessions)),
		slog.Int("active_days", len(daily)),
	)

	return daily
}

// RecordDay returns the day with the maximum total minutes. Ties are
// broken by the earliest date. The second return is false when the
// aggregate is empty.
func RecordDay(daily []DailyAggregate) (DailyAggregate, bool) {
	if len(daily) == 0 {
		return DailyAggregate{}, false
	}

	best := daily[0]
	for _, d := range daily[1:] {
		if d.TotalMinutes > best.TotalMinutes ||
			(d.TotalMinutes == best.TotalMinutes && d.Date.Before(best.Date)) {
			best = d
		}
	}
	return best, true
}

// ActiveDayCounts counts the daily rows per weekday. This is the
// normalization denominator for hourly buckets: the number of days that
// weekday saw any viewing at all.
func ActiveDayCounts(daily []DailyAggregate) map[viewing.Weekday]int {
	counts := make(map[viewing.Weekday]int, 7)
	for _, d := range daily {
		counts[d.Weekday]++
	}
	return counts
}

// WeekdayGroups splits the daily totals into seven groups in fixed
// Monday..Sunday order for the hypothesis test. Weekdays without active
// days yield empty groups.
func WeekdayGroups(daily []DailyAggregate) [][]float64 {
	byDay := make(map[viewing.Weekday][]float64, 7)
	for _, d := range daily {
		byDay[d.Weekday] = append(byDay[d.Weekday], d.TotalMinutes)
	}

	groups := make([][]float64, 0, 7)
	for _, day := range viewing.Weekdays() {
		groups = append(groups, byDay[day])
	}
	return groups
}
