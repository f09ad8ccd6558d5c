package analytics

import (
	"context"
	"log/slog"
	"sort"

	"watchcli/internal/viewing"
)

// HourlyBucket is one row per (weekday, hour) pair observed in the session
// data. ActiveDayCount is joined from the daily table grouped by weekday,
// not recomputed per session, so AverageMinutes amortizes the bucket's
// total over every day that weekday had any viewing.
type HourlyBucket struct {
	Weekday        viewing.Weekday `json:"day_of_week"`
	Hour           int             `json:"hour"`
	TotalMinutes   float64         `json:"total_minutes"`
	ActiveDayCount int             `json:"active_day_count"`
	AverageMinutes float64         `json:"average_minutes"`
}

// Hourly groups sessions by (weekday, hour-of-day) and normalizes each
// bucket's total by the weekday's active-day count from the daily table.
// Buckets exist only for observed pairs; a bucket's weekday always has at
// least one active day, so the division is safe. Rows are ordered by
// (weekday, hour).
//
// The averages answer "how intense is this hour slot on days when any
// viewing happened", deliberately not amortized over zero-activity
// calendar days.
func (a *Aggregator) Hourly(ctx context.Context, sessions []viewing.Session, daily []DailyAggregate) []HourlyBucket {
	activeDays := ActiveDayCounts(daily)

	type bucketKey struct {
		day  viewing.Weekday
		hour int
	}

	totals := make(map[bucketKey]float64)
	for _, s := range sessions {
		totals[bucketKey{day: s.Weekday(), hour: s.Hour()}] += s.DurationMinutes
	}

	buckets := make([]HourlyBucket, 0, len(totals))
	for key, total := range totals {
		count := activeDays[key.day]
		if count == 0 {
			// only possible when daily was not derived from these sessions
			continue
		}
		buckets = append(buckets, HourlyBucket{
			Weekday:        key.day,
			Hour:           key.hour,
			TotalMinutes:   total,
			ActiveDayCount: count,
			AverageMinutes: total / float64(count),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Weekday != buckets[j].Weekday {
			return buckets[i].Weekday < buckets[j].Weekday
		}
		return buckets[i].Hour < buckets[j].Hour
	})

	a.logger.InfoContext(ctx, "hourly normalization completed",
		slog.Int("sessions", len(sessions)),
		slog.Int("buckets", len(buckets)),
	)

	return buckets
}
