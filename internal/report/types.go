// Package report assembles the analysis results into a single report
// value and renders it for people and machines.
package report

import (
	"time"

	"watchcli/internal/analytics"
	"watchcli/internal/stats"
)

// significanceLevel is the alpha used to call the weekday effect.
const significanceLevel = 0.05

// Report is the complete result of one analysis run.
type Report struct {
	RunID         string                    `json:"run_id"`
	GeneratedAt   time.Time                 `json:"generated_at"`
	Source        string                    `json:"source"`
	Totals        Totals                    `json:"totals"`
	DateRange     *DateRange                `json:"date_range,omitempty"`
	ContentSplit  ContentSplit              `json:"content_split"`
	TopShows      []analytics.ShowSummary   `json:"top_shows"`
	Monthly       []MonthlyTotal            `json:"monthly"`
	RecordDay     *analytics.DailyAggregate `json:"record_day,omitempty"`
	Normality     stats.NormalityResult     `json:"normality"`
	WeekdayEffect WeekdayEffect             `json:"weekday_effect"`
}

// Totals summarizes overall viewing volume.
type Totals struct {
	Sessions            int     `json:"sessions"`
	TotalHours          float64 `json:"total_hours"`
	ActiveDays          int     `json:"active_days"`
	AvgMinutesPerActive float64 `json:"average_minutes_per_active_day"`
}

// DateRange spans the first and last viewing dates.
type DateRange struct {
	First time.Time `json:"first"`
	Last  time.Time `json:"last"`
}

// ContentSplit breaks sessions down by content type.
type ContentSplit struct {
	MovieSessions  int     `json:"movie_sessions"`
	TVShowSessions int     `json:"tv_show_sessions"`
	MoviePercent   float64 `json:"movie_percent"`
	TVShowPercent  float64 `json:"tv_show_percent"`
}

// MonthlyTotal is viewing volume for one calendar month, merged across
// years.
type MonthlyTotal struct {
	Month    string  `json:"month"`
	Hours    float64 `json:"hours"`
	Sessions int     `json:"sessions"`
}

// WeekdayEffect carries the Kruskal-Wallis weekday comparison, or the
// reason it could not run.
type WeekdayEffect struct {
	Test        *stats.KruskalWallisResult `json:"test,omitempty"`
	Significant bool                       `json:"significant"`
	Skipped     bool                       `json:"skipped,omitempty"`
	SkipReason  string                     `json:"skip_reason,omitempty"`
}
