package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"watchcli/internal/analytics"
	"watchcli/internal/stats"
	"watchcli/internal/viewing"
)

func sampleReport() *Report {
	recordDate := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	return &Report{
		RunID:       "run-1",
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Source:      "history.csv",
		Totals: Totals{
			Sessions:            420,
			TotalHours:          312.5,
			ActiveDays:          200,
			AvgMinutesPerActive: 93.75,
		},
		DateRange: &DateRange{
			First: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			Last:  time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC),
		},
		ContentSplit: ContentSplit{
			MovieSessions:  70,
			TVShowSessions: 350,
			MoviePercent:   16.666666,
			TVShowPercent:  83.333333,
		},
		TopShows: []analytics.ShowSummary{
			{ShowName: "Dark", TotalHours: 40.25, Sessions: 52},
			{ShowName: "The Wire", TotalHours: 35.0, Sessions: 60},
		},
		Monthly: []MonthlyTotal{
			{Month: "January", Hours: 42.0, Sessions: 61},
			{Month: "February", Hours: 18.5, Sessions: 24},
		},
		RecordDay: &analytics.DailyAggregate{
			Date:         recordDate,
			TotalMinutes: 460,
			Weekday:      viewing.WeekdayOf(recordDate),
			Month:        "January",
		},
		Normality: stats.NormalityResult{W: 0.8421, PValue: 0.0001, N: 200},
		WeekdayEffect: WeekdayEffect{
			Test:        &stats.KruskalWallisResult{H: 18.321, DF: 6, PValue: 0.0055, Groups: 7, N: 200},
			Significant: true,
		},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	Render(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "Viewing History Analysis - Summary Report")
	assert.Contains(t, out, "Source: history.csv")
	assert.Contains(t, out, "Sessions: 420")
	assert.Contains(t, out, "Total Watched: 312.5 hours")
	assert.Contains(t, out, "Date Range: 2023-02-01 to 2024-05-30")
	assert.Contains(t, out, "Movies: 70 sessions (16.7%)")
	assert.Contains(t, out, "TV Shows: 350 sessions (83.3%)")
	assert.Contains(t, out, " 1. Dark: 40.2 hours (52 sessions)")
	assert.Contains(t, out, " 2. The Wire: 35.0 hours (60 sessions)")
	assert.Contains(t, out, "January:      42.0 hours  (61 sessions)")
	assert.Contains(t, out, "February:     18.5 hours  (24 sessions)")
	assert.Contains(t, out, "2024-01-06 (Saturday): 460.0 minutes")
	assert.Contains(t, out, "W: 0.8421, p-value: 0.0001 (n=200)")
	assert.Contains(t, out, "H: 18.3210 (df=6), p-value: 0.0055")
	assert.Contains(t, out, "Viewing differs across weekdays (p < 0.05)")
}

func TestRender_SkippedTests(t *testing.T) {
	r := sampleReport()
	r.Normality = stats.NormalityResult{
		N:          6000,
		Skipped:    true,
		SkipReason: stats.SkipSampleTooLarge,
	}
	r.WeekdayEffect = WeekdayEffect{Skipped: true, SkipReason: "insufficient data"}

	var buf bytes.Buffer
	Render(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "skipped: sample too large (n=6000)")
	assert.Contains(t, out, "skipped: insufficient data")
	assert.NotContains(t, out, "W: ")
}

func TestRender_NonSignificantEffect(t *testing.T) {
	r := sampleReport()
	r.WeekdayEffect = WeekdayEffect{
		Test: &stats.KruskalWallisResult{H: 4.1, DF: 6, PValue: 0.663},
	}

	var buf bytes.Buffer
	Render(&buf, r)

	assert.Contains(t, buf.String(), "No weekday effect detected (p >= 0.05)")
}

func TestRender_EmptyReport(t *testing.T) {
	r := &Report{
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Normality:   stats.NormalityResult{Skipped: true, SkipReason: stats.SkipSampleTooSmall},
		WeekdayEffect: WeekdayEffect{
			Skipped:    true,
			SkipReason: "insufficient data",
		},
	}

	var buf bytes.Buffer
	Render(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "Date Range: N/A")
	assert.Contains(t, out, "RECORD DAY\n----------\nN/A")
	assert.Contains(t, out, "TOP SHOWS\n---------\nN/A")
}
