package report

import (
	"fmt"
	"io"
)

// Render writes a human-readable summary of the report to w.
func Render(w io.Writer, r *Report) {
	fmt.Fprintf(w, "Viewing History Analysis - Summary Report\n")
	fmt.Fprintf(w, "=========================================\n\n")
	fmt.Fprintf(w, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	if r.Source != "" {
		fmt.Fprintf(w, "Source: %s\n", r.Source)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "OVERVIEW\n")
	fmt.Fprintf(w, "--------\n")
	fmt.Fprintf(w, "Sessions: %d\n", r.Totals.Sessions)
	fmt.Fprintf(w, "Total Watched: %.1f hours\n", r.Totals.TotalHours)
	fmt.Fprintf(w, "Active Days: %d\n", r.Totals.ActiveDays)
	fmt.Fprintf(w, "Average per Active Day: %.1f minutes\n", r.Totals.AvgMinutesPerActive)
	fmt.Fprintf(w, "Date Range: %s\n\n", formatDateRange(r.DateRange))

	fmt.Fprintf(w, "CONTENT SPLIT\n")
	fmt.Fprintf(w, "-------------\n")
	fmt.Fprintf(w, "Movies: %d sessions (%.1f%%)\n", r.ContentSplit.MovieSessions, r.ContentSplit.MoviePercent)
	fmt.Fprintf(w, "TV Shows: %d sessions (%.1f%%)\n\n", r.ContentSplit.TVShowSessions, r.ContentSplit.TVShowPercent)

	fmt.Fprintf(w, "TOP SHOWS\n")
	fmt.Fprintf(w, "---------\n")
	if len(r.TopShows) == 0 {
		fmt.Fprintf(w, "N/A\n")
	}
	for i, show := range r.TopShows {
		fmt.Fprintf(w, "%2d. %s: %.1f hours (%d sessions)\n", i+1, show.ShowName, show.TotalHours, show.Sessions)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "MONTHLY VIEWING\n")
	fmt.Fprintf(w, "---------------\n")
	if len(r.Monthly) == 0 {
		fmt.Fprintf(w, "N/A\n")
	}
	for _, m := range r.Monthly {
		fmt.Fprintf(w, "%-9s %8.1f hours  (%d sessions)\n", m.Month+":", m.Hours, m.Sessions)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "RECORD DAY\n")
	fmt.Fprintf(w, "----------\n")
	if r.RecordDay != nil {
		fmt.Fprintf(w, "%s (%s): %.1f minutes\n\n", r.RecordDay.Date.Format("2006-01-02"), r.RecordDay.Weekday, r.RecordDay.TotalMinutes)
	} else {
		fmt.Fprintf(w, "N/A\n\n")
	}

	fmt.Fprintf(w, "DAILY TOTALS NORMALITY (Shapiro-Wilk)\n")
	fmt.Fprintf(w, "-------------------------------------\n")
	if r.Normality.Skipped {
		fmt.Fprintf(w, "skipped: %s (n=%d)\n\n", r.Normality.SkipReason, r.Normality.N)
	} else {
		fmt.Fprintf(w, "W: %.4f, p-value: %.4f (n=%d)\n\n", r.Normality.W, r.Normality.PValue, r.Normality.N)
	}

	fmt.Fprintf(w, "WEEKDAY EFFECT (Kruskal-Wallis)\n")
	fmt.Fprintf(w, "-------------------------------\n")
	switch {
	case r.WeekdayEffect.Skipped, r.WeekdayEffect.Test == nil:
		fmt.Fprintf(w, "skipped: %s\n", r.WeekdayEffect.SkipReason)
	case r.WeekdayEffect.Significant:
		fmt.Fprintf(w, "H: %.4f (df=%d), p-value: %.4f\n", r.WeekdayEffect.Test.H, r.WeekdayEffect.Test.DF, r.WeekdayEffect.Test.PValue)
		fmt.Fprintf(w, "Viewing differs across weekdays (p < %.2f)\n", significanceLevel)
	default:
		fmt.Fprintf(w, "H: %.4f (df=%d), p-value: %.4f\n", r.WeekdayEffect.Test.H, r.WeekdayEffect.Test.DF, r.WeekdayEffect.Test.PValue)
		fmt.Fprintf(w, "No weekday effect detected (p >= %.2f)\n", significanceLevel)
	}
}

func formatDateRange(dr *DateRange) string {
	if dr == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s to %s", dr.First.Format("2006-01-02"), dr.Last.Format("2006-01-02"))
}
