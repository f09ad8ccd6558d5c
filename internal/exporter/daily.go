package exporter

import (
	"fmt"
	"sort"

	"watchcli/internal/analytics"
	"watchcli/internal/stats"
	"watchcli/internal/viewing"
)

// writeDailyTotals exports one row per active day.
func (e *Exporter) writeDailyTotals(daily []analytics.DailyAggregate) error {
	records := make([][]string, 0, len(daily))
	for _, d := range daily {
		records = append(records, []string{
			d.Date.Format("2006-01-02"),
			formatFloat(d.TotalMinutes),
			d.Weekday.String(),
			d.Month,
		})
	}

	err := e.csv.WriteCSV(DailyTotalsFile, WriteOptions{
		Headers:   []string{"Date", "Total_Minutes", "Day_Of_Week", "Month"},
		Records:   records,
		BOMPrefix: e.config.IncludeBOM,
	})
	if err != nil {
		return fmt.Errorf("write daily totals: %w", err)
	}
	return nil
}

// writeWeekdayDistribution exports per-weekday viewing volume. All seven
// weekdays appear, zero-filled when the history never touches one.
func (e *Exporter) writeWeekdayDistribution(daily []analytics.DailyAggregate) error {
	type rollup struct {
		days    int
		minutes float64
	}
	byWeekday := make(map[viewing.Weekday]rollup)
	for _, d := range daily {
		r := byWeekday[d.Weekday]
		r.days++
		r.minutes += d.TotalMinutes
		byWeekday[d.Weekday] = r
	}

	records := make([][]string, 0, 7)
	for _, wd := range viewing.Weekdays() {
		r := byWeekday[wd]
		avg := 0.0
		if r.days > 0 {
			avg = r.minutes / float64(r.days)
		}
		records = append(records, []string{
			wd.String(),
			formatInt(r.days),
			formatFloat(r.minutes),
			formatFloat(avg),
		})
	}

	err := e.csv.WriteCSV(WeekdayDistFile, WriteOptions{
		Headers:   []string{"Day_Of_Week", "Active_Days", "Total_Minutes", "Average_Minutes"},
		Records:   records,
		BOMPrefix: e.config.IncludeBOM,
	})
	if err != nil {
		return fmt.Errorf("write weekday distribution: %w", err)
	}
	return nil
}

// writeQQInput exports sorted daily totals paired with standard normal
// quantiles at Blom plotting positions, ready for a QQ plot.
func (e *Exporter) writeQQInput(daily []analytics.DailyAggregate) error {
	values := make([]float64, len(daily))
	for i, d := range daily {
		values[i] = d.TotalMinutes
	}
	sort.Float64s(values)

	n := len(values)
	records := make([][]string, 0, n)
	for i, v := range values {
		p := (float64(i+1) - 0.375) / (float64(n) + 0.25)
		records = append(records, []string{
			formatInt(i + 1),
			formatFloat(v),
			formatQuantile(stats.NormalQuantile(p)),
		})
	}

	err := e.csv.WriteCSV(QQInputFile, WriteOptions{
		Headers:   []string{"Index", "Daily_Minutes", "Theoretical_Quantile"},
		Records:   records,
		BOMPrefix: e.config.IncludeBOM,
	})
	if err != nil {
		return fmt.Errorf("write qq input: %w", err)
	}
	return nil
}
