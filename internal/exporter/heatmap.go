package exporter

import (
	"fmt"

	"watchcli/internal/analytics"
)

// writeHeatmap exports the weekday-by-hour viewing intensity grid. Cells
// with no viewing are omitted; consumers treat missing cells as zero.
func (e *Exporter) writeHeatmap(hourly []analytics.HourlyBucket) error {
	records := make([][]string, 0, len(hourly))
	for _, b := range hourly {
		records = append(records, []string{
			b.Weekday.String(),
			formatInt(b.Hour),
			formatFloat(b.TotalMinutes),
			formatInt(b.ActiveDayCount),
			formatFloat(b.AverageMinutes),
		})
	}

	err := e.csv.WriteCSV(HeatmapFile, WriteOptions{
		Headers:   []string{"Day_Of_Week", "Hour", "Total_Minutes", "Active_Days", "Average_Minutes"},
		Records:   records,
		BOMPrefix: e.config.IncludeBOM,
	})
	if err != nil {
		return fmt.Errorf("write heatmap: %w", err)
	}
	return nil
}
