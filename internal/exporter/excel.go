package exporter

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"watchcli/internal/analytics"
	"watchcli/internal/report"
)

// Workbook sheet names.
const (
	summarySheet = "Summary"
	dailySheet   = "Daily Totals"
	heatmapSheet = "Heatmap"
	showsSheet   = "Top Shows"
)

// writeWorkbook exports the report as a multi-sheet XLSX workbook.
func (e *Exporter) writeWorkbook(rep *report.Report, daily []analytics.DailyAggregate, hourly []analytics.HourlyBucket) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if err := setRows(f, summarySheet, summaryRows(rep)); err != nil {
		return fmt.Errorf("write summary sheet: %w", err)
	}

	if err := addSheet(f, dailySheet, dailyRows(daily)); err != nil {
		return err
	}
	if err := addSheet(f, heatmapSheet, heatmapRows(hourly)); err != nil {
		return err
	}
	if err := addSheet(f, showsSheet, showRows(rep.TopShows)); err != nil {
		return err
	}

	path := filepath.Join(e.config.Dir, ReportWorkbookFile)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func addSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}
	if err := setRows(f, sheet, rows); err != nil {
		return fmt.Errorf("write sheet %q: %w", sheet, err)
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func summaryRows(rep *report.Report) [][]interface{} {
	rows := [][]interface{}{
		{"Generated", rep.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Source", rep.Source},
		{"Sessions", rep.Totals.Sessions},
		{"Total Hours", rep.Totals.TotalHours},
		{"Active Days", rep.Totals.ActiveDays},
		{"Average Minutes per Active Day", rep.Totals.AvgMinutesPerActive},
		{"Movie Sessions", rep.ContentSplit.MovieSessions},
		{"TV Show Sessions", rep.ContentSplit.TVShowSessions},
	}

	if rep.DateRange != nil {
		rows = append(rows, []interface{}{
			"Date Range",
			fmt.Sprintf("%s to %s", rep.DateRange.First.Format("2006-01-02"), rep.DateRange.Last.Format("2006-01-02")),
		})
	}
	if rep.RecordDay != nil {
		rows = append(rows, []interface{}{
			"Record Day",
			fmt.Sprintf("%s (%.1f minutes)", rep.RecordDay.Date.Format("2006-01-02"), rep.RecordDay.TotalMinutes),
		})
	}

	if rep.Normality.Skipped {
		rows = append(rows, []interface{}{"Shapiro-Wilk", "skipped: " + rep.Normality.SkipReason})
	} else {
		rows = append(rows,
			[]interface{}{"Shapiro-Wilk W", rep.Normality.W},
			[]interface{}{"Shapiro-Wilk p-value", rep.Normality.PValue},
		)
	}

	if rep.WeekdayEffect.Skipped {
		rows = append(rows, []interface{}{"Kruskal-Wallis", "skipped: " + rep.WeekdayEffect.SkipReason})
	} else {
		rows = append(rows,
			[]interface{}{"Kruskal-Wallis H", rep.WeekdayEffect.Test.H},
			[]interface{}{"Kruskal-Wallis df", rep.WeekdayEffect.Test.DF},
			[]interface{}{"Kruskal-Wallis p-value", rep.WeekdayEffect.Test.PValue},
		)
	}
	return rows
}

func dailyRows(daily []analytics.DailyAggregate) [][]interface{} {
	rows := make([][]interface{}, 0, len(daily)+1)
	rows = append(rows, []interface{}{"Date", "Total Minutes", "Day of Week", "Month"})
	for _, d := range daily {
		rows = append(rows, []interface{}{
			d.Date.Format("2006-01-02"),
			d.TotalMinutes,
			d.Weekday.String(),
			d.Month,
		})
	}
	return rows
}

func heatmapRows(hourly []analytics.HourlyBucket) [][]interface{} {
	rows := make([][]interface{}, 0, len(hourly)+1)
	rows = append(rows, []interface{}{"Day of Week", "Hour", "Total Minutes", "Active Days", "Average Minutes"})
	for _, b := range hourly {
		rows = append(rows, []interface{}{
			b.Weekday.String(),
			b.Hour,
			b.TotalMinutes,
			b.ActiveDayCount,
			b.AverageMinutes,
		})
	}
	return rows
}

func showRows(shows []analytics.ShowSummary) [][]interface{} {
	rows := make([][]interface{}, 0, len(shows)+1)
	rows = append(rows, []interface{}{"Rank", "Show", "Total Hours", "Sessions"})
	for i, s := range shows {
		rows = append(rows, []interface{}{i + 1, s.ShowName, s.TotalHours, s.Sessions})
	}
	return rows
}
