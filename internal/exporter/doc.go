// Package exporter writes the analysis artifacts for a run.
//
// This package contains two main components:
//
// CSVWriter: Core CSV writing functionality with support for headers and
// an optional UTF-8 BOM for Excel compatibility.
//
// Exporter: Fans the report and its aggregates out into the artifact
// files of a run: daily totals, weekday distribution, hourly heatmap,
// QQ plot input, the report JSON, and an optional XLSX workbook.
//
// Example usage:
//
//	exp := exporter.New(logger, exporter.Config{Dir: "reports", IncludeBOM: true})
//
//	err := exp.WriteAll(ctx, rep, daily, hourly)
package exporter
