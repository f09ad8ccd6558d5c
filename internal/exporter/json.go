package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"watchcli/internal/report"
)

// writeReportJSON exports the full report as pretty-printed JSON.
func (e *Exporter) writeReportJSON(rep *report.Report) error {
	path := filepath.Join(e.config.Dir, ReportJSONFile)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
