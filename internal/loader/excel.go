package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"watchcli/internal/viewing"
)

// loadExcel reads an XLSX export. Data is taken from the first sheet in
// the workbook, and the header row may be preceded by blank or note rows.
func (l *Loader) loadExcel(path string) ([]viewing.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	headerIdx, cols, err := findHeader(rows)
	if err != nil {
		return nil, err
	}
	return recordsFromRows(rows, headerIdx, cols), nil
}
