package loader

import (
	"encoding/csv"
	"fmt"
	"os"

	"watchcli/internal/viewing"
)

// loadCSV reads a CSV export. The first record must be the header row.
func (l *Loader) loadCSV(path string) ([]viewing.RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV records: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: input file has no header row", ErrMissingColumn)
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}
	return recordsFromRows(rows, 0, cols), nil
}
