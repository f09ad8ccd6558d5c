package loader

import (
	"errors"
	"fmt"
	"strings"

	"watchcli/internal/viewing"
)

// Required column names as they appear in viewing activity exports.
// Lookup is case-insensitive and ignores surrounding whitespace.
const (
	columnTitle        = "Title"
	columnSupplemental = "Supplemental Video Type"
	columnStartTime    = "Start Time"
	columnDuration     = "Duration"
)

var (
	// ErrUnsupportedFormat reports an input file whose extension maps to
	// no known container format.
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrMissingColumn reports a header row lacking one or more of the
	// required columns.
	ErrMissingColumn = errors.New("missing required column")
)

// columns holds the resolved cell index of each required column.
type columns struct {
	title        int
	supplemental int
	start        int
	duration     int
}

// normalizeHeader canonicalizes a header cell for name matching: runs of
// non-alphanumeric characters collapse to a single separator, letters
// lowercase, and a UTF-8 byte order mark on the first cell of a CSV
// export is stripped. "Start  Time", "Start_Time" and "start time" all
// normalize to "start.time".
func normalizeHeader(cell string) string {
	cell = strings.TrimPrefix(cell, "\ufeff")

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(cell) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('.')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// resolveColumns maps the required column names onto their positions in
// the header row. All four columns must be present.
func resolveColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, cell := range header {
		name := normalizeHeader(cell)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var cols columns
	targets := []struct {
		name string
		dst  *int
	}{
		{columnTitle, &cols.title},
		{columnSupplemental, &cols.supplemental},
		{columnStartTime, &cols.start},
		{columnDuration, &cols.duration},
	}

	var missing []string
	for _, target := range targets {
		idx, ok := index[normalizeHeader(target.name)]
		if !ok {
			missing = append(missing, target.name)
			continue
		}
		*target.dst = idx
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

// findHeader locates the header row in a sheet. Spreadsheet exports can
// carry leading notes or blank rows, so the first row that resolves all
// required columns wins. The error of the first candidate row is kept so
// a genuinely broken header reports which columns it lacks.
func findHeader(rows [][]string) (int, columns, error) {
	var firstErr error
	for i, row := range rows {
		if rowEmpty(row) {
			continue
		}
		cols, err := resolveColumns(row)
		if err == nil {
			return i, cols, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("%w: input file has no header row", ErrMissingColumn)
	}
	return 0, columns{}, firstErr
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cellAt returns the cell at idx, or an empty string when the row is too
// short. Spreadsheet readers truncate trailing empty cells, so a short
// row is not by itself malformed.
func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// recordsFromRows converts the data rows after the header into raw
// records. Line numbers are 1-based positions in the source file, so the
// first data row of a CSV with its header on line 1 is line 2.
func recordsFromRows(rows [][]string, headerIdx int, cols columns) []viewing.RawRecord {
	records := make([]viewing.RawRecord, 0, len(rows)-headerIdx-1)
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		records = append(records, viewing.RawRecord{
			Title:            cellAt(row, cols.title),
			SupplementalType: cellAt(row, cols.supplemental),
			StartTime:        cellAt(row, cols.start),
			Duration:         cellAt(row, cols.duration),
			Line:             i + 1,
		})
	}
	return records
}
