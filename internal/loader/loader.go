// Package loader reads viewing activity exports from disk and turns them
// into raw records for downstream filtering and parsing.
//
// Two container formats carry the same four-column schema: CSV and XLSX.
// Column positions are resolved from the header row by name, so exports
// with reordered or extra columns load the same way.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"watchcli/internal/viewing"
)

// Loader reads a viewing history export into raw records.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader with the provided logger.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads the export at path, dispatching on the file extension.
// Supported extensions are .csv and .xlsx. A missing file or a header
// without the required columns fails the whole load; malformed data
// rows are passed through and dropped later during parsing.
func (l *Loader) Load(ctx context.Context, path string) ([]viewing.RawRecord, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		records []viewing.RawRecord
		err     error
	)
	switch ext {
	case ".csv":
		records, err = l.loadCSV(path)
	case ".xlsx":
		records, err = l.loadExcel(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "viewing history loaded",
		slog.String("file", filepath.Base(path)),
		slog.String("format", strings.TrimPrefix(ext, ".")),
		slog.Int("rows", len(records)),
	)
	return records, nil
}
