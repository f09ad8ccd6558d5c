package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCSVWriter(t *testing.T) {
	writer := NewCSVWriter("reports")

	assert.NotNil(t, writer)
	assert.Equal(t, "reports", writer.dir)
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		options  WriteOptions
		validate func(t *testing.T, filePath string)
	}{
		{
			name:     "basic write with headers",
			filePath: "test_basic.csv",
			options: WriteOptions{
				Headers: []string{"Show", "Hours", "Sessions"},
				Records: [][]string{
					{"Dark", "40.25", "52"},
					{"The Wire", "35.00", "60"},
				},
				BOMPrefix: false,
			},
			validate: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				require.NoError(t, err)

				lines := strings.Split(strings.TrimSpace(string(content)), "\n")
				assert.Len(t, lines, 3)
				assert.Equal(t, "Show,Hours,Sessions", lines[0])
				assert.Equal(t, "Dark,40.25,52", lines[1])
				assert.Equal(t, "The Wire,35.00,60", lines[2])
			},
		},
		{
			name:     "write with BOM prefix",
			filePath: "test_bom.csv",
			options: WriteOptions{
				Headers:   []string{"Date", "Minutes"},
				Records:   [][]string{{"2024-01-01", "100.50"}},
				BOMPrefix: true,
			},
			validate: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				require.NoError(t, err)

				require.GreaterOrEqual(t, len(content), 3)
				assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, content[:3])
				assert.True(t, strings.HasPrefix(string(content[3:]), "Date,Minutes\n"))
			},
		},
		{
			name:     "records only",
			filePath: "test_headerless.csv",
			options: WriteOptions{
				Records: [][]string{{"a", "b"}, {"c", "d"}},
			},
			validate: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				require.NoError(t, err)
				assert.Equal(t, "a,b\nc,d\n", string(content))
			},
		},
		{
			name:     "values with commas are quoted",
			filePath: "test_quoting.csv",
			options: WriteOptions{
				Headers: []string{"Title"},
				Records: [][]string{{`Love, Death & Robots`}},
			},
			validate: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				require.NoError(t, err)
				assert.Contains(t, string(content), `"Love, Death & Robots"`)
			},
		},
		{
			name:     "empty artifact keeps its header",
			filePath: "test_empty.csv",
			options: WriteOptions{
				Headers: []string{"Date", "Minutes"},
			},
			validate: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				require.NoError(t, err)
				assert.Equal(t, "Date,Minutes\n", string(content))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writer := NewCSVWriter(dir)

			err := writer.WriteCSV(tt.filePath, tt.options)

			require.NoError(t, err)
			tt.validate(t, filepath.Join(dir, tt.filePath))
		})
	}
}

func TestCSVWriter_WriteCSV_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(filepath.Join(dir, "deep", "nested"))

	err := writer.WriteCSV("out.csv", WriteOptions{Headers: []string{"A"}})

	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "deep", "nested", "out.csv"))
	assert.NoError(t, statErr)
}

func TestCSVWriter_ResolvePath(t *testing.T) {
	writer := NewCSVWriter("reports")

	assert.Equal(t, filepath.Join("reports", "daily.csv"), writer.resolvePath("daily.csv"))

	abs := filepath.Join(string(filepath.Separator), "tmp", "x.csv")
	assert.Equal(t, abs, writer.resolvePath(abs))
}
