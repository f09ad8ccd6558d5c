package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "reports", cfg.Output.Dir)
	assert.True(t, cfg.Output.IncludeBOM)
	assert.False(t, cfg.Output.Excel)
	assert.Equal(t, 5, cfg.Report.TopShows)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Empty(t, cfg.Filter.ExtraExcludedTags)
}

func TestLoad(t *testing.T) {
	t.Run("empty file keeps defaults", func(t *testing.T) {
		path := writeConfigFile(t, "")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
input:
  path: history.csv
output:
  dir: out
  excel: true
report:
  top_shows: 10
filter:
  extra_excluded_tags:
    - PROMO
    - SNEAK_PEEK
logging:
  level: debug
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "history.csv", cfg.Input.Path)
		assert.Equal(t, "out", cfg.Output.Dir)
		assert.True(t, cfg.Output.Excel)
		assert.Equal(t, 10, cfg.Report.TopShows)
		assert.Equal(t, []string{"PROMO", "SNEAK_PEEK"}, cfg.Filter.ExtraExcludedTags)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "text", cfg.Logging.Format, "untouched fields keep their defaults")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfigFile(t, `
report:
  top_shows: 10
`)
		t.Setenv("WATCH_REPORT_TOP_SHOWS", "3")
		t.Setenv("WATCH_INPUT_PATH", "env-history.csv")
		t.Setenv("WATCH_FILTER_EXTRA_EXCLUDED_TAGS", "PROMO,SNEAK_PEEK")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Report.TopShows)
		assert.Equal(t, "env-history.csv", cfg.Input.Path)
		assert.Equal(t, []string{"PROMO", "SNEAK_PEEK"}, cfg.Filter.ExtraExcludedTags)
	})

	t.Run("ambient variables are never consulted", func(t *testing.T) {
		// Only WATCH_-prefixed variables may reach the overlay. $PATH is
		// set on every system; $OUTPUT and $LEVEL stand in for whatever
		// else the shell happens to export.
		require.NotEmpty(t, os.Getenv("PATH"))
		t.Setenv("OUTPUT", "ambient")
		t.Setenv("LEVEL", "error")

		path := writeConfigFile(t, `
input:
  path: history.csv
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "history.csv", cfg.Input.Path, "file layer must survive an unset WATCH_INPUT_PATH")
		assert.Equal(t, "console", cfg.Logging.Output)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("explicit path that does not exist fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := writeConfigFile(t, "output: [not a mapping")

		_, err := Load(path)

		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: true,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "top shows must be positive",
			mutate:  func(c *Config) { c.Report.TopShows = 0 },
			wantErr: true,
		},
		{
			name:    "empty output dir",
			mutate:  func(c *Config) { c.Output.Dir = "" },
			wantErr: true,
		},
		{
			name: "file output requires a file path",
			mutate: func(c *Config) {
				c.Logging.Output = "file"
				c.Logging.FilePath = ""
			},
			wantErr: true,
		},
		{
			name: "both output with a file path",
			mutate: func(c *Config) {
				c.Logging.Output = "both"
				c.Logging.FilePath = "logs/run.log"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_EnsureOutputDir(t *testing.T) {
	cfg := Default()
	cfg.Output.Dir = filepath.Join(t.TempDir(), "nested", "reports")

	require.NoError(t, cfg.EnsureOutputDir())

	info, err := os.Stat(cfg.Output.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
