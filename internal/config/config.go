package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
//
// Environment variable names are derived from the field path with the
// WATCH prefix (WATCH_INPUT_PATH, WATCH_OUTPUT_INCLUDE_BOM, ...). Leaf
// fields deliberately carry no explicit envconfig name: an explicit name
// doubles as an unprefixed fallback lookup, which would read ambient
// variables such as $PATH and $OUTPUT when the prefixed one is unset.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Filter  FilterConfig  `yaml:"filter"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig locates the viewing history export to analyze.
type InputConfig struct {
	// Path of the export file. Usually supplied by the -input flag; the
	// pipeline rejects an empty path at run time.
	Path string `yaml:"path"`
}

// OutputConfig controls where and how report artifacts are written.
type OutputConfig struct {
	Dir        string `yaml:"dir" validate:"required"`
	Excel      bool   `yaml:"excel"`
	IncludeBOM bool   `yaml:"include_bom" split_words:"true"`
}

// FilterConfig tunes which rows are dropped before analysis.
type FilterConfig struct {
	// ExtraExcludedTags extends the built-in supplemental type exclusions.
	ExtraExcludedTags []string `yaml:"extra_excluded_tags" split_words:"true"`
}

// ReportConfig tunes report composition.
type ReportConfig struct {
	TopShows int `yaml:"top_shows" split_words:"true" validate:"min=1"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" validate:"oneof=text json"`
	Output   string `yaml:"output" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" split_words:"true"`
}

var validate = validator.New()

// Load builds the configuration by layering sources: defaults first, then
// the YAML file at path (or the first default location when path is
// empty), then WATCH_* environment variables. Later layers win.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// Process only touches fields whose variable is set, so it overlays
	// the file layer without disturbing it.
	if err := envconfig.Process("WATCH", cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if c.Logging.Output != "console" && strings.TrimSpace(c.Logging.FilePath) == "" {
		return fmt.Errorf("config validation: logging output %q requires a file path", c.Logging.Output)
	}
	return nil
}

// EnsureOutputDir creates the artifact directory if it does not exist.
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// findConfigFile checks the common locations for a config file.
func findConfigFile() string {
	locations := []string{
		"watchcli.yaml",
		"config.yaml",
		"configs/config.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:        "reports",
			IncludeBOM: true,
		},
		Report: ReportConfig{
			TopShows: 5,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/watchcli.log",
		},
	}
}
