package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DateLayout is the format for all date values in configuration.
const DateLayout = "2006-01-02"

// Config represents the complete application configuration
type Config struct {
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Report   ReportConfig   `yaml:"report" envconfig:"REPORT"`
	Filter   FilterConfig   `yaml:"filter" envconfig:"FILTER"`
	Expected ExpectedConfig `yaml:"expected" envconfig:"EXPECTED"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig locates the source spreadsheet
type InputConfig struct {
	Path string `yaml:"path" envconfig:"PATH"`
}

// ReportConfig controls the output artifacts
type ReportConfig struct {
	PDFPath string `yaml:"pdf_path" envconfig:"PDF_PATH"`
	CSVPath string `yaml:"csv_path" envconfig:"CSV_PATH"`
	Title   string `yaml:"title" envconfig:"TITLE"`
}

// FilterConfig bounds the aggregation date range (inclusive both ends)
type FilterConfig struct {
	From string `yaml:"from" envconfig:"FROM"`
	To   string `yaml:"to" envconfig:"TO"`

	from time.Time
	to   time.Time
}

// FromTime returns the parsed lower bound. Valid only after Load.
func (f FilterConfig) FromTime() time.Time { return f.from }

// ToTime returns the parsed upper bound. Valid only after Load.
func (f FilterConfig) ToTime() time.Time { return f.to }

// ExpectedConfig parameterizes the expected-hours business rule.
// WeekAdjustment defaults to -1, discounting a known vacation week
// between the reference date and today.
type ExpectedConfig struct {
	Reference      string `yaml:"reference" envconfig:"REFERENCE"`
	HoursPerWeek   int    `yaml:"hours_per_week" envconfig:"HOURS_PER_WEEK"`
	WeekAdjustment int    `yaml:"week_adjustment" envconfig:"WEEK_ADJUSTMENT"`

	reference time.Time
}

// ReferenceTime returns the parsed reference date. Valid only after Load.
func (e ExpectedConfig) ReferenceTime() time.Time { return e.reference }

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load loads configuration from defaults, an optional YAML file, and
// TSR_* environment variables, in increasing order of precedence.
// An empty configFile falls back to probing the common locations.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("TSR", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration and parses the date fields.
// It must run after every mutation of the date strings (Load does this;
// callers overriding fields from flags call it again).
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input path must be set")
	}
	if c.Report.PDFPath == "" {
		return fmt.Errorf("report pdf path must be set")
	}
	if c.Report.Title == "" {
		return fmt.Errorf("report title must be set")
	}
	if c.Expected.HoursPerWeek <= 0 {
		return fmt.Errorf("expected hours per week must be positive, got %d", c.Expected.HoursPerWeek)
	}

	var err error
	if c.Filter.from, err = time.Parse(DateLayout, c.Filter.From); err != nil {
		return fmt.Errorf("invalid filter.from date %q: %w", c.Filter.From, err)
	}
	if c.Filter.to, err = time.Parse(DateLayout, c.Filter.To); err != nil {
		return fmt.Errorf("invalid filter.to date %q: %w", c.Filter.To, err)
	}
	if c.Filter.to.Before(c.Filter.from) {
		return fmt.Errorf("filter.to %s is before filter.from %s", c.Filter.To, c.Filter.From)
	}
	if c.Expected.reference, err = time.Parse(DateLayout, c.Expected.Reference); err != nil {
		return fmt.Errorf("invalid expected.reference date %q: %w", c.Expected.Reference, err)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		c.Logging.Output = "console"
	}
	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/timesheet-report.log"
	}

	return nil
}

// findConfigFile returns the path to the config file
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use defaults and env vars only
}

// Default returns default configuration
func Default() *Config {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	return &Config{
		Input: InputConfig{
			Path: "data/timesheet.xlsx",
		},
		Report: ReportConfig{
			PDFPath: "reports/member_hours.pdf",
			Title:   "Member Hours Report",
		},
		Filter: FilterConfig{
			From: monthStart.Format(DateLayout),
			To:   monthStart.AddDate(0, 1, -1).Format(DateLayout),
		},
		Expected: ExpectedConfig{
			Reference:      time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC).Format(DateLayout),
			HoursPerWeek:   6,
			WeekAdjustment: -1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "console",
		},
	}
}
