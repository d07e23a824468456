package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 6, cfg.Expected.HoursPerWeek)
	assert.Equal(t, -1, cfg.Expected.WeekAdjustment)
	assert.False(t, cfg.Filter.ToTime().Before(cfg.Filter.FromTime()))
}

func TestValidateParsesDates(t *testing.T) {
	cfg := Default()
	cfg.Filter.From = "2025-01-01"
	cfg.Filter.To = "2025-01-31"
	cfg.Expected.Reference = "2025-01-01"

	require.NoError(t, cfg.Validate())

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Filter.FromTime())
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), cfg.Filter.ToTime())
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Expected.ReferenceTime())
}

func TestValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input path", func(c *Config) { c.Input.Path = "" }},
		{"empty pdf path", func(c *Config) { c.Report.PDFPath = "" }},
		{"empty title", func(c *Config) { c.Report.Title = "" }},
		{"zero hours per week", func(c *Config) { c.Expected.HoursPerWeek = 0 }},
		{"bad from date", func(c *Config) { c.Filter.From = "01/02/2025" }},
		{"bad to date", func(c *Config) { c.Filter.To = "not-a-date" }},
		{"inverted range", func(c *Config) { c.Filter.From = "2025-02-01"; c.Filter.To = "2025-01-01" }},
		{"bad reference date", func(c *Config) { c.Expected.Reference = "jan 1st" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
input:
  path: data/220125.xlsx
report:
  pdf_path: out/hours.pdf
  title: Apontamentos QL
filter:
  from: "2025-01-01"
  to: "2025-01-31"
expected:
  reference: "2025-01-01"
  hours_per_week: 8
  week_adjustment: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/220125.xlsx", cfg.Input.Path)
	assert.Equal(t, "out/hours.pdf", cfg.Report.PDFPath)
	assert.Equal(t, "Apontamentos QL", cfg.Report.Title)
	assert.Equal(t, 8, cfg.Expected.HoursPerWeek)
	assert.Equal(t, 0, cfg.Expected.WeekAdjustment)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  title: From File\n"), 0644))

	t.Setenv("TSR_REPORT_TITLE", "From Env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.Report.Title)
}

func TestLoadMissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
