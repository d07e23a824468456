package infrastructure

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timecli/internal/config"
)

func TestNewLoggerFileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "run.log")

	logger, closeLog, err := NewLogger(config.LoggingConfig{
		Level:    "debug",
		Format:   "json",
		Output:   "file",
		FilePath: logPath,
	})
	require.NoError(t, err)

	logger.Info("pipeline started", "input", "data/timesheet.xlsx")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "pipeline started", record["msg"])
	assert.Equal(t, "data/timesheet.xlsx", record["input"])
}

func TestNewLoggerConsoleOnly(t *testing.T) {
	logger, closeLog, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json", Output: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closeLog())
}

func TestRunIDInjectedFromContext(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")

	logger, closeLog, err := NewLogger(config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logPath,
	})
	require.NoError(t, err)

	ctx := WithRunID(context.Background(), "3f2c9a1e")
	logger.InfoContext(ctx, "stage complete")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "3f2c9a1e", record["run_id"])
}

func TestGetRunIDMissing(t *testing.T) {
	assert.Equal(t, "", GetRunID(context.Background()))
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"unknown", "INFO"},
		{"", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input).String())
		})
	}
}
