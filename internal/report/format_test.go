package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timecli/pkg/contracts/domain"
)

func TestFormatHours(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "0h00min"},
		{"half hour", 7.5, "7h30min"},
		{"whole hours", 3, "3h00min"},
		{"quarter", 0.25, "0h15min"},
		{"minutes truncated at boundary", 1.999999, "1h59min"},
		{"ten minutes", 2.1666666667, "2h10min"},
		{"long total", 123.75, "123h45min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatHours(tt.input))
		})
	}
}

func TestExpectedHours(t *testing.T) {
	tests := []struct {
		name           string
		now            string
		reference      string
		hoursPerWeek   int
		weekAdjustment int
		expected       int
	}{
		// 42 days = 6 whole weeks, one discounted, 6h/week.
		{"six weeks minus vacation", "2025-02-12", "2025-01-01", 6, -1, 30},
		{"no adjustment", "2025-02-12", "2025-01-01", 6, 0, 36},
		{"partial week floors down", "2025-01-13", "2025-01-01", 6, 0, 6},
		{"same day", "2025-01-01", "2025-01-01", 6, 0, 0},
		{"different rate", "2025-02-12", "2025-01-01", 8, -1, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, err := time.Parse("2006-01-02", tt.now)
			require.NoError(t, err)
			ref, err := time.Parse("2006-01-02", tt.reference)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, ExpectedHours(now, ref, tt.hoursPerWeek, tt.weekAdjustment))
		})
	}
}

func TestBuildTable(t *testing.T) {
	totals := []domain.MemberTotal{
		{Member: "Alice", Hours: 7.5},
		{Member: "Bob", Hours: 2.5},
	}
	generatedAt := time.Date(2025, 2, 12, 18, 30, 0, 0, time.UTC)

	table := BuildTable(totals, "Member Hours Report", 30, generatedAt)

	assert.Equal(t, "Member Hours Report", table.Title)
	assert.Equal(t, []string{"Member", "Total Hours", "Expected Hours"}, table.Headers)
	assert.Equal(t, generatedAt, table.GeneratedAt)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, domain.ReportRow{Member: "Alice", TotalHours: "7h30min", ExpectedHours: 30}, table.Rows[0])
	assert.Equal(t, domain.ReportRow{Member: "Bob", TotalHours: "2h30min", ExpectedHours: 30}, table.Rows[1])
}

func TestBuildTableEmpty(t *testing.T) {
	table := BuildTable(nil, "Empty", 12, time.Now())
	assert.Empty(t, table.Rows)
	assert.NotNil(t, table.Cells())
}
