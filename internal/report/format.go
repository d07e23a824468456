package report

import (
	"fmt"
	"math"
	"time"

	"timecli/pkg/contracts/domain"
)

// Clock supplies the current time. Production code passes time.Now;
// tests inject a fixed instant.
type Clock func() time.Time

// Display headers of the final report table.
var ReportHeaders = []string{"Member", "Total Hours", "Expected Hours"}

// FormatHours renders fractional hours as "{H}h{MM}min".
//
// The minute component is truncated, not rounded: 1.999999 hours renders
// as "1h59min". The original system truncated and downstream consumers
// compare report values across periods, so truncation is kept.
func FormatHours(x float64) string {
	whole := math.Floor(x)
	minutes := int((x - whole) * 60)
	return fmt.Sprintf("%dh%02dmin", int(whole), minutes)
}

// ExpectedHours computes the organizational expected-hours figure at a
// given instant: whole elapsed weeks since the reference date, shifted by
// the configured week adjustment, times the weekly rate.
//
// The adjustment (historically -1, for a vacation week) and the rate are
// configuration, not constants. The instant is always injected so the
// computation stays deterministic under test.
func ExpectedHours(now, reference time.Time, hoursPerWeek, weekAdjustment int) int {
	days := now.Sub(reference).Hours() / 24
	weeks := int(math.Floor(days / 7))
	return (weeks + weekAdjustment) * hoursPerWeek
}

// BuildTable assembles the final report table from aggregated totals.
// Every row carries the same expected-hours value; it depends on the
// calendar, not on any member's logged time.
func BuildTable(totals []domain.MemberTotal, title string, expected int, generatedAt time.Time) domain.ReportTable {
	rows := make([]domain.ReportRow, 0, len(totals))
	for _, total := range totals {
		rows = append(rows, domain.ReportRow{
			Member:        total.Member,
			TotalHours:    FormatHours(total.Hours),
			ExpectedHours: expected,
		})
	}

	return domain.ReportTable{
		Title:       title,
		Headers:     ReportHeaders,
		Rows:        rows,
		GeneratedAt: generatedAt,
	}
}
