package domain

import (
	"strconv"
	"time"
)

// Entry represents one cleaned timesheet entry for a single member.
// Rows whose raw member-name field carried multiple semicolon-separated
// names are expanded into one Entry per name before any aggregation.
type Entry struct {
	Member             string    `json:"member"`
	Category           string    `json:"category"`
	Meeting            string    `json:"meeting"`
	InternalAssignment string    `json:"internal_assignment"`
	Start              time.Time `json:"start"`
	StartValid         bool      `json:"start_valid"`
	End                time.Time `json:"end"`
	EndValid           bool      `json:"end_valid"`
	Duration           float64   `json:"duration"`
	Detail             string    `json:"detail,omitempty"`
}

// InRange reports whether the entry's start date falls within [from, to],
// inclusive on both ends. Entries with an invalid start never match.
func (e Entry) InRange(from, to time.Time) bool {
	if !e.StartValid {
		return false
	}
	return !e.Start.Before(from) && !e.Start.After(to)
}

// MemberTotal is the per-member aggregate over a filtered set of entries.
// Hours is a sum of fractional hours, not a rendered value.
type MemberTotal struct {
	Member string  `json:"member"`
	Hours  float64 `json:"hours"`
}

// ReportRow is one formatted line of the final report.
type ReportRow struct {
	Member        string `json:"member"`
	TotalHours    string `json:"total_hours"`
	ExpectedHours int    `json:"expected_hours"`
}

// ReportTable is the fully formatted report handed to the renderers.
type ReportTable struct {
	Title       string      `json:"title"`
	Headers     []string    `json:"headers"`
	Rows        []ReportRow `json:"rows"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// Cells returns the table body as plain strings in header order,
// ready for tabular renderers (console, CSV, PDF).
func (t ReportTable) Cells() [][]string {
	cells := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		cells = append(cells, []string{r.Member, r.TotalHours, strconv.Itoa(r.ExpectedHours)})
	}
	return cells
}
