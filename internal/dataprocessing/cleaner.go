package dataprocessing

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "timecli/internal/errors"
	"timecli/pkg/contracts/domain"
)

// Layouts accepted for the start-date and end-date cells. excelize returns
// cell text in whatever display format the workbook carries, so both ISO
// forms and the common Excel display forms have to be recognized.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"01-02-06 15:04",
	"01-02-06",
	"1/2/06 15:04",
	"2/1/06 15:04",
	"2006/01/02",
}

// Clean projects a raw table onto the eight required columns and expands
// it into one Entry per individual member.
//
// The member-name field is split on ";" with each segment trimmed; a field
// without the separator yields exactly one entry, so the output always has
// at least as many entries as the input has data rows. Start and end cells
// that fail to parse become zero time values with the corresponding valid
// flag unset, never an error: date-range filtering downstream must exclude
// them.
//
// Row order is preserved, with split-expansion entries contiguous in split
// order. The input table is not modified.
func Clean(t *RawTable) ([]domain.Entry, error) {
	headerRow, colMap, err := findHeader(t.Rows)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, len(t.Rows)-headerRow-1)
	for i := headerRow + 1; i < len(t.Rows); i++ {
		row := t.Rows[i]
		if isEmptyRow(row) {
			continue
		}

		start, startValid := parseDateTime(cell(row, colMap[ColStart]))
		end, endValid := parseDateTime(cell(row, colMap[ColEnd]))
		duration := parseDuration(cell(row, colMap[ColDuration]))

		if !startValid {
			slog.Debug("row has unparseable start date, excluded from any date filter",
				slog.Int("row", i),
				slog.String("start_date", cell(row, colMap[ColStart])))
		}

		for _, member := range strings.Split(cell(row, colMap[ColMember]), ";") {
			entries = append(entries, domain.Entry{
				Member:             strings.TrimSpace(member),
				Category:           cell(row, colMap[ColCategory]),
				Meeting:            cell(row, colMap[ColMeeting]),
				InternalAssignment: cell(row, colMap[ColInternal]),
				Start:              start,
				StartValid:         startValid,
				End:                end,
				EndValid:           endValid,
				Duration:           duration,
				Detail:             cell(row, colMap[ColDetail]),
			})
		}
	}

	slog.Info("cleaned timesheet entries",
		slog.Int("raw_rows", len(t.Rows)-headerRow-1),
		slog.Int("entries", len(entries)))

	return entries, nil
}

// findHeader locates the header row and maps each required column to its
// index. When no row carries the full set of headers, the error names the
// first missing column of the closest candidate row.
func findHeader(rows [][]string) (int, map[string]int, error) {
	bestMissing := ColMember
	bestMatched := -1

	for i, row := range rows {
		colMap, missing := mapColumns(row)
		if missing == "" {
			return i, colMap, nil
		}
		if len(colMap) > bestMatched {
			bestMatched = len(colMap)
			bestMissing = missing
		}
	}

	return 0, nil, apperrors.NewSchemaError(bestMissing)
}

// mapColumns maps required column names to indices within one row.
// The returned missing value is the first required column not present,
// or empty when the row carries all of them.
func mapColumns(row []string) (map[string]int, string) {
	colMap := make(map[string]int, len(RequiredColumns))
	for j, header := range row {
		name := strings.TrimSpace(header)
		for _, col := range RequiredColumns {
			if name == col {
				if _, dup := colMap[col]; !dup {
					colMap[col] = j
				}
				break
			}
		}
	}

	for _, col := range RequiredColumns {
		if _, ok := colMap[col]; !ok {
			return colMap, col
		}
	}
	return colMap, ""
}

// cell safely reads a column from a possibly ragged row. excelize drops
// trailing empty cells from GetRows output, so short rows are normal.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseDateTime coerces a cell to a date-time value. The second return is
// false when the cell is empty or matches no known form, including raw
// Excel serial numbers, which are converted through the 1900 epoch.
func parseDateTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if ts, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}

// parseDuration reads the fractional-hours duration cell. Comma decimal
// separators and thousands separators both occur in exported sheets.
func parseDuration(s string) float64 {
	if s == "" {
		return 0
	}
	normalized := s
	if strings.Contains(normalized, ",") && !strings.Contains(normalized, ".") {
		normalized = strings.ReplaceAll(normalized, ",", ".")
	} else {
		normalized = strings.ReplaceAll(normalized, ",", "")
	}
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		slog.Debug("unparseable duration cell, treated as zero", slog.String("value", s))
		return 0
	}
	return v
}
