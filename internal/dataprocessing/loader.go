package dataprocessing

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"

	apperrors "timecli/internal/errors"
)

// Required column headers, matched exactly (after whitespace trim) when
// locating the header row.
const (
	ColMember   = "member-name"
	ColCategory = "category"
	ColMeeting  = "meeting"
	ColInternal = "internal-assignment"
	ColStart    = "start-date"
	ColEnd      = "end-date"
	ColDuration = "duration"
	ColDetail   = "detail"
)

// RequiredColumns lists every column the cleaner projects, in output order.
var RequiredColumns = []string{
	ColMember,
	ColCategory,
	ColMeeting,
	ColInternal,
	ColStart,
	ColEnd,
	ColDuration,
	ColDetail,
}

// RawTable holds the rows of one spreadsheet sheet exactly as read.
// No schema validation has happened yet; that is the cleaner's job.
type RawTable struct {
	Sheet string
	Rows  [][]string
}

// Load reads the spreadsheet at path into a RawTable.
//
// A missing path yields a NOT_FOUND error without ever opening the file.
// A file that exists but cannot be parsed as a spreadsheet yields a LOAD
// error wrapping the underlying cause.
//
// Sheet selection follows header discovery: the first sheet whose rows
// contain all required column headers wins. When no sheet matches, the
// first sheet is returned as-is and the cleaner reports the schema error.
func Load(path string) (*RawTable, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, apperrors.NewNotFoundError(path)
	}
	if err != nil {
		return nil, apperrors.NewLoadError(path, err)
	}
	if info.IsDir() {
		return nil, apperrors.NewLoadError(path, fmt.Errorf("%s is a directory, not a spreadsheet", path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewLoadError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewLoadError(path, fmt.Errorf("workbook contains no sheets"))
	}

	var fallback *RawTable
	for _, name := range sheets {
		rows, rowsErr := f.GetRows(name)
		if rowsErr != nil {
			slog.Warn("skipping unreadable sheet",
				slog.String("sheet", name),
				slog.String("error", rowsErr.Error()))
			continue
		}
		if fallback == nil {
			fallback = &RawTable{Sheet: name, Rows: rows}
		}
		if headerRowIndex(rows) >= 0 {
			slog.Info("found timesheet data in sheet",
				slog.String("sheet", name),
				slog.Int("total_rows", len(rows)))
			return &RawTable{Sheet: name, Rows: rows}, nil
		}
	}

	if fallback == nil {
		return nil, apperrors.NewLoadError(path, fmt.Errorf("no readable sheet in workbook"))
	}

	slog.Warn("no sheet contains all required headers, using first readable sheet",
		slog.String("sheet", fallback.Sheet))
	return fallback, nil
}

// headerRowIndex returns the index of the first row containing every
// required column header, or -1 when none qualifies.
func headerRowIndex(rows [][]string) int {
	for i, row := range rows {
		if _, missing := mapColumns(row); missing == "" {
			return i
		}
	}
	return -1
}
