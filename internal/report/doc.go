// Package report provides the presentation half of the timesheet pipeline.
//
// This package contains four main components:
//
// Formatter: converts per-member hour totals into display rows, rendering
// fractional hours as "{H}h{MM}min" and attaching the expected-hours figure
// derived from the configured reference date.
//
// PDFWriter: renders the formatted table as a paginated PDF document with
// a title heading and a timestamp footer on every page.
//
// CSVWriter: writes the formatted table as a UTF-8 BOM prefixed CSV file
// so it opens cleanly in Excel.
//
// Console printing: width-aligned table dumps of intermediate entries and
// the final report to any io.Writer, best effort, never failing.
//
// Both file writers publish atomically: output goes to a sibling temp file
// first and is renamed into place only on success, so a failed render
// never leaves a partial artifact behind.
package report
