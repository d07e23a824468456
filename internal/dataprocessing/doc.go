// Package dataprocessing implements the ingestion half of the timesheet
// report pipeline: loading the source spreadsheet, cleaning raw rows into
// per-member entries, and aggregating logged hours over a date range.
//
// # Data Flow
//
// The typical data flow through this package:
//
//	Excel File → Load → RawTable → Clean → []domain.Entry → Aggregate → []domain.MemberTotal
//
// Each stage is a pure value-to-value transformation; nothing in this
// package holds state between calls.
//
// # Error Handling
//
// Load distinguishes a missing input file (NOT_FOUND) from a file that
// exists but cannot be parsed as a spreadsheet (LOAD). Clean fails with a
// SCHEMA error naming the first required column that is absent. Aggregate
// never fails: an empty filtered set produces an empty result.
package dataprocessing
