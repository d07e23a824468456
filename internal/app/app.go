// Package app wires the timesheet report pipeline together and runs it
// end to end: load → clean → aggregate → format → render.
//
// The pipeline threads plain values between stages; there is no shared
// mutable state, and a failure at any stage aborts the whole run with
// the stage's error unchanged.
package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"timecli/internal/config"
	"timecli/internal/dataprocessing"
	"timecli/internal/report"
)

// App runs one report generation pass.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	// Stdout receives the human-readable table dumps. Log output goes to
	// the logger, never here, so stdout stays parseable.
	Stdout io.Writer

	// Clock supplies "now" for the expected-hours rule and the render
	// timestamp. Tests replace it with a fixed instant.
	Clock report.Clock
}

// New creates an App with the production defaults: os.Stdout and time.Now.
func New(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		Stdout: os.Stdout,
		Clock:  time.Now,
	}
}

// Run executes the full pipeline once. Both console dumps and every
// configured output artifact are produced, or Run returns the first
// error and nothing authoritative is written.
func (a *App) Run(ctx context.Context) error {
	started := a.Clock()

	a.logger.InfoContext(ctx, "starting timesheet report run",
		slog.String("input", a.cfg.Input.Path),
		slog.String("pdf", a.cfg.Report.PDFPath),
		slog.String("filter_from", a.cfg.Filter.From),
		slog.String("filter_to", a.cfg.Filter.To))

	table, err := dataprocessing.Load(a.cfg.Input.Path)
	if err != nil {
		return err
	}

	entries, err := dataprocessing.Clean(table)
	if err != nil {
		return err
	}
	report.PrintEntries(a.Stdout, entries)

	totals := dataprocessing.Aggregate(entries, a.cfg.Filter.FromTime(), a.cfg.Filter.ToTime())

	now := a.Clock()
	expected := report.ExpectedHours(now,
		a.cfg.Expected.ReferenceTime(),
		a.cfg.Expected.HoursPerWeek,
		a.cfg.Expected.WeekAdjustment)

	formatted := report.BuildTable(totals, a.cfg.Report.Title, expected, now)
	report.PrintReport(a.Stdout, formatted)

	if err := report.NewPDFWriter().Render(formatted, a.cfg.Report.PDFPath); err != nil {
		return err
	}

	if a.cfg.Report.CSVPath != "" {
		if err := report.NewCSVWriter().Write(a.cfg.Report.CSVPath, formatted); err != nil {
			return err
		}
	}

	var totalHours float64
	for _, t := range totals {
		totalHours += t.Hours
	}

	a.logger.InfoContext(ctx, "timesheet report run complete",
		slog.Int("members", len(totals)),
		slog.Float64("total_hours", totalHours),
		slog.Int("expected_hours", expected),
		slog.Duration("elapsed", a.Clock().Sub(started)))

	return nil
}
