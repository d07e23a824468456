// Command timesheet-report loads a timesheet spreadsheet, aggregates
// logged hours per member over a date range, prints the intermediate and
// final tables to stdout, and renders a PDF report.
//
// Every invocation parameter comes from configuration (defaults, optional
// YAML file, TSR_* environment variables) and can be overridden per run
// with flags. Any failure aborts the run with a diagnostic and exit code 1.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"timecli/internal/app"
	"timecli/internal/config"
	"timecli/internal/infrastructure"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cliFlags holds every flag value so overrides only apply when the flag
// was actually set on the command line.
type cliFlags struct {
	configFile string

	input   string
	pdfPath string
	csvPath string
	title   string
	from    string
	to      string

	reference      string
	hoursPerWeek   int
	weekAdjustment int

	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "timesheet-report",
		Short: "Aggregate member timesheet hours and render a PDF report",
		Long: `timesheet-report reads a timesheet spreadsheet (.xlsx), expands
multi-member rows, sums logged hours per member over a date range, and
writes a PDF report plus console table dumps of the cleaned and
aggregated data.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Flags(), flags)
		},
	}

	bindFlags(cmd.Flags(), flags)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, flags *cliFlags) {
	fs.StringVarP(&flags.configFile, "config", "c", "", "path to YAML config file")
	fs.StringVarP(&flags.input, "input", "i", "", "path to the timesheet spreadsheet (.xlsx)")
	fs.StringVarP(&flags.pdfPath, "output", "o", "", "path of the PDF report to write")
	fs.StringVar(&flags.csvPath, "csv", "", "also write the aggregate table as CSV to this path")
	fs.StringVar(&flags.title, "title", "", "report title")
	fs.StringVar(&flags.from, "from", "", "filter start date (inclusive), YYYY-MM-DD")
	fs.StringVar(&flags.to, "to", "", "filter end date (inclusive), YYYY-MM-DD")
	fs.StringVar(&flags.reference, "reference", "", "reference date the expected-hours figure counts weeks from, YYYY-MM-DD")
	fs.IntVar(&flags.hoursPerWeek, "hours-per-week", 0, "expected hours per member per week")
	fs.IntVar(&flags.weekAdjustment, "week-adjustment", 0, "weeks discounted from the expected-hours figure (e.g. -1 for a vacation week)")
	fs.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func run(fs *pflag.FlagSet, flags *cliFlags) error {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return err
	}

	applyOverrides(fs, flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	runID := uuid.NewString()
	ctx := infrastructure.WithRunID(context.Background(), runID)

	if err := app.New(cfg, logger).Run(ctx); err != nil {
		logger.ErrorContext(ctx, "run failed", slog.String("error", err.Error()))
		return err
	}

	return nil
}

// applyOverrides copies set flags over the loaded configuration.
func applyOverrides(fs *pflag.FlagSet, flags *cliFlags, cfg *config.Config) {
	if fs.Changed("input") {
		cfg.Input.Path = flags.input
	}
	if fs.Changed("output") {
		cfg.Report.PDFPath = flags.pdfPath
	}
	if fs.Changed("csv") {
		cfg.Report.CSVPath = flags.csvPath
	}
	if fs.Changed("title") {
		cfg.Report.Title = flags.title
	}
	if fs.Changed("from") {
		cfg.Filter.From = flags.from
	}
	if fs.Changed("to") {
		cfg.Filter.To = flags.to
	}
	if fs.Changed("reference") {
		cfg.Expected.Reference = flags.reference
	}
	if fs.Changed("hours-per-week") {
		cfg.Expected.HoursPerWeek = flags.hoursPerWeek
	}
	if fs.Changed("week-adjustment") {
		cfg.Expected.WeekAdjustment = flags.weekAdjustment
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
}
