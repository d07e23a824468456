package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "timecli/internal/errors"
	"timecli/pkg/contracts/domain"
)

// CSVWriter exports the formatted report table as CSV.
type CSVWriter struct{}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write writes the report table to path, overwriting any existing file.
// The file is prefixed with a UTF-8 BOM so Excel recognizes the encoding.
// Content goes to a temp file first and is renamed into place on success.
func (w *CSVWriter) Write(path string, table domain.ReportTable) error {
	slog.Info("writing CSV report",
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)))

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewRenderError(path, fmt.Errorf("failed to create directory: %w", err))
	}

	tmpPath := path + ".tmp"
	if err := w.writeFile(tmpPath, table); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewRenderError(path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewRenderError(path, err)
	}

	return nil
}

func (w *CSVWriter) writeFile(path string, table domain.ReportTable) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	// UTF-8 BOM for Excel compatibility.
	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(table.Headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range table.Cells() {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}
