package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"timecli/pkg/contracts/domain"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleDim    = lipgloss.NewStyle().Faint(true)
)

// PrintTable writes a width-aligned table with a header separator line.
// Columns are padded to the widest cell in each column across both the
// headers and the rows. Output is best effort; write errors are ignored.
func PrintTable(w io.Writer, headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		if wd := lipgloss.Width(h); wd > widths[i] {
			widths[i] = wd
		}
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if wd := lipgloss.Width(row[i]); wd > widths[i] {
				widths[i] = wd
			}
		}
	}

	const colGap = 2

	var b strings.Builder

	for i, h := range headers {
		b.WriteString(styleHeader.Render(h))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(h)+colGap))
		}
	}
	b.WriteString("\n")

	for i, wd := range widths {
		b.WriteString(styleDim.Render(strings.Repeat("─", wd)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < cols-1 {
				pad := widths[i] - lipgloss.Width(cell)
				if pad < 0 {
					pad = 0
				}
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprint(w, b.String())
}

// PrintEntries dumps cleaned entries as the intermediate pipeline table.
func PrintEntries(w io.Writer, entries []domain.Entry) {
	headers := []string{"member", "category", "start-date", "duration"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		start := ""
		if e.StartValid {
			start = e.Start.Format("2006-01-02")
		}
		rows = append(rows, []string{
			e.Member,
			e.Category,
			start,
			fmt.Sprintf("%.2f", e.Duration),
		})
	}
	PrintTable(w, headers, rows)
}

// PrintReport dumps the final formatted table.
func PrintReport(w io.Writer, table domain.ReportTable) {
	fmt.Fprintln(w, styleHeader.Render(table.Title))
	PrintTable(w, table.Headers, table.Cells())
}
