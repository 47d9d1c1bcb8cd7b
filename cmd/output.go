package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/programmersnake/avro-viewer-app/internal/record"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands use these functions to ensure consistent icon usage and
// indentation throughout the CLI output.
//
// Icon semantics:
//   ✓  success
//   ✗  error / failure          (written to stderr)
//   ⚠  warning

// printOK prints a success line.
func printOK(msg string) {
	fmt.Printf("  ✓  %s\n", msg)
}

// printErr prints an error line to stderr.
func printErr(msg string) {
	fmt.Fprintf(os.Stderr, "  ✗  %s\n", msg)
}

// printWarn prints a warning line.
func printWarn(msg string) {
	fmt.Printf("  ⚠  %s\n", msg)
}

var countPrinter = message.NewPrinter(language.English)

// formatCount renders n with thousands separators, e.g. 12,345.
func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

const maxCellWidth = 60

// tableRow is one rendered record with its position in the file.
type tableRow struct {
	index int
	rec   record.Record
}

// renderTable prints rows as an aligned table, one column per field plus a
// leading record-index column.
func renderTable(fields []string, rows []tableRow) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\t%s\n", strings.Join(fields, "\t"))
	cells := make([]string, len(fields))
	for _, row := range rows {
		for i, f := range fields {
			cells[i] = cellText(record.Stringify(row.rec[f]))
		}
		fmt.Fprintf(tw, "%d\t%s\n", row.index, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}

// cellText flattens newlines and truncates long values so rows stay on one line.
func cellText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	if len(s) > maxCellWidth {
		return s[:maxCellWidth-3] + "..."
	}
	return s
}
