package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/programmersnake/avro-viewer-app/internal/config"
	"github.com/programmersnake/avro-viewer-app/internal/export"
	"github.com/programmersnake/avro-viewer-app/internal/record"
	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOut    string
	flagExportPage   int
	flagExportSize   int
	flagExportQuery  string
	flagExportField  string
	flagExportMax    int
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export a page or search result to JSON or CSV",
	Long: `Write a selected set of records to a file. By default the selection is
one page (--page/--size); with --query it is a search result instead
(--field/--max scope it the same way the search command does).

JSON exports preserve nested structures; CSV exports use the schema's
top-level field names as columns and serialize nested values as compact
JSON strings. The output is written to a temporary file next to the
destination and renamed into place.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "json", "Output format: json or csv")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "Destination path (required)")
	exportCmd.Flags().IntVar(&flagExportPage, "page", 0, "Zero-based page index to export")
	exportCmd.Flags().IntVar(&flagExportSize, "size", 0, "Records per page (default from config)")
	exportCmd.Flags().StringVar(&flagExportQuery, "query", "", "Export search matches for this query instead of a page")
	exportCmd.Flags().StringVar(&flagExportField, "field", "", "Scope --query matching to this field")
	exportCmd.Flags().IntVar(&flagExportMax, "max", 0, "Maximum matches for --query (default from config)")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	if flagExportFormat != "json" && flagExportFormat != "csv" {
		return fmt.Errorf("unknown format %q (want json or csv)", flagExportFormat)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sess, err := openSession(args[0])
	if err != nil {
		return err
	}

	recs, err := selectRecords(args[0], cfg)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		printWarn("nothing to export: selection is empty")
		return nil
	}

	out, err := config.ExpandPath(flagExportOut)
	if err != nil {
		return err
	}
	if err := writeExport(out, sess.FieldNames(), recs); err != nil {
		return err
	}
	printOK(fmt.Sprintf("exported %s records to %s", formatCount(len(recs)), out))
	return nil
}

// selectRecords resolves the record set being exported: a search result when
// --query is set, one page otherwise.
func selectRecords(path string, cfg *config.Config) ([]record.Record, error) {
	if flagExportQuery != "" {
		max := flagExportMax
		if max == 0 {
			max = cfg.DefaultMaxResults
		}
		if err := validateMaxResults(max); err != nil {
			return nil, err
		}
		matches, err := record.Search(path, record.Query{
			Text:       flagExportQuery,
			Field:      flagExportField,
			MaxResults: max,
		})
		if err != nil {
			return nil, err
		}
		recs := make([]record.Record, len(matches))
		for i, m := range matches {
			recs[i] = m.Record
		}
		return recs, nil
	}

	size := flagExportSize
	if size == 0 {
		size = cfg.DefaultPageSize
	}
	if err := validatePageArgs(flagExportPage, size); err != nil {
		return nil, err
	}
	page, err := record.GetPage(path, flagExportPage, size)
	if err != nil {
		return nil, err
	}
	return page.Records, nil
}

// writeExport writes to a temp file in the destination directory and renames
// it into place, so a failed export never leaves a half-written file behind.
func writeExport(out string, fields []string, recs []record.Record) error {
	dir := filepath.Dir(out)
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return fmt.Errorf("cannot create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	switch flagExportFormat {
	case "csv":
		err = export.WriteCSV(tmp, fields, recs)
	default:
		err = export.WriteJSON(tmp, recs)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if err := os.Rename(tmpName, out); err != nil {
		return fmt.Errorf("cannot write %s: %w", out, err)
	}
	return nil
}
