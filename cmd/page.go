package cmd

import (
	"fmt"
	"sort"

	"github.com/programmersnake/avro-viewer-app/internal/config"
	"github.com/programmersnake/avro-viewer-app/internal/record"
	"github.com/spf13/cobra"
)

var (
	flagPageIndex int
	flagPageSize  int
)

var pageCmd = &cobra.Command{
	Use:   "page <file>",
	Short: "Show one page of records as a table",
	Long: `Display the records of one page, in file storage order.

The container format only decodes forward, so each page request restarts
from the beginning of the file and discards everything before the window.
Deep pages of very large files take proportionally longer to reach.`,
	Args: cobra.ExactArgs(1),
	RunE: runPage,
}

func init() {
	pageCmd.Flags().IntVar(&flagPageIndex, "page", 0, "Zero-based page index")
	pageCmd.Flags().IntVar(&flagPageSize, "size", 0, "Records per page (default from config)")
	rootCmd.AddCommand(pageCmd)
}

// validatePageArgs enforces the viewer's page bounds; export shares them.
func validatePageArgs(index, size int) error {
	if index < 0 {
		return fmt.Errorf("page index must be >= 0, got %d", index)
	}
	if size < 1 || size > 5000 {
		return fmt.Errorf("page size must be between 1 and 5000, got %d", size)
	}
	return nil
}

func runPage(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	size := flagPageSize
	if size == 0 {
		size = cfg.DefaultPageSize
	}
	if err := validatePageArgs(flagPageIndex, size); err != nil {
		return err
	}

	sess, err := openSession(args[0])
	if err != nil {
		return err
	}
	page, err := record.GetPage(args[0], flagPageIndex, size)
	if err != nil {
		return err
	}

	if len(page.Records) == 0 {
		printWarn(fmt.Sprintf("page %d is past the end of the file", page.Index))
		return nil
	}

	fields := tableFields(sess, page.Records)
	rows := make([]tableRow, len(page.Records))
	start := page.Index * page.Size
	for i, r := range page.Records {
		rows[i] = tableRow{index: start + i, rec: r}
	}
	renderTable(fields, rows)

	fmt.Printf("\nPage %d (size %d): %s records", page.Index, page.Size, formatCount(len(page.Records)))
	if page.HasMore {
		fmt.Println(", more records follow")
	} else {
		fmt.Println(", end of file")
	}
	return nil
}

// tableFields prefers the schema's declared field order; when the writer
// schema is not a record schema it falls back to the keys seen in the data.
func tableFields(sess *record.Session, recs []record.Record) []string {
	if fields := sess.FieldNames(); len(fields) > 0 {
		return fields
	}
	seen := map[string]bool{}
	var out []string
	for _, r := range recs {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	sort.Strings(out)
	return out
}
