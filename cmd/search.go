package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/programmersnake/avro-viewer-app/internal/config"
	"github.com/programmersnake/avro-viewer-app/internal/export"
	"github.com/programmersnake/avro-viewer-app/internal/record"
	"github.com/spf13/cobra"
)

var (
	flagSearchField      string
	flagSearchMax        int
	flagSearchIgnoreCase bool
	flagSearchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search <file> <query...>",
	Short: "Search records by substring, optionally scoped to one field",
	Long: `Scan every record in file order and print the first matches whose
stringified values contain the query. Matching is case-sensitive unless
--ignore-case is given. Scanning stops as soon as --max matches are found.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&flagSearchField, "field", "", "Match only this field (default: any field)")
	searchCmd.Flags().IntVar(&flagSearchMax, "max", 0, "Maximum number of matches (default from config)")
	searchCmd.Flags().BoolVar(&flagSearchIgnoreCase, "ignore-case", false, "Case-insensitive matching")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Print matches as a JSON array instead of a table")
	rootCmd.AddCommand(searchCmd)
}

// validateMaxResults enforces the viewer's result bound; export shares it.
func validateMaxResults(max int) error {
	if max < 1 || max > 200000 {
		return fmt.Errorf("max results must be between 1 and 200000, got %d", max)
	}
	return nil
}

func runSearch(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	maxResults := flagSearchMax
	if maxResults == 0 {
		maxResults = cfg.DefaultMaxResults
	}
	if err := validateMaxResults(maxResults); err != nil {
		return err
	}
	query := strings.Join(args[1:], " ")

	sess, err := openSession(args[0])
	if err != nil {
		return err
	}
	matches, err := record.Search(args[0], record.Query{
		Text:       query,
		Field:      flagSearchField,
		MaxResults: maxResults,
		FoldCase:   flagSearchIgnoreCase,
	})
	if err != nil {
		return err
	}

	recs := make([]record.Record, len(matches))
	for i, m := range matches {
		recs[i] = m.Record
	}

	if flagSearchJSON {
		return export.WriteJSON(os.Stdout, recs)
	}

	if len(matches) == 0 {
		fmt.Printf("No matches for %q\n", query)
		return nil
	}
	fields := tableFields(sess, recs)
	rows := make([]tableRow, len(matches))
	for i, m := range matches {
		rows[i] = tableRow{index: m.Index, rec: m.Record}
	}
	renderTable(fields, rows)

	fmt.Printf("\n%s matches for %q", formatCount(len(matches)), query)
	if len(matches) == maxResults {
		fmt.Printf(" (limit reached; more may exist)")
	}
	fmt.Println()
	return nil
}
