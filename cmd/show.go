package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/programmersnake/avro-viewer-app/internal/record"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file> <index>",
	Short: "Print one record as formatted JSON",
	Long: `Print the record at the given zero-based index as indented JSON, with
nested structures preserved and byte values carried as a base64 marker.`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[1])
	if err != nil || idx < 0 {
		return fmt.Errorf("record index must be a non-negative integer, got %q", args[1])
	}
	if _, err := openSession(args[0]); err != nil {
		return err
	}

	// A single-record page lands exactly on the requested index.
	page, err := record.GetPage(args[0], idx, 1)
	if err != nil {
		return err
	}
	if len(page.Records) == 0 {
		return fmt.Errorf("record %d is past the end of %s", idx, args[0])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(record.JSONSafe(page.Records[0]))
}
