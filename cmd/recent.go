package cmd

import (
	"fmt"

	"github.com/programmersnake/avro-viewer-app/internal/config"
	"github.com/spf13/cobra"
)

var flagRecentClear bool

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened container files",
	Args:  cobra.NoArgs,
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().BoolVar(&flagRecentClear, "clear", false, "Forget all recent files")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(_ *cobra.Command, _ []string) error {
	if flagRecentClear {
		if err := config.ClearRecents(); err != nil {
			return err
		}
		printOK("recent list cleared")
		return nil
	}

	entries, err := config.LoadRecents()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No recent files.")
		return nil
	}
	for i, e := range entries {
		fmt.Printf("  %d. %s\n", i+1, e)
	}
	return nil
}
