package cmd

import (
	"fmt"
	"os"

	"github.com/programmersnake/avro-viewer-app/internal/config"
	"github.com/programmersnake/avro-viewer-app/internal/record"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "avro-viewer",
	Short:        "Avro Viewer — browse, search and export Avro container files",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Avro Viewer pages through, searches and exports the records of an Avro
object container file without loading the whole file into memory.

Every command streams the file from its first byte on each run; nothing is
cached or indexed between invocations, so output always reflects the file
as it is on disk at call time.`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openSession opens the container file and notes it in the recents list.
// Recents are best effort: a failure there never fails the read itself.
func openSession(path string) (*record.Session, error) {
	sess, err := record.Open(path)
	if err != nil {
		return nil, err
	}
	limit := config.DefaultRecentLimit
	if cfg, err := config.Load(); err == nil {
		limit = cfg.RecentLimit
	}
	_ = config.AddRecent(path, limit)
	return sess, nil
}
