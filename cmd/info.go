package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/hamba/avro/v2"
	"github.com/programmersnake/avro-viewer-app/internal/record"
	"github.com/spf13/cobra"
)

var flagInfoCount bool

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show container header information",
	Long: `Summarize a container file: size, compression codec, schema name and
field count. With --count the whole file is scanned to report the exact
number of records.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&flagInfoCount, "count", false, "Scan the file and report the exact record count")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, args []string) error {
	sess, err := openSession(args[0])
	if err != nil {
		return err
	}
	fi, err := os.Stat(args[0])
	if err != nil {
		return err
	}

	codec := string(sess.Metadata()["avro.codec"])
	if codec == "" {
		codec = "null"
	}
	schemaName := string(sess.Schema().Type())
	if rs, ok := sess.Schema().(*avro.RecordSchema); ok {
		schemaName = rs.FullName()
	}

	fmt.Printf("File:   %s\n", args[0])
	fmt.Printf("Size:   %s bytes\n", formatCount(int(fi.Size())))
	fmt.Printf("Codec:  %s\n", codec)
	fmt.Printf("Schema: %s\n", schemaName)
	fmt.Printf("Fields: %d\n", len(sess.FieldNames()))

	if !flagInfoCount {
		return nil
	}
	n, err := countRecords(sess)
	if err != nil {
		return err
	}
	fmt.Printf("Records: %s\n", formatCount(n))
	return nil
}

// countRecords walks the whole record stream once.
func countRecords(sess *record.Session) (int, error) {
	cur, err := sess.Records()
	if err != nil {
		return 0, err
	}
	defer cur.Close()

	n := 0
	for {
		_, err := cur.Next()
		if errors.Is(err, record.ErrEndOfFile) {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		n++
	}
}
