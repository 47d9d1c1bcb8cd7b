package export

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/programmersnake/avro-viewer-app/internal/record"
)

// WriteCSV writes one row per record. Columns follow fields, normally the
// schema's declared field order; nested and sequence values are serialized
// with the same cell stringification the table view uses.
func WriteCSV(w io.Writer, fields []string, recs []record.Record) error {
	if len(fields) == 0 {
		return errors.New("no columns to export")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return err
	}
	row := make([]string, len(fields))
	for _, r := range recs {
		for i, f := range fields {
			row[i] = record.Stringify(r[f])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
