// Package export renders record sets in the interchange formats the viewer
// offers: a JSON array with nested structures preserved, and CSV with one
// row per record.
package export

import (
	"encoding/json"
	"io"

	"github.com/programmersnake/avro-viewer-app/internal/record"
)

// WriteJSON writes recs as an indented JSON array. Nested maps and sequences
// are preserved; byte values carry the __bytes_b64__ marker so they survive
// a round trip.
func WriteJSON(w io.Writer, recs []record.Record) error {
	safe := make([]any, len(recs))
	for i, r := range recs {
		safe[i] = record.JSONSafe(r)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(safe)
}
