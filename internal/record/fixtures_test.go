package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hamba/avro/v2/ocf"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"type": "record",
	"name": "Person",
	"namespace": "viewer.test",
	"fields": [
		{"name": "name", "type": "string"},
		{"name": "age", "type": "long"},
		{"name": "city", "type": "string"}
	]
}`

// tenPeople is the fixture set shared across the package tests. The records
// at indices 2 and 7 contain "Alice" in the name field.
func tenPeople() []Record {
	names := []string{
		"Ann", "Bob", "Alice Smith", "Carol", "Dave",
		"Eve", "Frank", "Alice Jones", "Grace", "Heidi",
	}
	out := make([]Record, 0, len(names))
	for i, n := range names {
		out = append(out, Record{"name": n, "age": int64(20 + i), "city": "Oslo"})
	}
	return out
}

// writeContainer writes recs into a fresh container file under a temp dir.
func writeContainer(t *testing.T, recs []Record, opts ...ocf.EncoderFunc) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.avro")
	f, err := os.Create(path)
	require.NoError(t, err)
	enc, err := ocf.NewEncoder(personSchema, f, opts...)
	require.NoError(t, err)
	for _, r := range recs {
		require.NoError(t, enc.Encode(r))
	}
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

// truncateTail chops n bytes off the end of the file, simulating a write that
// was cut short.
func truncateTail(t *testing.T, path string, n int64) {
	t.Helper()
	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, fi.Size(), n)
	require.NoError(t, os.Truncate(path, fi.Size()-n))
}

func recordNames(recs []Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r["name"].(string))
	}
	return out
}
