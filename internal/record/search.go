package record

import (
	"errors"
	"fmt"
	"strings"
)

// Query describes one field-scoped substring search.
type Query struct {
	Text       string
	Field      string // empty means match against every field
	MaxResults int
	FoldCase   bool // case-insensitive matching when set
}

// Match pairs a matched record with its zero-based position in the file, so
// a caller can later request the page containing it.
type Match struct {
	Index  int
	Record Record
}

// Search streams the whole file once, in storage order, and returns the
// first MaxResults records whose stringified values contain q.Text. With
// q.Field set, only that field is tested; a record missing the field simply
// does not match. Scanning stops as soon as MaxResults matches are found.
// Result indices are strictly increasing; a record that cannot be decoded
// before the limit is reached fails the whole call and accumulated matches
// are discarded.
func Search(path string, q Query) ([]Match, error) {
	if q.MaxResults < 1 {
		return nil, fmt.Errorf("max results must be >= 1, got %d", q.MaxResults)
	}

	sess, err := Open(path)
	if err != nil {
		return nil, err
	}
	cur, err := sess.Records()
	if err != nil {
		return nil, err
	}
	defer cur.Close()

	text := q.Text
	if q.FoldCase {
		text = strings.ToLower(text)
	}

	matches := make([]Match, 0)
	for i := 0; ; i++ {
		rec, err := cur.Next()
		if errors.Is(err, ErrEndOfFile) {
			break
		}
		if err != nil {
			return nil, err
		}
		if !matchRecord(rec, q.Field, text, q.FoldCase) {
			continue
		}
		matches = append(matches, Match{Index: i, Record: rec})
		if len(matches) >= q.MaxResults {
			break
		}
	}
	return matches, nil
}

func matchRecord(rec Record, field, text string, fold bool) bool {
	if field != "" {
		v, ok := rec[field]
		if !ok || v == nil {
			return false
		}
		return containsText(v, text, fold)
	}
	for _, v := range rec {
		if v == nil {
			continue
		}
		if containsText(v, text, fold) {
			return true
		}
	}
	return false
}

func containsText(v any, text string, fold bool) bool {
	s := Stringify(v)
	if fold {
		s = strings.ToLower(s)
	}
	return strings.Contains(s, text)
}
