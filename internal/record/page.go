package record

import (
	"errors"
	"fmt"
)

// Page is a contiguous, order-preserving window of records selected by position.
type Page struct {
	Index   int // zero-based page index as requested
	Size    int // requested page size; len(Records) may be shorter at end of file
	Records []Record
	HasMore bool // at least one record exists beyond this page
}

// GetPage returns the records in [index*size, index*size+size). It streams
// the file from the start, discarding records before the window, and probes
// for one record past it to set HasMore. Cost therefore grows linearly with
// the page index; the trade keeps memory flat and every page consistent with
// the on-disk state at call time. A page index past the last page is not an
// error: it yields an empty page with HasMore false.
//
// The page is all-or-nothing with respect to corruption: a record inside the
// window (or the HasMore probe) that cannot be decoded fails the whole call
// and any records already collected are discarded.
func GetPage(path string, index, size int) (*Page, error) {
	if index < 0 {
		return nil, fmt.Errorf("page index must be >= 0, got %d", index)
	}
	if size < 1 {
		return nil, fmt.Errorf("page size must be >= 1, got %d", size)
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

	for skip := index * size; skip > 0; skip-- {
		if _, err := cur.Next(); err != nil {
			if errors.Is(err, ErrEndOfFile) {
				return &Page{Index: index, Size: size, Records: []Record{}}, nil
			}
			return nil, err
		}
	}

	page := &Page{Index: index, Size: size, Records: make([]Record, 0, size)}
	for len(page.Records) < size {
		rec, err := cur.Next()
		if errors.Is(err, ErrEndOfFile) {
			return page, nil
		}
		if err != nil {
			return nil, err
		}
		page.Records = append(page.Records, rec)
	}

	// Probe one more record, without keeping it, to learn whether a further
	// page exists.
	if _, err := cur.Next(); err != nil {
		if errors.Is(err, ErrEndOfFile) {
			return page, nil
		}
		return nil, err
	}
	page.HasMore = true
	return page, nil
}
