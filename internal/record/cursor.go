package record

import (
	"fmt"
	"os"

	"github.com/hamba/avro/v2/ocf"
)

// Cursor is a forward-only walk over a container file's records. Next
// decodes records in storage order until ErrEndOfFile or a decode failure;
// either terminates the cursor. Close releases the underlying file handle
// and is safe to call more than once.
type Cursor struct {
	path   string
	file   *os.File
	dec    *ocf.Decoder
	index  int
	closed bool
	done   bool
}

// Next decodes and returns the next record. A clean end of the stream yields
// ErrEndOfFile; a record that cannot be decoded yields a CorruptRecord
// FileError carrying the index at which decoding stopped.
func (c *Cursor) Next() (Record, error) {
	if c.closed || c.done {
		return nil, ErrEndOfFile
	}
	if !c.dec.HasNext() {
		c.done = true
		if err := c.dec.Error(); err != nil {
			return nil, &FileError{Kind: KindCorruptRecord, Path: c.path, Record: c.index, Err: err}
		}
		return nil, ErrEndOfFile
	}
	var v any
	if err := c.dec.Decode(&v); err != nil {
		c.done = true
		return nil, &FileError{Kind: KindCorruptRecord, Path: c.path, Record: c.index, Err: err}
	}
	rec, ok := v.(map[string]any)
	if !ok {
		c.done = true
		return nil, &FileError{Kind: KindCorruptRecord, Path: c.path, Record: c.index, Err: fmt.Errorf("datum is %T, not a field mapping", v)}
	}
	c.index++
	return rec, nil
}

// Index returns the zero-based index of the record the next Next call would return.
func (c *Cursor) Index() int { return c.index }

// Close releases the file handle.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.file.Close()
}
