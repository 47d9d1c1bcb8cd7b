// Package record is the access layer for Avro object container files: it
// opens a file's embedded schema, streams its records in storage order, and
// builds pages and search results on top of that stream. The container
// format only supports forward sequential decoding, so every operation
// reopens the file from byte zero; no state is cached between calls.
package record

import (
	"errors"
	"fmt"
	"os"

	"github.com/hamba/avro/v2"
	"github.com/hamba/avro/v2/ocf"
)

// Record is one decoded datum from the container, keyed by field name.
// Records are transient: they live only as long as the call that produced them.
type Record = map[string]any

const schemaMetaKey = "avro.schema"

// Session gives access to one container file's schema and record stream.
// Open parses the header once; Records opens a fresh handle each time, so a
// Session holds no file handle of its own and is safe to share.
type Session struct {
	path     string
	schema   avro.Schema
	fields   []string
	metadata map[string][]byte
}

// Open validates the file and parses the container header and embedded schema.
func Open(path string) (*Session, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &FileError{Kind: KindNotFound, Path: path, Record: -1, Err: err}
		}
		return nil, &FileError{Kind: KindUnreadable, Path: path, Record: -1, Err: err}
	}
	if info.IsDir() {
		return nil, &FileError{Kind: KindUnreadable, Path: path, Record: -1, Err: errors.New("is a directory")}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Kind: KindUnreadable, Path: path, Record: -1, Err: err}
	}
	defer f.Close()

	dec, err := ocf.NewDecoder(f)
	if err != nil {
		return nil, &FileError{Kind: KindCorruptHeader, Path: path, Record: -1, Err: err}
	}
	meta := dec.Metadata()
	raw, ok := meta[schemaMetaKey]
	if !ok {
		return nil, &FileError{Kind: KindCorruptHeader, Path: path, Record: -1, Err: errors.New("header has no embedded schema")}
	}
	schema, err := avro.Parse(string(raw))
	if err != nil {
		return nil, &FileError{Kind: KindCorruptHeader, Path: path, Record: -1, Err: fmt.Errorf("cannot parse embedded schema: %w", err)}
	}

	return &Session{
		path:     path,
		schema:   schema,
		fields:   fieldNames(schema),
		metadata: meta,
	}, nil
}

// ReadSchema reads only the container header and returns the embedded schema.
func ReadSchema(path string) (avro.Schema, error) {
	sess, err := Open(path)
	if err != nil {
		return nil, err
	}
	return sess.Schema(), nil
}

// Schema returns the writer schema embedded in the container header.
func (s *Session) Schema() avro.Schema { return s.schema }

// FieldNames returns the top-level field names in declared order, or nil when
// the writer schema is not a record schema.
func (s *Session) FieldNames() []string {
	if s.fields == nil {
		return nil
	}
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Metadata returns a copy of the raw header metadata (schema, codec, custom keys).
func (s *Session) Metadata() map[string][]byte {
	out := make(map[string][]byte, len(s.metadata))
	for k, v := range s.metadata {
		out[k] = v
	}
	return out
}

// Records opens a fresh cursor positioned before the first record. The
// cursor owns its file handle; the caller must Close it on every exit path.
// Seeking is not supported: reaching record N means decoding and discarding
// the N records before it.
func (s *Session) Records() (*Cursor, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, &FileError{Kind: KindUnreadable, Path: s.path, Record: -1, Err: err}
	}
	dec, err := ocf.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, &FileError{Kind: KindCorruptHeader, Path: s.path, Record: -1, Err: err}
	}
	return &Cursor{path: s.path, file: f, dec: dec}, nil
}

func fieldNames(s avro.Schema) []string {
	rec, ok := s.(*avro.RecordSchema)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(rec.Fields()))
	for _, f := range rec.Fields() {
		names = append(names, f.Name())
	}
	return names
}
