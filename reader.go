package dxf

import (
	"github.com/bert/libdxf-sub001/tag"
)

// Reader drives a tag.Scanner through an entity's schema with the
// format's tolerant-reading rules: recognized group codes are accepted
// in any order, duplicate scalar fields overwrite, and unrecognized
// codes at the current nesting level are logged and skipped rather
// than failing the read.
//
// Accessor methods record the first conversion error and make every
// later call a no-op, so dispatch loops stay free of per-field error
// plumbing; the deferred error is reported by Err.
type Reader struct {
	sc  *tag.Scanner
	err error
}

// NewReader creates a Reader over a tag scanner.
func NewReader(sc *tag.Scanner) *Reader {
	return &Reader{sc: sc}
}

// Next advances to the next record. It returns false at end of stream
// or once an error has been recorded.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	return r.sc.Next()
}

// Tag returns the record produced by the last successful Next.
func (r *Reader) Tag() tag.Tag {
	return r.sc.Tag()
}

// Unread pushes the current tag back so an outer dispatch loop sees it.
func (r *Reader) Unread() {
	r.sc.Unread()
}

// Err returns the first error encountered, either by the scanner or by
// a typed accessor.
func (r *Reader) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.sc.Err()
}

// Float parses t as a float, recording a malformed-record error.
func (r *Reader) Float(t tag.Tag) float64 {
	v, err := t.Float()
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}

// Int parses t as an integer, recording a malformed-record error.
func (r *Reader) Int(t tag.Tag) int64 {
	v, err := t.Int()
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}

// Bool parses t as a flag, recording a malformed-record error.
func (r *Reader) Bool(t tag.Tag) bool {
	v, err := t.Bool()
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}

// Handle parses t as a hex handle, recording a malformed-record error.
func (r *Reader) Handle(t tag.Tag) string {
	v, err := t.Handle()
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}

// Bytes parses t as a binary chunk, recording a malformed-record error.
func (r *Reader) Bytes(t tag.Tag) []byte {
	v, err := t.Bytes()
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}

// skip reports an unrecognized group code at the current nesting level
// and moves on. Not fatal: the format allows vendor extensions.
func (r *Reader) skip(t tag.Tag, where string) {
	Logger().Debug("dxf: skipping unrecognized group code",
		"code", t.Code, "value", t.Value, "in", where)
}
