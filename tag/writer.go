package tag

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Writer emits group-code/value records to an output stream.
//
// Group codes are written right-aligned in three columns and floats in
// fixed-point notation, matching the layout every mainstream CAD
// package produces. Write methods never fail on the value itself
// (callers pre-validate); only the underlying stream can error, and
// that error is sticky and reported by Flush.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) record(code int, value string) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, "%3d\n%s\n", code, value)
}

// WriteString writes a string-valued record.
func (w *Writer) WriteString(code int, s string) {
	w.record(code, s)
}

// WriteInt writes an integer-valued record.
func (w *Writer) WriteInt(code int, v int64) {
	w.record(code, fmt.Sprintf("%d", v))
}

// WriteFloat writes a float-valued record in fixed-point notation.
// Scientific notation is never produced.
func (w *Writer) WriteFloat(code int, v float64) {
	w.record(code, fmt.Sprintf("%f", v))
}

// WriteBool writes a boolean flag record as 0 or 1.
func (w *Writer) WriteBool(code int, v bool) {
	if v {
		w.WriteInt(code, 1)
	} else {
		w.WriteInt(code, 0)
	}
}

// WriteHandle writes a hexadecimal handle record in upper case.
func (w *Writer) WriteHandle(code int, handle string) {
	w.record(code, strings.ToUpper(handle))
}

// WriteBytes writes a binary chunk record as upper-case hex.
func (w *Writer) WriteBytes(code int, b []byte) {
	w.record(code, strings.ToUpper(hex.EncodeToString(b)))
}

// Err returns the first error encountered by a Write method.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes buffered records to the underlying stream and returns
// the first error encountered, if any.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}
