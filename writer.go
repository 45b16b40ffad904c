package dxf

import (
	"io"

	"github.com/bert/libdxf-sub001/tag"
)

// Writer sequences tag records according to entity schemas, applying
// the format's cross-cutting serialization rules: version gating and
// owner-handle framing.
//
// A field gated behind a minimum revision is silently omitted when the
// target revision is older; readers of such files never require it.
type Writer struct {
	t   *tag.Writer
	rev Revision
}

// NewWriter creates a Writer emitting records for the given target
// revision.
func NewWriter(w io.Writer, rev Revision) *Writer {
	return &Writer{t: tag.NewWriter(w), rev: rev}
}

// Revision returns the target revision this writer emits for.
func (w *Writer) Revision() Revision {
	return w.rev
}

// Supports reports whether the target revision is at least min.
func (w *Writer) Supports(min Revision) bool {
	return w.rev >= min
}

// String writes a string record.
func (w *Writer) String(code int, s string) {
	w.t.WriteString(code, s)
}

// Int writes an integer record.
func (w *Writer) Int(code int, v int64) {
	w.t.WriteInt(code, v)
}

// Float writes a float record.
func (w *Writer) Float(code int, v float64) {
	w.t.WriteFloat(code, v)
}

// Bool writes a flag record as 0 or 1.
func (w *Writer) Bool(code int, v bool) {
	w.t.WriteBool(code, v)
}

// Handle writes a hex handle record.
func (w *Writer) Handle(code int, h string) {
	w.t.WriteHandle(code, h)
}

// Bytes writes a binary chunk record.
func (w *Writer) Bytes(code int, b []byte) {
	w.t.WriteBytes(code, b)
}

// StringFrom writes a string record only when the target revision is
// at least min.
func (w *Writer) StringFrom(min Revision, code int, s string) {
	if w.rev >= min {
		w.t.WriteString(code, s)
	}
}

// IntFrom writes an integer record only when the target revision is at
// least min.
func (w *Writer) IntFrom(min Revision, code int, v int64) {
	if w.rev >= min {
		w.t.WriteInt(code, v)
	}
}

// FloatFrom writes a float record only when the target revision is at
// least min.
func (w *Writer) FloatFrom(min Revision, code int, v float64) {
	if w.rev >= min {
		w.t.WriteFloat(code, v)
	}
}

// HandleFrom writes a handle record only when the handle is non-empty
// and the target revision is at least min.
func (w *Writer) HandleFrom(min Revision, code int, h string) {
	if h != "" && w.rev >= min {
		w.t.WriteHandle(code, h)
	}
}

// Point writes a 2D point as an x/y code pair. yCode is xCode+10 by
// format convention, but callers spell both out.
func (w *Writer) Point(xCode, yCode int, p Point) {
	w.t.WriteFloat(xCode, p.X)
	w.t.WriteFloat(yCode, p.Y)
}

// Point3 writes a 3D point as an x/y/z code triple.
func (w *Writer) Point3(xCode, yCode, zCode int, p Point3) {
	w.t.WriteFloat(xCode, p.X)
	w.t.WriteFloat(yCode, p.Y)
	w.t.WriteFloat(zCode, p.Z)
}

// ownerGroup writes a soft-pointer dictionary-owner handle wrapped in
// its begin/end marker pair. Emitted only when the handle is non-empty
// and the target revision is at least R14; omitted entirely otherwise.
func (w *Writer) ownerGroup(name string, handleCode int, handles ...string) {
	if w.rev < R14 {
		return
	}
	any := false
	for _, h := range handles {
		if h != "" {
			any = true
			break
		}
	}
	if !any {
		return
	}
	w.t.WriteString(102, "{"+name)
	for _, h := range handles {
		if h != "" {
			w.t.WriteHandle(handleCode, h)
		}
	}
	w.t.WriteString(102, "}")
}

// Err returns the first error encountered by the underlying stream.
func (w *Writer) Err() error {
	return w.t.Err()
}

// Flush writes buffered records to the underlying stream.
func (w *Writer) Flush() error {
	return w.t.Flush()
}
