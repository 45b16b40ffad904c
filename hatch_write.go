package dxf

import (
	"fmt"
	"io"
)

// Write serializes the hatch at the given target revision. The write
// is atomic from the caller's perspective: validation happens up
// front, and a hatch is never partially committed to the stream on
// error (records are buffered until Flush).
//
// HATCH first appeared in R14; older targets fail with
// ErrUnsupportedRevision. A missing base point fails with
// ErrMissingBasePoint. An empty layer or linetype name does not fail:
// the format default is substituted and the substitution logged.
func (h *Hatch) Write(out io.Writer, rev Revision) error {
	if rev < R14 {
		return fmt.Errorf("%w: HATCH requires %s, target is %s", ErrUnsupportedRevision, R14, rev)
	}
	if h.BasePoint == nil {
		return ErrMissingBasePoint
	}
	w := NewWriter(out, rev)
	h.writeTo(w)
	return w.Flush()
}

// writeTo emits the hatch record sequence in the fixed order the
// format prescribes.
func (h *Hatch) writeTo(w *Writer) {
	writeCommon(w, "HATCH", &h.EntityAttributes)
	w.String(100, "AcDbHatch")

	w.Point3(10, 20, 30, *h.BasePoint)

	ext := h.Extrusion
	if ext == (Point3{}) {
		ext = defaultExtrusion
	}
	w.Point3(210, 220, 230, ext)

	w.String(2, h.PatternName)
	w.Bool(70, h.SolidFill)
	w.Bool(71, h.Associative)

	w.Int(91, int64(len(h.Paths)))
	for _, p := range h.Paths {
		p.writeTags(w)
	}

	w.Int(75, int64(h.Style))
	w.Int(76, int64(h.PatternType))

	if !h.SolidFill {
		w.Float(52, h.PatternAngle)
		scale := h.PatternScale
		if scale == 0 {
			scale = 1
		}
		w.Float(41, scale)
		w.Bool(77, h.PatternDouble)

		var lines []PatternDefLine
		if h.Pattern != nil {
			lines = h.Pattern.DefLines
		}
		w.Int(78, int64(len(lines)))
		for i := range lines {
			lines[i].writeTags(w)
		}
	}

	w.Float(47, h.PixelSize)

	seeds := h.seedPoints()
	w.Int(98, int64(len(seeds)))
	for _, s := range seeds {
		w.Point(10, 20, s)
	}
}
