package dxf

// Edge is one segment of an edge-composite boundary loop. It is a
// closed sum type: the only implementations are LineEdge, ArcEdge,
// EllipseEdge and SplineEdge.
type Edge interface {
	isBoundaryEdge()

	// edgeType is the group-72 marker identifying the variant inside
	// an edge loop.
	edgeType() int64

	writeTags(w *Writer)
	readTags(r *Reader)
}

// Edge type markers (group 72 inside an edge loop).
const (
	edgeTypeLine    = 1
	edgeTypeArc     = 2
	edgeTypeEllipse = 3
	edgeTypeSpline  = 4
)

// newEdge constructs the variant for a group-72 marker. Unknown
// markers return nil; the loop reader skips the edge and reports it.
func newEdge(kind int64) Edge {
	switch kind {
	case edgeTypeLine:
		return &LineEdge{}
	case edgeTypeArc:
		return &ArcEdge{}
	case edgeTypeEllipse:
		return &EllipseEdge{}
	case edgeTypeSpline:
		return &SplineEdge{}
	}
	return nil
}

// LineEdge is a straight boundary segment.
type LineEdge struct {
	Start Point
	End   Point
}

func (*LineEdge) isBoundaryEdge() {}
func (*LineEdge) edgeType() int64 { return edgeTypeLine }

func (e *LineEdge) writeTags(w *Writer) {
	w.Point(10, 20, e.Start)
	w.Point(11, 21, e.End)
}

func (e *LineEdge) readTags(r *Reader) {
	for r.Next() {
		t := r.Tag()
		switch t.Code {
		case 10:
			e.Start.X = r.Float(t)
		case 20:
			e.Start.Y = r.Float(t)
		case 11:
			e.End.X = r.Float(t)
		case 21:
			e.End.Y = r.Float(t)
		default:
			r.Unread()
			return
		}
	}
}

// ArcEdge is a circular-arc boundary segment. Angles are in degrees
// and stored exactly as they appear in the stream; the format does not
// normalize them.
type ArcEdge struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	CCW        bool
}

func (*ArcEdge) isBoundaryEdge() {}
func (*ArcEdge) edgeType() int64 { return edgeTypeArc }

func (e *ArcEdge) writeTags(w *Writer) {
	w.Point(10, 20, e.Center)
	w.Float(40, e.Radius)
	w.Float(50, e.StartAngle)
	w.Float(51, e.EndAngle)
	w.Bool(73, e.CCW)
}

func (e *ArcEdge) readTags(r *Reader) {
	for r.Next() {
		t := r.Tag()
		switch t.Code {
		case 10:
			e.Center.X = r.Float(t)
		case 20:
			e.Center.Y = r.Float(t)
		case 40:
			e.Radius = r.Float(t)
		case 50:
			e.StartAngle = r.Float(t)
		case 51:
			e.EndAngle = r.Float(t)
		case 73:
			e.CCW = r.Bool(t)
		default:
			r.Unread()
			return
		}
	}
}

// EllipseEdge is an elliptic-arc boundary segment. MajorAxis is the
// endpoint of the major axis relative to the center; Ratio is the
// minor-to-major axis length ratio.
type EllipseEdge struct {
	Center     Point
	MajorAxis  Point
	Ratio      float64
	StartAngle float64
	EndAngle   float64
	CCW        bool
}

func (*EllipseEdge) isBoundaryEdge() {}
func (*EllipseEdge) edgeType() int64 { return edgeTypeEllipse }

func (e *EllipseEdge) writeTags(w *Writer) {
	w.Point(10, 20, e.Center)
	w.Point(11, 21, e.MajorAxis)
	w.Float(40, e.Ratio)
	w.Float(50, e.StartAngle)
	w.Float(51, e.EndAngle)
	w.Bool(73, e.CCW)
}

func (e *EllipseEdge) readTags(r *Reader) {
	for r.Next() {
		t := r.Tag()
		switch t.Code {
		case 10:
			e.Center.X = r.Float(t)
		case 20:
			e.Center.Y = r.Float(t)
		case 11:
			e.MajorAxis.X = r.Float(t)
		case 21:
			e.MajorAxis.Y = r.Float(t)
		case 40:
			e.Ratio = r.Float(t)
		case 50:
			e.StartAngle = r.Float(t)
		case 51:
			e.EndAngle = r.Float(t)
		case 73:
			e.CCW = r.Bool(t)
		default:
			r.Unread()
			return
		}
	}
}
