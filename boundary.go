package dxf

// PathType is the bit-flag set carried by every boundary path
// (group 92). The Polyline bit is derived from the variant and never
// set by callers.
type PathType int64

// Boundary path type flags.
const (
	PathDefault   PathType = 0
	PathExternal  PathType = 1 << 0
	PathPolyline  PathType = 1 << 1
	PathDerived   PathType = 1 << 2
	PathTextbox   PathType = 1 << 3
	PathOutermost PathType = 1 << 4
)

// BoundaryPath is one closed region edge of a hatch. It is a closed
// sum type: a loop is either an EdgeLoop (a composite of Edge
// variants) or a PolylineLoop (a run of bulge vertices), never both.
type BoundaryPath interface {
	isBoundaryPath()

	// Type returns the path's flag set, with the Polyline bit
	// reflecting the variant.
	Type() PathType

	// SourceHandles returns the handles of the boundary objects this
	// loop was derived from (associative hatches only).
	SourceHandles() []string

	writeTags(w *Writer)
}

// EdgeLoop is a boundary path composed of a sequence of edges. No
// geometric validation (closure, self-intersection) is performed on
// edge loops; that is the producer's responsibility.
type EdgeLoop struct {
	Flags   PathType
	Edges   []Edge
	Sources []string
}

func (*EdgeLoop) isBoundaryPath() {}

// Type returns the loop's flags. The Polyline bit is always clear for
// an edge loop.
func (l *EdgeLoop) Type() PathType {
	return l.Flags &^ PathPolyline
}

// SourceHandles returns the source boundary object handles.
func (l *EdgeLoop) SourceHandles() []string {
	return l.Sources
}

func (l *EdgeLoop) writeTags(w *Writer) {
	w.Int(92, int64(l.Type()))
	w.Int(93, int64(len(l.Edges)))
	for _, e := range l.Edges {
		w.Int(72, e.edgeType())
		e.writeTags(w)
	}
	writeSourceHandles(w, l.Sources)
}

// PolylineLoop is a boundary path stored as a run of vertices, each
// optionally carrying a bulge for the arc segment to the next vertex.
type PolylineLoop struct {
	Flags    PathType
	Closed   bool
	Vertices []Vertex
	Sources  []string
}

func (*PolylineLoop) isBoundaryPath() {}

// Type returns the loop's flags with the Polyline bit set.
func (l *PolylineLoop) Type() PathType {
	return l.Flags | PathPolyline
}

// SourceHandles returns the source boundary object handles.
func (l *PolylineLoop) SourceHandles() []string {
	return l.Sources
}

// hasBulge reports whether any vertex carries a bulge. When set, the
// format requires a group-42 record for every vertex.
func (l *PolylineLoop) hasBulge() bool {
	for _, v := range l.Vertices {
		if v.HasBulge {
			return true
		}
	}
	return false
}

func (l *PolylineLoop) writeTags(w *Writer) {
	w.Int(92, int64(l.Type()))
	bulge := l.hasBulge()
	w.Bool(72, bulge)
	w.Bool(73, l.Closed)
	w.Int(93, int64(len(l.Vertices)))
	for _, v := range l.Vertices {
		w.Point(10, 20, v.Point)
		if bulge {
			w.Float(42, v.Bulge)
		}
	}
	writeSourceHandles(w, l.Sources)
}

// writeSourceHandles writes the source-object count and handle list
// that terminates every boundary path record.
func writeSourceHandles(w *Writer, handles []string) {
	w.Int(97, int64(len(handles)))
	for _, h := range handles {
		w.Handle(330, h)
	}
}

// readBoundaryPath rebuilds one loop. The group-92 flags have already
// been consumed; the variant is picked from the Polyline bit.
func readBoundaryPath(r *Reader, flags PathType) BoundaryPath {
	if flags&PathPolyline != 0 {
		return readPolylineLoop(r, flags)
	}
	return readEdgeLoop(r, flags)
}

// loopBoundary reports whether a group code belongs to the level above
// a boundary path record (next loop, or the hatch fields that follow
// the loop list).
func loopBoundary(code int) bool {
	switch code {
	case 0, 92, 75, 76, 78, 98, 47:
		return true
	}
	return false
}

func readEdgeLoop(r *Reader, flags PathType) *EdgeLoop {
	l := &EdgeLoop{Flags: flags &^ PathPolyline}
	for r.Next() {
		t := r.Tag()
		switch t.Code {
		case 93:
			// Declared edge count; the sequence is authoritative.
		case 72:
			kind := r.Int(t)
			e := newEdge(kind)
			if e == nil {
				Logger().Warn("dxf: skipping unknown boundary edge type", "type", kind)
				skipEdgeFields(r)
				continue
			}
			e.readTags(r)
			l.Edges = append(l.Edges, e)
		case 97:
			// Declared source count.
		case 330:
			l.Sources = append(l.Sources, r.Handle(t))
		default:
			if loopBoundary(t.Code) {
				r.Unread()
				return l
			}
			r.skip(t, "edge loop")
		}
	}
	return l
}

// skipEdgeFields consumes the field records of an edge whose type
// marker was not recognized, stopping at the next edge or loop-level
// code.
func skipEdgeFields(r *Reader) {
	for r.Next() {
		t := r.Tag()
		if t.Code == 72 || t.Code == 97 || t.Code == 330 || loopBoundary(t.Code) {
			r.Unread()
			return
		}
	}
}

func readPolylineLoop(r *Reader, flags PathType) *PolylineLoop {
	l := &PolylineLoop{Flags: flags &^ PathPolyline}
	for r.Next() {
		t := r.Tag()
		switch t.Code {
		case 72:
			// Loop-level has-bulge flag; per-vertex group-42 records
			// carry the data itself.
			r.Bool(t)
		case 73:
			l.Closed = r.Bool(t)
		case 93:
			// Declared vertex count; the sequence is authoritative.
		case 10:
			l.Vertices = append(l.Vertices, Vertex{Point: Pt(r.Float(t), 0)})
		case 20:
			if n := len(l.Vertices); n > 0 {
				l.Vertices[n-1].Point.Y = r.Float(t)
			}
		case 42:
			if n := len(l.Vertices); n > 0 {
				l.Vertices[n-1].Bulge = r.Float(t)
				l.Vertices[n-1].HasBulge = true
			}
		case 97:
			// Declared source count.
		case 330:
			l.Sources = append(l.Sources, r.Handle(t))
		default:
			if loopBoundary(t.Code) {
				r.Unread()
				return l
			}
			r.skip(t, "polyline loop")
		}
	}
	return l
}
