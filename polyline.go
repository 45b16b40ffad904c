package dxf

import "math"

// Vertex is one entry of a polyline loop. Bulge encodes the
// sagitta/chord ratio of the arc segment implied between this vertex
// and the next; it is meaningful only when HasBulge is set.
type Vertex struct {
	Point    Point
	Bulge    float64
	HasBulge bool
}

// Vtx is a convenience function to create a straight vertex.
func Vtx(x, y float64) Vertex {
	return Vertex{Point: Pt(x, y)}
}

// windingEpsilon separates a winding sum of ~2π (inside) from ~0
// (outside). The classification compares the accumulated sum against
// π, the midpoint between the two, so the tolerance is generous by
// construction.
const windingEpsilon = 1e-9

// Close makes the loop's closure flag and vertex data consistent.
//
// On an open loop it appends a copy of the first vertex and sets
// Closed. On a loop already marked closed it verifies that the last
// vertex coincides with the first and repairs the loop by appending a
// copy of the first vertex if not; the repair is logged, not silent.
// Closing an already-closed, consistent loop is a no-op.
func (l *PolylineLoop) Close() {
	if len(l.Vertices) == 0 {
		l.Closed = true
		return
	}
	first := l.Vertices[0]
	last := l.Vertices[len(l.Vertices)-1]
	if !l.Closed {
		l.Vertices = append(l.Vertices, first)
		l.Closed = true
		return
	}
	if last.Point != first.Point {
		Logger().Warn("dxf: closed polyline loop does not end at its first vertex, repairing",
			"first", first.Point, "last", last.Point)
		l.Vertices = append(l.Vertices, first)
	}
}

// ContainsPoint classifies p against the loop using angle summation:
// the signed angles subtended at p by consecutive vertex pairs are
// accumulated, and the total is ~±2π for an interior point and ~0 for
// an exterior one. Only the accumulated total is compared against π;
// no single increment is ever classified on its own.
//
// The loop must be closed; ErrNotClosed is returned otherwise. A point
// exactly on a vertex or an edge is an unspecified boundary case.
func (l *PolylineLoop) ContainsPoint(p Point) (bool, error) {
	if !l.Closed {
		return false, ErrNotClosed
	}
	n := len(l.Vertices)
	if n < 3 {
		return false, nil
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := l.Vertices[i].Point.Sub(p)
		b := l.Vertices[(i+1)%n].Point.Sub(p)
		sum += math.Atan2(a.Cross(b), a.Dot(b))
	}
	return math.Abs(sum) > math.Pi+windingEpsilon, nil
}
