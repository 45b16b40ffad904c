package dxf

import "fmt"

// MaxSplineKnots is the format-defined capacity of a spline edge's
// knot vector.
const MaxSplineKnots = 100

// ControlPoint is one entry of a spline edge's control-point sequence.
// Weight defaults to 1 and only matters for rational splines.
type ControlPoint struct {
	Point  Point
	Weight float64
}

// CP is a convenience function to create a unit-weight control point.
func CP(x, y float64) ControlPoint {
	return ControlPoint{Point: Pt(x, y), Weight: 1}
}

// SplineEdge is a NURBS boundary segment. The control-point and knot
// sequences are owned exclusively by the edge and manipulated through
// the positional operations below; all positions are 0-indexed.
type SplineEdge struct {
	Degree   int
	Rational bool
	Periodic bool

	knots         []float64
	controlPoints []ControlPoint
}

func (*SplineEdge) isBoundaryEdge() {}
func (*SplineEdge) edgeType() int64 { return edgeTypeSpline }

// NumControlPoints returns the length of the control-point sequence.
func (e *SplineEdge) NumControlPoints() int {
	return len(e.controlPoints)
}

// NumKnots returns the length of the knot vector.
func (e *SplineEdge) NumKnots() int {
	return len(e.knots)
}

// AppendControlPoint adds cp at the end of the sequence.
func (e *SplineEdge) AppendControlPoint(cp ControlPoint) {
	e.controlPoints = append(e.controlPoints, cp)
}

// PrependControlPoint adds cp at the front of the sequence.
func (e *SplineEdge) PrependControlPoint(cp ControlPoint) {
	e.controlPoints = append([]ControlPoint{cp}, e.controlPoints...)
}

// InsertControlPoint inserts cp before position i. Inserting at
// NumControlPoints is equivalent to append.
func (e *SplineEdge) InsertControlPoint(i int, cp ControlPoint) error {
	if i < 0 || i > len(e.controlPoints) {
		return fmt.Errorf("%w: control point insert at %d of %d", ErrOutOfRange, i, len(e.controlPoints))
	}
	e.controlPoints = append(e.controlPoints, ControlPoint{})
	copy(e.controlPoints[i+1:], e.controlPoints[i:])
	e.controlPoints[i] = cp
	return nil
}

// RemoveControlPoint removes the control point at position i.
func (e *SplineEdge) RemoveControlPoint(i int) error {
	if len(e.controlPoints) == 0 {
		return fmt.Errorf("%w: control point remove", ErrEmpty)
	}
	if i < 0 || i >= len(e.controlPoints) {
		return fmt.Errorf("%w: control point remove at %d of %d", ErrOutOfRange, i, len(e.controlPoints))
	}
	e.controlPoints = append(e.controlPoints[:i], e.controlPoints[i+1:]...)
	return nil
}

// ControlPointAt returns the control point at position i.
func (e *SplineEdge) ControlPointAt(i int) (ControlPoint, error) {
	if i < 0 || i >= len(e.controlPoints) {
		return ControlPoint{}, fmt.Errorf("%w: control point get at %d of %d", ErrOutOfRange, i, len(e.controlPoints))
	}
	return e.controlPoints[i], nil
}

// SetControlPointAt replaces the control point at position i.
func (e *SplineEdge) SetControlPointAt(i int, cp ControlPoint) error {
	if i < 0 || i >= len(e.controlPoints) {
		return fmt.Errorf("%w: control point set at %d of %d", ErrOutOfRange, i, len(e.controlPoints))
	}
	e.controlPoints[i] = cp
	return nil
}

// ControlPoints returns a deep snapshot of the control-point sequence,
// independent of the edge's lifetime.
func (e *SplineEdge) ControlPoints() []ControlPoint {
	out := make([]ControlPoint, len(e.controlPoints))
	copy(out, e.controlPoints)
	return out
}

// AppendKnot adds k at the end of the knot vector.
func (e *SplineEdge) AppendKnot(k float64) error {
	if len(e.knots) >= MaxSplineKnots {
		return fmt.Errorf("%w: %d knots", ErrCapacityExceeded, MaxSplineKnots)
	}
	e.knots = append(e.knots, k)
	return nil
}

// PrependKnot adds k at the front of the knot vector.
func (e *SplineEdge) PrependKnot(k float64) error {
	if len(e.knots) >= MaxSplineKnots {
		return fmt.Errorf("%w: %d knots", ErrCapacityExceeded, MaxSplineKnots)
	}
	e.knots = append([]float64{k}, e.knots...)
	return nil
}

// InsertKnot inserts k before position i. Inserting at NumKnots is
// equivalent to append.
func (e *SplineEdge) InsertKnot(i int, k float64) error {
	if len(e.knots) >= MaxSplineKnots {
		return fmt.Errorf("%w: %d knots", ErrCapacityExceeded, MaxSplineKnots)
	}
	if i < 0 || i > len(e.knots) {
		return fmt.Errorf("%w: knot insert at %d of %d", ErrOutOfRange, i, len(e.knots))
	}
	e.knots = append(e.knots, 0)
	copy(e.knots[i+1:], e.knots[i:])
	e.knots[i] = k
	return nil
}

// RemoveKnot removes the knot at position i.
func (e *SplineEdge) RemoveKnot(i int) error {
	if len(e.knots) == 0 {
		return fmt.Errorf("%w: knot remove", ErrEmpty)
	}
	if i < 0 || i >= len(e.knots) {
		return fmt.Errorf("%w: knot remove at %d of %d", ErrOutOfRange, i, len(e.knots))
	}
	e.knots = append(e.knots[:i], e.knots[i+1:]...)
	return nil
}

// KnotAt returns the knot at position i.
func (e *SplineEdge) KnotAt(i int) (float64, error) {
	if i < 0 || i >= len(e.knots) {
		return 0, fmt.Errorf("%w: knot get at %d of %d", ErrOutOfRange, i, len(e.knots))
	}
	return e.knots[i], nil
}

// SetKnotAt replaces the knot at position i.
func (e *SplineEdge) SetKnotAt(i int, k float64) error {
	if i < 0 || i >= len(e.knots) {
		return fmt.Errorf("%w: knot set at %d of %d", ErrOutOfRange, i, len(e.knots))
	}
	e.knots[i] = k
	return nil
}

// Knots returns a copy of the knot vector.
func (e *SplineEdge) Knots() []float64 {
	out := make([]float64, len(e.knots))
	copy(out, e.knots)
	return out
}

func (e *SplineEdge) writeTags(w *Writer) {
	w.Int(94, int64(e.Degree))
	w.Bool(73, e.Rational)
	w.Bool(74, e.Periodic)
	w.Int(95, int64(len(e.knots)))
	w.Int(96, int64(len(e.controlPoints)))
	for _, k := range e.knots {
		w.Float(40, k)
	}
	for _, cp := range e.controlPoints {
		w.Point(10, 20, cp.Point)
		if e.Rational {
			w.Float(42, cp.Weight)
		}
	}
}

func (e *SplineEdge) readTags(r *Reader) {
	for r.Next() {
		t := r.Tag()
		switch t.Code {
		case 94:
			e.Degree = int(r.Int(t))
		case 73:
			e.Rational = r.Bool(t)
		case 74:
			e.Periodic = r.Bool(t)
		case 95, 96:
			// Declared counts; the sequences themselves are
			// authoritative on read.
		case 40:
			if err := e.AppendKnot(r.Float(t)); err != nil {
				if r.err == nil {
					r.err = err
				}
				return
			}
		case 10:
			e.controlPoints = append(e.controlPoints, ControlPoint{
				Point:  Pt(r.Float(t), 0),
				Weight: 1,
			})
		case 20:
			if n := len(e.controlPoints); n > 0 {
				e.controlPoints[n-1].Point.Y = r.Float(t)
			}
		case 42:
			if n := len(e.controlPoints); n > 0 {
				e.controlPoints[n-1].Weight = r.Float(t)
			}
		default:
			r.Unread()
			return
		}
	}
}
