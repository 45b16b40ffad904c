package dxf

// PatternDefLine is one family of parallel lines in a hatch fill
// pattern. Angle is in degrees; Base anchors the first line and Offset
// is the displacement to the next. A dash length of 0 denotes a dot
// and a negative length a gap, by format convention; neither is
// enforced here.
type PatternDefLine struct {
	Angle  float64
	Base   Point
	Offset Point
	Dashes []float64
}

// TotalDashLength returns the length of one complete dash cycle.
func (d *PatternDefLine) TotalDashLength() float64 {
	var total float64
	for _, l := range d.Dashes {
		if l < 0 {
			total -= l
		} else {
			total += l
		}
	}
	return total
}

// IsDashed reports whether the line family carries a dash pattern.
// A line with no dashes is drawn solid.
func (d *PatternDefLine) IsDashed() bool {
	return len(d.Dashes) > 0
}

// Clone creates a deep copy of the definition line.
func (d *PatternDefLine) Clone() *PatternDefLine {
	out := *d
	out.Dashes = make([]float64, len(d.Dashes))
	copy(out.Dashes, d.Dashes)
	return &out
}

func (d *PatternDefLine) writeTags(w *Writer) {
	w.Float(53, d.Angle)
	w.Float(43, d.Base.X)
	w.Float(44, d.Base.Y)
	w.Float(45, d.Offset.X)
	w.Float(46, d.Offset.Y)
	w.Int(79, int64(len(d.Dashes)))
	for _, l := range d.Dashes {
		w.Float(49, l)
	}
}

// readTags reads the fields following the line's group-53 angle,
// which the caller has already consumed. A second group 53 starts the
// next definition line and terminates this one.
func (d *PatternDefLine) readTags(r *Reader) {
	for r.Next() {
		t := r.Tag()
		switch t.Code {
		case 43:
			d.Base.X = r.Float(t)
		case 44:
			d.Base.Y = r.Float(t)
		case 45:
			d.Offset.X = r.Float(t)
		case 46:
			d.Offset.Y = r.Float(t)
		case 79:
			// Declared dash count; the sequence is authoritative.
		case 49:
			d.Dashes = append(d.Dashes, r.Float(t))
		default:
			r.Unread()
			return
		}
	}
}

// Pattern is the fill-pattern sub-model of a hatch: the definition
// lines that generate the fill and the seed points boundary detection
// started from. Present only on pattern-filled hatches.
type Pattern struct {
	DefLines   []PatternDefLine
	SeedPoints []Point
}

// Clone creates a deep copy of the pattern.
func (p *Pattern) Clone() *Pattern {
	if p == nil {
		return nil
	}
	out := &Pattern{
		DefLines:   make([]PatternDefLine, 0, len(p.DefLines)),
		SeedPoints: make([]Point, len(p.SeedPoints)),
	}
	for i := range p.DefLines {
		out.DefLines = append(out.DefLines, *p.DefLines[i].Clone())
	}
	copy(out.SeedPoints, p.SeedPoints)
	return out
}
