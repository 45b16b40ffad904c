package dxf

import (
	"fmt"

	"github.com/bert/libdxf-sub001/tag"
)

// ReadHatch rebuilds a hatch from the record stream. The caller (the
// section framing layer) has already consumed the "0 HATCH" sentinel;
// ReadHatch reads up to, but not including, the next group-0 record
// and leaves it on the scanner for the caller.
//
// Reading is tolerant: recognized group codes are accepted in any
// order, duplicate scalar fields overwrite, and unknown codes or
// subclass markers are reported through the logger and skipped. A
// stream that ends before the next sentinel fails with
// ErrUnexpectedEOF; a value that cannot be parsed in the form its
// group code implies fails with ErrMalformed. On error the partial
// hatch is discarded in full.
func ReadHatch(sc *tag.Scanner) (*Hatch, error) {
	h := NewHatch()
	r := NewReader(sc)
	terminated := false

loop:
	for r.Next() {
		t := r.Tag()
		switch t.Code {
		case 0:
			r.Unread()
			terminated = true
			break loop
		case 5:
			h.Handle = r.Handle(t)
		case 102:
			readOwnerGroup(r, t, &h.EntityAttributes)
		case 330:
			h.OwnerHandle = r.Handle(t)
		case 100:
			if sub := t.Text(); sub != "AcDbEntity" && sub != "AcDbHatch" {
				Logger().Warn("dxf: unknown subclass marker in HATCH", "subclass", sub)
			}
		case 67:
			h.PaperSpace = r.Bool(t)
		case 8:
			h.Layer = t.Text()
		case 6:
			h.Linetype = t.Text()
		case 347:
			h.Material = r.Handle(t)
		case 62:
			h.Color = int(r.Int(t))
		case 370:
			h.Lineweight = int(r.Int(t))
		case 48:
			h.LinetypeScale = r.Float(t)
		case 60:
			h.Hidden = r.Bool(t)
		case 92:
			// Proxy graphics byte count; the chunks are authoritative.
		case 310:
			h.ProxyGraphics = append(h.ProxyGraphics, r.Bytes(t))
		case 420:
			h.TrueColor = r.Int(t)
		case 430:
			h.ColorName = t.Text()
		case 440:
			h.Transparency = r.Int(t)
		case 390:
			h.PlotStyle = r.Handle(t)
		case 284:
			h.ShadowMode = int(r.Int(t))

		case 10, 20, 30:
			if h.BasePoint == nil {
				h.BasePoint = &Point3{}
			}
			switch t.Code {
			case 10:
				h.BasePoint.X = r.Float(t)
			case 20:
				h.BasePoint.Y = r.Float(t)
			case 30:
				h.BasePoint.Z = r.Float(t)
			}
		case 210:
			h.Extrusion.X = r.Float(t)
		case 220:
			h.Extrusion.Y = r.Float(t)
		case 230:
			h.Extrusion.Z = r.Float(t)

		case 2:
			h.PatternName = t.Text()
		case 70:
			h.SolidFill = r.Bool(t)
		case 71:
			h.Associative = r.Bool(t)
		case 91:
			readBoundaryPaths(r, h, int(r.Int(t)))
		case 75:
			h.Style = HatchStyle(r.Int(t))
		case 76:
			h.PatternType = PatternType(r.Int(t))
		case 52:
			h.PatternAngle = r.Float(t)
		case 41:
			h.PatternScale = r.Float(t)
		case 77:
			h.PatternDouble = r.Bool(t)
		case 78:
			readDefLines(r, h, int(r.Int(t)))
		case 47:
			h.PixelSize = r.Float(t)
		case 98:
			readSeedPoints(r, h, int(r.Int(t)))

		default:
			r.skip(t, "hatch")
		}
	}

	if err := r.Err(); err != nil {
		return nil, err
	}
	if !terminated {
		return nil, fmt.Errorf("%w: HATCH not terminated by a sentinel record", ErrUnexpectedEOF)
	}
	return h, nil
}

// readBoundaryPaths reads the declared number of loop records. Each
// loop starts with its group-92 flag set, which selects the variant.
func readBoundaryPaths(r *Reader, h *Hatch, count int) {
	for i := 0; i < count && r.Next(); i++ {
		t := r.Tag()
		if t.Code != 92 {
			if loopBoundary(t.Code) {
				// The declared count overstates the loops actually
				// present; the fields that follow the loop list belong
				// to the hatch level.
				r.Unread()
				return
			}
			r.skip(t, "boundary path list")
			i--
			continue
		}
		flags := PathType(r.Int(t))
		h.Paths = append(h.Paths, readBoundaryPath(r, flags))
	}
}

// readDefLines reads the declared number of pattern definition lines.
func readDefLines(r *Reader, h *Hatch, count int) {
	if count <= 0 {
		return
	}
	if h.Pattern == nil {
		h.Pattern = &Pattern{}
	}
	for i := 0; i < count && r.Next(); i++ {
		t := r.Tag()
		if t.Code != 53 {
			if loopBoundary(t.Code) {
				r.Unread()
				return
			}
			r.skip(t, "pattern definition lines")
			i--
			continue
		}
		var d PatternDefLine
		d.Angle = r.Float(t)
		d.readTags(r)
		h.Pattern.DefLines = append(h.Pattern.DefLines, d)
	}
}

// readSeedPoints reads the declared number of seed point pairs.
func readSeedPoints(r *Reader, h *Hatch, count int) {
	if count <= 0 {
		return
	}
	if h.Pattern == nil {
		h.Pattern = &Pattern{}
	}
	for i := 0; i < count; i++ {
		var p Point
		if !r.Next() {
			return
		}
		t := r.Tag()
		if t.Code != 10 {
			r.Unread()
			return
		}
		p.X = r.Float(t)
		if r.Next() {
			t = r.Tag()
			if t.Code == 20 {
				p.Y = r.Float(t)
			} else {
				r.Unread()
			}
		}
		h.Pattern.SeedPoints = append(h.Pattern.SeedPoints, p)
	}
}
