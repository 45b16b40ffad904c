package dxf

import (
	"strings"

	"github.com/bert/libdxf-sub001/tag"
)

// EntityAttributes are the common graphical attributes every entity
// record starts with. Optional members are gated by the revision they
// first appeared in; the writer omits them silently below threshold.
type EntityAttributes struct {
	// Handle is the entity's own hex handle (group 5).
	Handle string
	// OwnerHandle is the soft pointer to the owning block record
	// (group 330, R13 and later).
	OwnerHandle string
	// Reactors are persistent reactor handles, framed in an
	// ACAD_REACTORS owner group (R14 and later).
	Reactors []string
	// XDictionary is the hard-owner handle of the extension
	// dictionary, framed in an ACAD_XDICTIONARY owner group
	// (R14 and later).
	XDictionary string

	// PaperSpace marks the entity as living in paper space (group 67).
	PaperSpace bool
	// Layer is the layer name (group 8); an empty name is substituted
	// with "0" on write.
	Layer string
	// Linetype is the linetype name (group 6); an empty name is
	// substituted with "CONTINUOUS" on write.
	Linetype string
	// Material is the material object handle (group 347, R2008+).
	Material string
	// Color is the ACI color number (group 62); 256 is ByLayer.
	Color int
	// Lineweight is the enum value in 1/100 mm (group 370, R2000+).
	Lineweight int
	// LinetypeScale is the linetype scale factor (group 48); zero is
	// treated as the format default of 1.
	LinetypeScale float64
	// Hidden marks the entity invisible (group 60).
	Hidden bool
	// ProxyGraphics carries the entity's proxy graphics data as the
	// binary chunks of the repeated group-310 records (R2000+).
	ProxyGraphics [][]byte
	// TrueColor is the 24-bit color value (group 420, R2004+);
	// zero means unset.
	TrueColor int64
	// ColorName is the color book name (group 430, R2004+).
	ColorName string
	// Transparency is the transparency value (group 440, R2004+);
	// zero means unset.
	Transparency int64
	// PlotStyle is the plot style object handle (group 390, R2007+).
	PlotStyle string
	// ShadowMode is the shadow casting mode (group 284, R2009+);
	// zero (casts and receives) is the default and is not written.
	ShadowMode int
}

// writeCommon writes the entity-start sentinel and the common header
// in the fixed order the format prescribes. Empty layer and linetype
// names are substituted with the format defaults; the substitution is
// logged, never an error.
func writeCommon(w *Writer, name string, a *EntityAttributes) {
	w.String(0, name)
	if a.Handle != "" {
		w.Handle(5, a.Handle)
	}
	w.ownerGroup("ACAD_REACTORS", 330, a.Reactors...)
	w.ownerGroup("ACAD_XDICTIONARY", 360, a.XDictionary)
	w.HandleFrom(R13, 330, a.OwnerHandle)
	w.StringFrom(R13, 100, "AcDbEntity")
	if a.PaperSpace {
		w.Int(67, 1)
	}

	layer := a.Layer
	if layer == "" {
		layer = "0"
		Logger().Warn("dxf: empty layer name, substituting default", "default", layer)
	}
	w.String(8, layer)

	linetype := a.Linetype
	if linetype == "" {
		linetype = "CONTINUOUS"
		Logger().Warn("dxf: empty linetype name, substituting default", "default", linetype)
	}
	w.String(6, linetype)

	w.HandleFrom(R2008, 347, a.Material)
	w.Int(62, int64(a.Color))
	w.IntFrom(R2000, 370, int64(a.Lineweight))

	scale := a.LinetypeScale
	if scale == 0 {
		scale = 1
	}
	w.Float(48, scale)

	if a.Hidden {
		w.Int(60, 1)
	}
	if len(a.ProxyGraphics) > 0 && w.Supports(R2000) {
		var size int
		for _, chunk := range a.ProxyGraphics {
			size += len(chunk)
		}
		w.Int(92, int64(size))
		for _, chunk := range a.ProxyGraphics {
			w.Bytes(310, chunk)
		}
	}
	if a.TrueColor != 0 {
		w.IntFrom(R2004, 420, a.TrueColor)
	}
	if a.ColorName != "" {
		w.StringFrom(R2004, 430, a.ColorName)
	}
	if a.Transparency != 0 {
		w.IntFrom(R2004, 440, a.Transparency)
	}
	w.HandleFrom(R2007, 390, a.PlotStyle)
	if a.ShadowMode != 0 {
		w.IntFrom(R2009, 284, int64(a.ShadowMode))
	}
}

// readOwnerGroup rebuilds one 102-framed owner-handle group. The
// opening tag has already been consumed. Unknown group names are
// reported and their contents skipped.
func readOwnerGroup(r *Reader, open tag.Tag, a *EntityAttributes) {
	name := strings.TrimPrefix(open.Text(), "{")
	if name == open.Text() {
		// A stray "}" with no opening marker; nothing to do.
		if open.Text() != "}" {
			Logger().Warn("dxf: malformed owner group marker", "value", open.Text())
		}
		return
	}
	known := name == "ACAD_REACTORS" || name == "ACAD_XDICTIONARY"
	if !known {
		Logger().Warn("dxf: skipping unknown owner group", "name", name)
	}
	for r.Next() {
		t := r.Tag()
		switch t.Code {
		case 102:
			return
		case 330:
			if known {
				a.Reactors = append(a.Reactors, r.Handle(t))
			}
		case 360:
			if known {
				a.XDictionary = r.Handle(t)
			}
		default:
			r.skip(t, "owner group "+name)
		}
	}
}
