package dxf

// HatchStyle selects which nested boundaries the fill applies to
// (group 75).
type HatchStyle int

// Hatch styles.
const (
	// StyleNormal hatches odd-parity areas ("normal" island detection).
	StyleNormal HatchStyle = 0
	// StyleOuter hatches only the outermost area.
	StyleOuter HatchStyle = 1
	// StyleIgnore ignores islands entirely.
	StyleIgnore HatchStyle = 2
)

// String returns the style name.
func (s HatchStyle) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleOuter:
		return "Outer"
	case StyleIgnore:
		return "Ignore"
	}
	return "HatchStyle(?)"
}

// PatternType records where the fill pattern definition comes from
// (group 76).
type PatternType int

// Pattern types.
const (
	PatternUserDefined PatternType = 0
	PatternPredefined  PatternType = 1
	PatternCustom      PatternType = 2
)

// String returns the pattern type name.
func (t PatternType) String() string {
	switch t {
	case PatternUserDefined:
		return "UserDefined"
	case PatternPredefined:
		return "Predefined"
	case PatternCustom:
		return "Custom"
	}
	return "PatternType(?)"
}

// Hatch is the HATCH entity: a region fill bounded by one or more
// boundary paths, filled either solid or with a line pattern.
//
// A Hatch exclusively owns its boundary paths and its optional
// pattern; nothing is shared between Hatch values. A zero Hatch is not
// directly usable — construct with NewHatch, or let ReadHatch populate
// one field by field.
type Hatch struct {
	EntityAttributes

	// BasePoint is the elevation point (groups 10/20/30); X and Y are
	// conventionally zero with the elevation in Z. Required for
	// writing.
	BasePoint *Point3
	// Extrusion is the OCS normal (groups 210/220/230), +Z by default.
	Extrusion Point3

	// PatternName is the fill pattern name (group 2), e.g. "SOLID" or
	// "ANSI31".
	PatternName string
	// SolidFill selects solid fill over pattern fill (group 70).
	SolidFill bool
	// Associative ties the fill to its boundary geometry (group 71).
	// Associative hatches carry source object handles on their paths.
	Associative bool

	// Paths are the boundary loops; a valid hatch has at least one.
	Paths []BoundaryPath

	// Style is the island-detection style (group 75).
	Style HatchStyle
	// PatternType records the pattern definition origin (group 76).
	PatternType PatternType
	// PatternAngle and PatternScale transform the fill pattern
	// (groups 52/41); pattern-filled hatches only.
	PatternAngle float64
	PatternScale float64
	// PatternDouble crosses the pattern at 90 degrees (group 77).
	PatternDouble bool

	// Pattern is the fill-pattern sub-model; nil for solid fills.
	Pattern *Pattern

	// PixelSize is the boundary approximation pixel size (group 47).
	PixelSize float64
}

// NewHatch creates an empty hatch with the format defaults: layer "0",
// linetype "CONTINUOUS", ByLayer color, +Z extrusion, unit pattern
// scale, predefined pattern type.
func NewHatch() *Hatch {
	return &Hatch{
		EntityAttributes: EntityAttributes{
			Layer:         "0",
			Linetype:      "CONTINUOUS",
			Color:         256,
			LinetypeScale: 1,
		},
		Extrusion:    defaultExtrusion,
		PatternScale: 1,
		PatternType:  PatternPredefined,
	}
}

// seedPoints returns the seed points to serialize; solid fills have
// none.
func (h *Hatch) seedPoints() []Point {
	if h.Pattern == nil {
		return nil
	}
	return h.Pattern.SeedPoints
}
