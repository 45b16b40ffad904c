package dxf

import "math"

// NormalizeAngle folds an angle in degrees into [0, 360).
//
// Stored edge angles (arc and ellipse groups 50/51) are written and
// read back exactly as they appear in the stream; this helper is for
// display and diagnostics only.
func NormalizeAngle(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
