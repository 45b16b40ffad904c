package dxf

import (
	"math"

	"golang.org/x/image/math/f64"
)

// arbitraryAxisBound is the 1/64 threshold of the arbitrary axis
// algorithm: below it the extrusion is considered close enough to the
// world Z axis that the world Y axis seeds the OCS X axis.
const arbitraryAxisBound = 1.0 / 64.0

// OCS is the object coordinate system induced by an extrusion
// direction. Entities store their planar geometry in OCS coordinates;
// the basis derived here (the "arbitrary axis algorithm") maps them
// back to world coordinates.
type OCS struct {
	ax, ay, az f64.Vec3
}

// NewOCS derives the coordinate system for an extrusion direction.
// A zero extrusion is treated as the +Z default, which yields the
// identity system.
func NewOCS(extrusion Point3) OCS {
	if extrusion == (Point3{}) {
		extrusion = defaultExtrusion
	}
	az := normalize3(f64.Vec3{extrusion.X, extrusion.Y, extrusion.Z})

	var seed f64.Vec3
	if math.Abs(az[0]) < arbitraryAxisBound && math.Abs(az[1]) < arbitraryAxisBound {
		seed = f64.Vec3{0, 1, 0}
	} else {
		seed = f64.Vec3{0, 0, 1}
	}
	ax := normalize3(cross3(seed, az))
	ay := cross3(az, ax)
	return OCS{ax: ax, ay: ay, az: az}
}

// ToWorld maps an OCS point at the given elevation to world
// coordinates.
func (o OCS) ToWorld(p Point, elevation float64) Point3 {
	return Point3{
		X: o.ax[0]*p.X + o.ay[0]*p.Y + o.az[0]*elevation,
		Y: o.ax[1]*p.X + o.ay[1]*p.Y + o.az[1]*elevation,
		Z: o.ax[2]*p.X + o.ay[2]*p.Y + o.az[2]*elevation,
	}
}

// Matrix returns the OCS-to-world transform as a row-major 3x4 affine
// matrix with a zero translation column.
func (o OCS) Matrix() f64.Aff4 {
	return f64.Aff4{
		o.ax[0], o.ay[0], o.az[0], 0,
		o.ax[1], o.ay[1], o.az[1], 0,
		o.ax[2], o.ay[2], o.az[2], 0,
	}
}

func cross3(a, b f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize3(v f64.Vec3) f64.Vec3 {
	l := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return f64.Vec3{0, 0, 1}
	}
	return f64.Vec3{v[0] / l, v[1] / l, v[2] / l}
}
