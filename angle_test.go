package dxf

import "testing"

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		deg  float64
		want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
		{720.5, 0.5},
	}

	for _, tt := range tests {
		if got := NormalizeAngle(tt.deg); got != tt.want {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestNormalizeAngle_DoesNotTouchStoredAngles(t *testing.T) {
	// Round-tripping an arc edge keeps out-of-range angles verbatim.
	h := solidLineHatch()
	h.Paths = []BoundaryPath{&EdgeLoop{Edges: []Edge{
		&ArcEdge{Center: Pt(0, 0), Radius: 1, StartAngle: -90, EndAngle: 450},
	}}}

	got := readBack(t, writeString(t, h, R2000))
	arc := got.Paths[0].(*EdgeLoop).Edges[0].(*ArcEdge)
	if arc.StartAngle != -90 || arc.EndAngle != 450 {
		t.Errorf("angles = %v, %v; want -90, 450 unchanged", arc.StartAngle, arc.EndAngle)
	}
}
