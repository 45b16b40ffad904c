package dxf

import (
	"errors"
	"reflect"
	"testing"
)

func TestPolylineLoop_Close(t *testing.T) {
	tests := []struct {
		name string
		loop PolylineLoop
		want []Vertex
	}{
		{
			name: "open loop gains closing vertex",
			loop: PolylineLoop{
				Vertices: []Vertex{Vtx(0, 0), Vtx(10, 0), Vtx(10, 10)},
			},
			want: []Vertex{Vtx(0, 0), Vtx(10, 0), Vtx(10, 10), Vtx(0, 0)},
		},
		{
			name: "closed and consistent is untouched",
			loop: PolylineLoop{
				Closed:   true,
				Vertices: []Vertex{Vtx(0, 0), Vtx(10, 0), Vtx(0, 0)},
			},
			want: []Vertex{Vtx(0, 0), Vtx(10, 0), Vtx(0, 0)},
		},
		{
			name: "closed flag with open data is repaired",
			loop: PolylineLoop{
				Closed:   true,
				Vertices: []Vertex{Vtx(0, 0), Vtx(10, 0), Vtx(10, 10)},
			},
			want: []Vertex{Vtx(0, 0), Vtx(10, 0), Vtx(10, 10), Vtx(0, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.loop.Close()
			if !tt.loop.Closed {
				t.Error("Closed = false after Close")
			}
			if !reflect.DeepEqual(tt.loop.Vertices, tt.want) {
				t.Errorf("vertices = %v, want %v", tt.loop.Vertices, tt.want)
			}
		})
	}
}

func TestPolylineLoop_CloseIdempotent(t *testing.T) {
	loop := PolylineLoop{Vertices: []Vertex{Vtx(0, 0), Vtx(5, 0), Vtx(5, 5)}}
	loop.Close()
	once := append([]Vertex(nil), loop.Vertices...)

	loop.Close()
	if !reflect.DeepEqual(loop.Vertices, once) {
		t.Errorf("second Close changed vertices: %v, want %v", loop.Vertices, once)
	}
}

func TestPolylineLoop_ContainsPoint(t *testing.T) {
	square := PolylineLoop{
		Closed:   true,
		Vertices: []Vertex{Vtx(0, 0), Vtx(10, 0), Vtx(10, 10), Vtx(0, 10), Vtx(0, 0)},
	}

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"centroid is inside", Pt(5, 5), true},
		{"far point is outside", Pt(20, 20), false},
		{"near an edge but outside", Pt(-0.5, 5), false},
		{"near a corner but inside", Pt(0.5, 0.5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := square.ContainsPoint(tt.point)
			if err != nil {
				t.Fatalf("ContainsPoint() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestPolylineLoop_ContainsPointNotClosed(t *testing.T) {
	open := PolylineLoop{Vertices: []Vertex{Vtx(0, 0), Vtx(10, 0), Vtx(10, 10)}}
	_, err := open.ContainsPoint(Pt(5, 5))
	if !errors.Is(err, ErrNotClosed) {
		t.Errorf("error = %v, want ErrNotClosed", err)
	}
}

func TestPolylineLoop_ContainsPointConcave(t *testing.T) {
	// An L-shape: the notch at the top right is outside even though it
	// is inside the bounding box.
	l := PolylineLoop{
		Closed: true,
		Vertices: []Vertex{
			Vtx(0, 0), Vtx(10, 0), Vtx(10, 5), Vtx(5, 5), Vtx(5, 10), Vtx(0, 10), Vtx(0, 0),
		},
	}

	if got, _ := l.ContainsPoint(Pt(2, 8)); !got {
		t.Error("point in the leg should be inside")
	}
	if got, _ := l.ContainsPoint(Pt(8, 8)); got {
		t.Error("point in the notch should be outside")
	}
}
