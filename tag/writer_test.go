package tag

import (
	"bytes"
	"testing"
)

func TestWriter_Formats(t *testing.T) {
	tests := []struct {
		name  string
		write func(*Writer)
		want  string
	}{
		{
			name:  "group code right-aligned in three columns",
			write: func(w *Writer) { w.WriteString(0, "HATCH") },
			want:  "  0\nHATCH\n",
		},
		{
			name:  "two digit code",
			write: func(w *Writer) { w.WriteInt(70, 1) },
			want:  " 70\n1\n",
		},
		{
			name:  "three digit code keeps width",
			write: func(w *Writer) { w.WriteFloat(210, 0) },
			want:  "210\n0.000000\n",
		},
		{
			name:  "four digit code overflows width",
			write: func(w *Writer) { w.WriteString(1001, "APP") },
			want:  "1001\nAPP\n",
		},
		{
			name:  "float is fixed precision, never scientific",
			write: func(w *Writer) { w.WriteFloat(40, 0.0000015) },
			want:  " 40\n0.000002\n",
		},
		{
			name:  "negative float",
			write: func(w *Writer) { w.WriteFloat(42, -0.5) },
			want:  " 42\n-0.500000\n",
		},
		{
			name:  "bool writes 0 or 1",
			write: func(w *Writer) { w.WriteBool(290, true); w.WriteBool(290, false) },
			want:  "290\n1\n290\n0\n",
		},
		{
			name:  "handle upper-cased",
			write: func(w *Writer) { w.WriteHandle(330, "2af") },
			want:  "330\n2AF\n",
		},
		{
			name:  "binary chunk as upper hex",
			write: func(w *Writer) { w.WriteBytes(310, []byte{0xde, 0xad}) },
			want:  "310\nDEAD\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			tt.write(w)
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush() error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriter_RoundTripThroughScanner(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteString(0, "HATCH")
	w.WriteFloat(10, 1.25)
	w.WriteInt(91, 2)
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	sc := NewScanner(&buf)
	var got []Tag
	for sc.Next() {
		got = append(got, sc.Tag())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	want := []Tag{
		{Code: 0, Value: "HATCH"},
		{Code: 10, Value: "1.250000"},
		{Code: 91, Value: "2"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tags, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("tag %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
