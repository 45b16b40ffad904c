package tag

import (
	"errors"
	"strings"
	"testing"
)

func TestScanner_Next(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Tag
	}{
		{
			name:  "simple pairs",
			input: "  0\nHATCH\n  8\nWALLS\n",
			want: []Tag{
				{Code: 0, Value: "HATCH"},
				{Code: 8, Value: "WALLS"},
			},
		},
		{
			name:  "crlf line endings",
			input: " 10\r\n1.500000\r\n",
			want:  []Tag{{Code: 10, Value: "1.500000"}},
		},
		{
			name:  "missing final newline",
			input: " 70\n1",
			want:  []Tag{{Code: 70, Value: "1"}},
		},
		{
			name:  "empty value line",
			input: "  2\n\n",
			want:  []Tag{{Code: 2, Value: ""}},
		},
		{
			name:  "empty stream",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewScanner(strings.NewReader(tt.input))
			var got []Tag
			for sc.Next() {
				got = append(got, sc.Tag())
			}
			if err := sc.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tags, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("tag %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScanner_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "truncated pair",
			input: " 10\n",
			want:  ErrUnexpectedEOF,
		},
		{
			name:  "non-integer group code",
			input: "ten\n1.0\n",
			want:  ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewScanner(strings.NewReader(tt.input))
			for sc.Next() {
			}
			if !errors.Is(sc.Err(), tt.want) {
				t.Errorf("Err() = %v, want %v", sc.Err(), tt.want)
			}
		})
	}
}

func TestScanner_Unread(t *testing.T) {
	sc := NewScanner(strings.NewReader("  0\nHATCH\n 70\n1\n"))

	if !sc.Next() {
		t.Fatal("Next() = false, want true")
	}
	first := sc.Tag()

	sc.Unread()
	if !sc.Next() {
		t.Fatal("Next() after Unread = false, want true")
	}
	if sc.Tag() != first {
		t.Errorf("re-read tag = %+v, want %+v", sc.Tag(), first)
	}

	if !sc.Next() {
		t.Fatal("Next() = false, want true")
	}
	if sc.Tag().Code != 70 {
		t.Errorf("next tag code = %d, want 70", sc.Tag().Code)
	}
}
