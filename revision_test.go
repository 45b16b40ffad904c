package dxf

import "testing"

func TestRevision_Ordering(t *testing.T) {
	ordered := []Revision{R10, R11, R12, R13, R14, R2000, R2004, R2007, R2008, R2009, R2010, R2013, R2018}
	for i := 1; i < len(ordered); i++ {
		if !(ordered[i-1] < ordered[i]) {
			t.Errorf("%s should order before %s", ordered[i-1], ordered[i])
		}
	}
}

func TestRevision_Version(t *testing.T) {
	tests := []struct {
		rev  Revision
		want string
	}{
		{R12, "AC1009"},
		{R14, "AC1014"},
		{R2000, "AC1015"},
		{R2004, "AC1018"},
		{R2007, "AC1021"},
		{R2008, "AC1021"}, // shares the R2007 file format
		{R2018, "AC1032"},
	}
	for _, tt := range tests {
		if got := tt.rev.Version(); got != tt.want {
			t.Errorf("%s.Version() = %q, want %q", tt.rev, got, tt.want)
		}
	}
}

func TestParseRevision(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Revision
		wantErr bool
	}{
		{"release name", "R2000", R2000, false},
		{"lower case", "r14", R14, false},
		{"padded", " R2013 ", R2013, false},
		{"version string", "AC1015", R2000, false},
		{"shared version string parses to earliest", "AC1021", R2007, false},
		{"unknown", "R1985", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRevision(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRevision(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRevision(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRevision(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
