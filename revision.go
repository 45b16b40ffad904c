package dxf

import (
	"fmt"
	"strings"
)

// Revision identifies a generation of the DXF format. Revisions are a
// comparable ordinal: the codec only ever asks whether the target is
// at least some minimum, never what a revision means.
type Revision int

// Format revisions, oldest first. Several release-year revisions share
// one on-disk version string; they are still distinct ordinals because
// individual fields first appeared in specific releases.
const (
	R10 Revision = iota
	R11
	R12
	R13
	R14
	R2000
	R2004
	R2007
	R2008
	R2009
	R2010
	R2013
	R2018
)

// revisionNames maps each revision to its release name.
var revisionNames = [...]string{
	R10:   "R10",
	R11:   "R11",
	R12:   "R12",
	R13:   "R13",
	R14:   "R14",
	R2000: "R2000",
	R2004: "R2004",
	R2007: "R2007",
	R2008: "R2008",
	R2009: "R2009",
	R2010: "R2010",
	R2013: "R2013",
	R2018: "R2018",
}

// versionStrings maps each revision to the $ACADVER header string of
// the files it produces.
var versionStrings = [...]string{
	R10:   "AC1006",
	R11:   "AC1009",
	R12:   "AC1009",
	R13:   "AC1012",
	R14:   "AC1014",
	R2000: "AC1015",
	R2004: "AC1018",
	R2007: "AC1021",
	R2008: "AC1021",
	R2009: "AC1021",
	R2010: "AC1024",
	R2013: "AC1027",
	R2018: "AC1032",
}

// String returns the release name, e.g. "R2000".
func (r Revision) String() string {
	if r < R10 || int(r) >= len(revisionNames) {
		return fmt.Sprintf("Revision(%d)", int(r))
	}
	return revisionNames[r]
}

// Version returns the $ACADVER string for files of this revision,
// e.g. "AC1015" for R2000.
func (r Revision) Version() string {
	if r < R10 || int(r) >= len(versionStrings) {
		return ""
	}
	return versionStrings[r]
}

// Valid reports whether r is a known revision.
func (r Revision) Valid() bool {
	return r >= R10 && int(r) < len(revisionNames)
}

// ParseRevision accepts either a release name ("R2000", case
// insensitive) or a version string ("AC1015"). Version strings shared
// by several releases parse to the earliest of them.
func ParseRevision(s string) (Revision, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for r, name := range revisionNames {
		if name == s {
			return Revision(r), nil
		}
	}
	for r, v := range versionStrings {
		if v == s {
			return Revision(r), nil
		}
	}
	return 0, fmt.Errorf("dxf: unknown revision %q", s)
}
