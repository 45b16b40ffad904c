// Package codepage maps the $DWGCODEPAGE header names of pre-R2007
// DXF files to character encodings.
//
// Files older than R2007 store strings in the drawing's code page;
// R2007 and later are UTF-8 and bypass this package entirely. Unknown
// code page names decode as pass-through so a reader never fails on a
// file it could otherwise understand.
package codepage

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// encodings maps upper-case $DWGCODEPAGE names to their encodings.
var encodings = map[string]encoding.Encoding{
	"ANSI_874":  charmap.Windows874,
	"ANSI_932":  japanese.ShiftJIS,
	"ANSI_936":  simplifiedchinese.GBK,
	"ANSI_949":  korean.EUCKR,
	"ANSI_950":  traditionalchinese.Big5,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
}

// Lookup returns the encoding for a $DWGCODEPAGE name. The name
// comparison is case insensitive.
func Lookup(name string) (encoding.Encoding, bool) {
	e, ok := encodings[strings.ToUpper(strings.TrimSpace(name))]
	return e, ok
}

// Decode converts a code-page-encoded string to UTF-8. An unknown
// code page name returns the input unchanged with ok = false; callers
// log the fallback, they do not fail on it.
func Decode(name, s string) (string, bool) {
	e, ok := Lookup(name)
	if !ok {
		return s, false
	}
	out, _, err := transform.String(e.NewDecoder(), s)
	if err != nil {
		return s, false
	}
	return out, true
}

// Encode converts a UTF-8 string to the given code page. An unknown
// code page name, or a string not representable in it, returns the
// input unchanged with ok = false.
func Encode(name, s string) (string, bool) {
	e, ok := Lookup(name)
	if !ok {
		return s, false
	}
	out, _, err := transform.String(e.NewEncoder(), s)
	if err != nil {
		return s, false
	}
	return out, true
}
