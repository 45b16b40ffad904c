// Package tag implements the group-code record codec of the DXF
// interchange format.
//
// A DXF stream is a flat sequence of records, each record being two
// lines: an integer group code followed by a value. The group code
// alone determines the lexical form of the value (integer, float,
// string, hex handle, binary chunk); the payload is never inspected to
// guess its type.
//
// The package knows nothing about entities. Higher layers sequence
// Writer and Scanner calls according to an entity's schema.
package tag

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned by the codec.
var (
	// ErrMalformed is returned when a value token cannot be parsed in
	// the form implied by its group code.
	ErrMalformed = errors.New("tag: malformed record")

	// ErrUnexpectedEOF is returned when the stream ends in the middle
	// of a record, or before an expected terminating record.
	ErrUnexpectedEOF = errors.New("tag: unexpected end of stream")
)

// Tag is a single group-code/value record.
//
// The value is kept in its raw lexical form; the typed accessors parse
// it on demand according to the tag's group code.
type Tag struct {
	Code  int
	Value string
}

// IsSentinel reports whether the tag starts a new top-level record
// (group code 0: entity start, ENDSEC, EOF marker).
func (t Tag) IsSentinel() bool {
	return t.Code == 0
}

// Int parses the value as a decimal integer.
// Works for all integer kinds (int16, int32, int64, bool codes).
func (t Tag) Int() (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(t.Value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: group %d value %q is not an integer", ErrMalformed, t.Code, t.Value)
	}
	return v, nil
}

// Float parses the value as a floating-point number.
func (t Tag) Float() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: group %d value %q is not a float", ErrMalformed, t.Code, t.Value)
	}
	return v, nil
}

// Bool parses the value as a boolean flag (any non-zero integer is true).
func (t Tag) Bool() (bool, error) {
	v, err := t.Int()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// Text returns the value as a string, unmodified.
func (t Tag) Text() string {
	return t.Value
}

// Handle validates the value as a hexadecimal object handle and
// returns it in canonical upper-case form.
func (t Tag) Handle() (string, error) {
	s := strings.TrimSpace(t.Value)
	if s == "" {
		return "", fmt.Errorf("%w: group %d has an empty handle", ErrMalformed, t.Code)
	}
	if _, err := strconv.ParseUint(s, 16, 64); err != nil {
		return "", fmt.Errorf("%w: group %d value %q is not a hex handle", ErrMalformed, t.Code, t.Value)
	}
	return strings.ToUpper(s), nil
}

// Bytes decodes the value as a hex-encoded binary chunk (group 310
// proxy graphics and friends).
func (t Tag) Bytes() ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(t.Value))
	if err != nil {
		return nil, fmt.Errorf("%w: group %d value is not hex data", ErrMalformed, t.Code)
	}
	return b, nil
}
