package tag

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner reads group-code/value records from an input stream.
//
// Usage follows bufio.Scanner:
//
//	sc := tag.NewScanner(r)
//	for sc.Next() {
//	    t := sc.Tag()
//	    ...
//	}
//	if err := sc.Err(); err != nil { ... }
//
// Unread pushes the current tag back so the next call to Next yields
// it again. Dispatch loops use this to hand a tag that belongs to an
// outer nesting level back to their caller.
type Scanner struct {
	r      *bufio.Reader
	tag    Tag
	line   int
	err    error
	unread bool
	done   bool
}

// NewScanner creates a Scanner on top of r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Next advances to the next record. It returns false at end of stream
// or on error; Err distinguishes the two.
func (s *Scanner) Next() bool {
	if s.unread {
		s.unread = false
		return true
	}
	if s.err != nil || s.done {
		return false
	}

	codeLine, err := s.readLine()
	if err == io.EOF {
		// Clean end of stream at a record boundary.
		s.done = true
		return false
	}
	if err != nil {
		s.err = err
		return false
	}
	code, convErr := strconv.Atoi(strings.TrimSpace(codeLine))
	if convErr != nil {
		s.err = fmt.Errorf("%w: line %d: group code %q is not an integer", ErrMalformed, s.line, strings.TrimSpace(codeLine))
		return false
	}

	valueLine, err := s.readLine()
	if err == io.EOF {
		s.err = fmt.Errorf("%w: group code %d at line %d has no value", ErrUnexpectedEOF, code, s.line-1)
		return false
	}
	if err != nil {
		s.err = err
		return false
	}

	s.tag = Tag{Code: code, Value: valueLine}
	return true
}

// Tag returns the record produced by the last successful Next.
func (s *Scanner) Tag() Tag {
	return s.tag
}

// Unread pushes the current tag back onto the stream.
// Only one tag of pushback is supported.
func (s *Scanner) Unread() {
	s.unread = true
}

// Err returns the first error encountered. A clean end of stream is
// not an error.
func (s *Scanner) Err() error {
	return s.err
}

// Line returns the 1-based line number of the last line read, for
// diagnostics.
func (s *Scanner) Line() int {
	return s.line
}

// readLine reads one line, stripping the trailing newline and any
// carriage return (DXF files are frequently CRLF-terminated).
func (s *Scanner) readLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err == io.EOF && line != "" {
		// Final line without a trailing newline still counts.
		err = nil
	}
	if err != nil {
		return "", err
	}
	s.line++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
