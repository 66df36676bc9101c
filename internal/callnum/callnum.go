// Package callnum parses Library of Congress call numbers and defines
// the shelf ordering over them.
//
// A call number like "QA76.73.P98 L87 2013" breaks down into a class
// ("QA"), a subject ("76.73."), one or two cutters ("P98", "L87") and an
// optional publication year ("2013"). Only this fixed-format subset of
// LC classification is supported.
package callnum

import (
	"fmt"
	"regexp"
	"strings"
)

// callNumRegex matches the supported call-number grammar, anchored at
// both ends. Groups: class, subject (with trailing period), cutter,
// optional extra cutter, optional year.
var callNumRegex = regexp.MustCompile(
	`^([A-Z]+)(\s*\d{1,4}(?:\.\d{1,4})?\s*\.)\s*([A-Z]\d+)\s*([A-Z]\d+)?\s*(\d{4})?$`)

// CallNumber holds the comparison fields extracted from a raw call
// number. Year is empty when the call number carries none.
type CallNumber struct {
	Class   string
	Subject string
	Cutter  string
	Year    string
}

// HasYear reports whether the call number carries a publication year.
func (c CallNumber) HasYear() bool {
	return c.Year != ""
}

// String reassembles the parsed fields in shelf-label form.
func (c CallNumber) String() string {
	s := c.Class + c.Subject + c.Cutter
	if c.Year != "" {
		s += " " + c.Year
	}
	return s
}

// ParseError reports a call number that does not match the supported
// grammar.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid call number %q", e.Raw)
}

// Parse extracts the comparison fields from a raw call number.
//
// Whitespace around the subject and between tokens is insignificant;
// the subject keeps its trailing period. When an extra cutter is
// present it is appended to the primary cutter with a single space, so
// "QA76.73.C15 B73 2019" yields Cutter "C15 B73". A *ParseError is
// returned when the string does not match the grammar.
func Parse(raw string) (CallNumber, error) {
	m := callNumRegex.FindStringSubmatch(raw)
	if m == nil {
		return CallNumber{}, &ParseError{Raw: raw}
	}

	cn := CallNumber{
		Class:   m[1],
		Subject: strings.TrimSpace(m[2]),
		Cutter:  m[3],
		Year:    m[5],
	}
	if m[4] != "" {
		cn.Cutter = cn.Cutter + " " + m[4]
	}
	return cn, nil
}
