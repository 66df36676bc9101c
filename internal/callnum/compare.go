package callnum

import (
	"strconv"
	"strings"
)

// Compare orders two parsed call numbers for shelving. It returns a
// negative number when a shelves before b, a positive number when a
// shelves after b, and zero when the comparison fields are equal.
//
// Keys are consulted in priority order:
//
//  1. class, with interior spaces removed
//  2. subject, with interior spaces removed
//  3. cutter, exactly as parsed (including the space before an extra
//     cutter)
//  4. year, numerically when both are present
//
// The subject key is compared as a string, not a number, so "10."
// shelves before "2.". That matches how these labels have always been
// ordered here; do not switch it to a numeric comparison.
//
// A record without a year shelves before an otherwise-identical record
// with one. Two year-less records compare equal at the year key.
func Compare(a, b CallNumber) int {
	if c := strings.Compare(stripSpaces(a.Class), stripSpaces(b.Class)); c != 0 {
		return c
	}
	if c := strings.Compare(stripSpaces(a.Subject), stripSpaces(b.Subject)); c != 0 {
		return c
	}
	if c := strings.Compare(a.Cutter, b.Cutter); c != 0 {
		return c
	}
	return compareYears(a.Year, b.Year)
}

// Less reports whether a shelves strictly before b.
func Less(a, b CallNumber) bool {
	return Compare(a, b) < 0
}

func compareYears(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	}
	// The grammar guarantees four digits, so Atoi cannot fail on a
	// parsed call number.
	ya, _ := strconv.Atoi(a)
	yb, _ := strconv.Atoi(b)
	switch {
	case ya < yb:
		return -1
	case ya > yb:
		return 1
	}
	return 0
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
