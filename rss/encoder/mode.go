package encoder

import (
	"strings"

	"github.com/ericlevine/databar/gs1"
)

// Mode is a compaction mode of the general purpose field.
type Mode int

const (
	ModeNumeric Mode = iota
	ModeAlphanumeric
	ModeISO646
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "NUMERIC"
	case ModeAlphanumeric:
		return "ALPHANUMERIC"
	case ModeISO646:
		return "ISO646"
	default:
		return "UNKNOWN"
	}
}

const (
	alphanumericPunctuation = "*,-./"
	isoPunctuation          = "!\"%&'()*+,-./:;<=>?_ "
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumeric reports whether c can be packed in numeric mode.
func isNumeric(c byte) bool {
	return isDigit(c) || c == gs1.FNC1
}

func isAlphanumeric(c byte) bool {
	return isDigit(c) || c >= 'A' && c <= 'Z' || strings.IndexByte(alphanumericPunctuation, c) >= 0
}

func isISO646(c byte) bool {
	return isAlphanumeric(c) || c >= 'a' && c <= 'z' || strings.IndexByte(isoPunctuation, c) >= 0
}

// numericValue returns the numeric mode value of c, 10 for FNC1.
func numericValue(c byte) int {
	if c == gs1.FNC1 {
		return 10
	}
	return int(c - '0')
}

// numericRun counts the numeric characters starting at pos.
func numericRun(data string, pos int) int {
	n := 0
	for pos+n < len(data) && isNumeric(data[pos+n]) {
		n++
	}
	return n
}

// alphanumericRun counts the characters starting at pos that alphanumeric
// mode can pack, FNC1 excluded.
func alphanumericRun(data string, pos int) int {
	n := 0
	for pos+n < len(data) && isAlphanumeric(data[pos+n]) {
		n++
	}
	return n
}

// numericLatchAhead reports whether the data at pos is worth a latch to
// numeric mode: four numeric characters, or at least two that end the data.
func numericLatchAhead(data string, pos int) bool {
	n := numericRun(data, pos)
	return n >= 4 || n >= 2 && pos+n == len(data)
}

// alphanumericLatchAhead reports whether the data at pos is worth a latch
// from ISO/IEC 646 to alphanumeric mode.
func alphanumericLatchAhead(data string, pos int) bool {
	n := alphanumericRun(data, pos)
	return n >= 5 || n > 0 && pos+n == len(data)
}
