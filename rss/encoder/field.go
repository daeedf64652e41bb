package encoder

import (
	"strings"

	"github.com/ericlevine/databar/bitutil"
	"github.com/ericlevine/databar/gs1"
)

// state is the position of the general purpose field packer. Each step
// consumes input or changes mode and returns the new state.
type state struct {
	mode    Mode
	pos     int
	pending int // final digit left over by numeric mode, or -1
}

// encodeGeneral packs data, FNC1 included, into bits starting in numeric
// mode. A single trailing digit is left in pending for finish.
func encodeGeneral(bits *bitutil.BitArray, data string) state {
	st := state{mode: ModeNumeric, pending: -1}
	for st.pos < len(data) {
		switch st.mode {
		case ModeNumeric:
			st = st.numeric(bits, data)
		case ModeAlphanumeric:
			st = st.alphanumeric(bits, data)
		default:
			st = st.iso646(bits, data)
		}
	}
	return st
}

func (st state) numeric(bits *bitutil.BitArray, data string) state {
	c := data[st.pos]
	if st.pos+1 < len(data) {
		d := data[st.pos+1]
		if isNumeric(c) && isNumeric(d) && !(c == gs1.FNC1 && d == gs1.FNC1) {
			bits.AppendBits(uint32(11*numericValue(c)+numericValue(d)+8), 7)
			st.pos += 2
			return st
		}
	} else if isDigit(c) {
		st.pending = int(c - '0')
		st.pos++
		return st
	}
	bits.AppendBits(0, 4) // latch to alphanumeric
	st.mode = ModeAlphanumeric
	return st
}

func (st state) alphanumeric(bits *bitutil.BitArray, data string) state {
	c := data[st.pos]
	switch {
	case c == gs1.FNC1:
		// FNC1 also latches back to numeric.
		bits.AppendBits(15, 5)
		st.pos++
		st.mode = ModeNumeric
	case numericLatchAhead(data, st.pos):
		bits.AppendBits(0, 3)
		st.mode = ModeNumeric
	case !isAlphanumeric(c):
		bits.AppendBits(4, 5)
		st.mode = ModeISO646
	default:
		appendAlphanumeric(bits, c)
		st.pos++
	}
	return st
}

func (st state) iso646(bits *bitutil.BitArray, data string) state {
	c := data[st.pos]
	switch {
	case c == gs1.FNC1:
		bits.AppendBits(15, 5)
		st.pos++
		st.mode = ModeNumeric
	case numericLatchAhead(data, st.pos):
		bits.AppendBits(0, 3)
		st.mode = ModeNumeric
	case alphanumericLatchAhead(data, st.pos):
		bits.AppendBits(4, 5)
		st.mode = ModeAlphanumeric
	default:
		appendISO646(bits, c)
		st.pos++
	}
	return st
}

func appendAlphanumeric(bits *bitutil.BitArray, c byte) {
	switch {
	case isDigit(c):
		bits.AppendBits(uint32(c-'0'+5), 5)
	case c >= 'A' && c <= 'Z':
		bits.AppendBits(uint32(c-33), 6)
	default:
		bits.AppendBits(uint32(58+strings.IndexByte(alphanumericPunctuation, c)), 6)
	}
}

func appendISO646(bits *bitutil.BitArray, c byte) {
	switch {
	case isDigit(c):
		bits.AppendBits(uint32(c-'0'+5), 5)
	case c >= 'A' && c <= 'Z':
		bits.AppendBits(uint32(c-1), 7)
	case c >= 'a' && c <= 'z':
		bits.AppendBits(uint32(c-7), 7)
	default:
		bits.AppendBits(uint32(232+strings.IndexByte(isoPunctuation, c)), 8)
	}
}

// remainder returns the bits needed to reach the next whole symbol
// character, and at least the minimum symbol size.
func remainder(size int) int {
	if size < minBits {
		return minBits - size
	}
	if r := size % 12; r != 0 {
		return 12 - r
	}
	return 0
}

// finish writes the pending digit and the padding. It returns the mode the
// symbol ends in and the number of padding bits.
func finish(bits *bitutil.BitArray, st state) (Mode, int) {
	if st.pending >= 0 {
		if r := remainder(bits.Size()); r >= 4 && r <= 6 {
			bits.AppendBits(uint32(st.pending+1), 4)
		} else {
			bits.AppendBits(uint32(11*st.pending+10+8), 7)
		}
	}
	padding := remainder(bits.Size())
	mode := st.mode
	left := padding
	if left > 0 && mode == ModeNumeric {
		n := min(4, left)
		bits.AppendBits(0, n)
		left -= n
		mode = ModeAlphanumeric
	}
	for left > 0 {
		n := min(5, left)
		bits.AppendBits(4>>uint(5-n), n) // "00100" cut to n bits
		left -= n
	}
	return mode, padding
}
