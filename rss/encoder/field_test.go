package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericlevine/databar/bitutil"
	"github.com/ericlevine/databar/gs1"
)

func TestRemainder(t *testing.T) {
	for _, tc := range []struct{ size, want int }{
		{0, 36}, {5, 31}, {35, 1}, {36, 0}, {37, 11}, {47, 1}, {48, 0}, {252, 0},
	} {
		assert.Equal(t, tc.want, remainder(tc.size), "size %d", tc.size)
	}
}

func TestEncodeGeneral(t *testing.T) {
	tests := []struct {
		data    string
		bits    string
		mode    Mode
		pending int
	}{
		{"12", "0010101", ModeNumeric, -1},
		{"123", "0010101", ModeNumeric, 3},
		{"1" + string(gs1.FNC1) + "2", "0011101", ModeNumeric, 2},
		{"A", "0000" + "100000", ModeAlphanumeric, -1},
		{"A1", "0000" + "100000" + "00110", ModeAlphanumeric, -1},
		{"A12", "0000" + "100000" + "000" + "0010101", ModeNumeric, -1},
		{"a", "0000" + "00100" + "1011010", ModeISO646, -1},
		{"*", "0000" + "111010", ModeAlphanumeric, -1},
		{"A" + string(gs1.FNC1) + "1", "0000" + "100000" + "01111", ModeNumeric, 1},
	}
	for _, tc := range tests {
		bits := &bitutil.BitArray{}
		st := encodeGeneral(bits, tc.data)
		assert.Equal(t, tc.bits, bits.String(), "data %q", tc.data)
		assert.Equal(t, tc.mode, st.mode, "data %q", tc.data)
		assert.Equal(t, tc.pending, st.pending, "data %q", tc.data)
	}
}

func TestFinishPendingDigit(t *testing.T) {
	// Four to six bits short of a symbol character: the digit takes 4 bits.
	bits := bitutil.ParseBitArray("000000000000000000000000000000000000000000")
	mode, padding := finish(bits, state{mode: ModeNumeric, pending: 7})
	assert.Equal(t, 48, bits.Size())
	assert.Equal(t, 2, padding)
	assert.Equal(t, ModeAlphanumeric, mode)
	assert.Equal(t, 8, bits.Extract(42, 4))

	// Otherwise it is paired with FNC1 in 7 bits.
	bits = bitutil.ParseBitArray("000000000000000000000000000000000000")
	_, padding = finish(bits, state{mode: ModeNumeric, pending: 7})
	assert.Equal(t, 48, bits.Size())
	assert.Equal(t, 5, padding)
	assert.Equal(t, 11*7+10+8, bits.Extract(36, 7))
}

func TestFinishPadding(t *testing.T) {
	bits := bitutil.ParseBitArray("0000000000000000000000000")
	mode, padding := finish(bits, state{mode: ModeAlphanumeric, pending: -1})
	assert.Equal(t, 11, padding)
	assert.Equal(t, ModeAlphanumeric, mode)
	assert.Equal(t, "00100"+"00100"+"0", bits.String()[25:])

	bits = bitutil.ParseBitArray("0000000000000000000000000")
	_, padding = finish(bits, state{mode: ModeNumeric, pending: -1})
	assert.Equal(t, 11, padding)
	assert.Equal(t, "0000"+"00100"+"00", bits.String()[25:])
}
