// Package encoder compacts GS1 element strings into the binary data of a
// GS1 DataBar Expanded symbol.
package encoder

import (
	"fmt"

	"github.com/ericlevine/databar"
	"github.com/ericlevine/databar/bitutil"
	"github.com/ericlevine/databar/gs1"
)

const (
	// MaxDataCharacters is the number of 12 bit data characters an Expanded
	// symbol can hold, the check character excluded.
	MaxDataCharacters = 21

	minBits = 36
	maxBits = 12 * MaxDataCharacters

	maxNumeric      = 74
	maxAlphanumeric = 41
)

// Result is the compacted binary data of a symbol.
type Result struct {
	// Bits holds the linkage flag, method header, fixed fields, general
	// purpose field and padding, a multiple of 12 bits long.
	Bits *bitutil.BitArray

	Method Method

	// EndMode is the mode of the general purpose field after padding.
	EndMode Mode

	// Padding is the number of padding bits at the end of Bits.
	Padding int
}

// DataCharacters splits Bits into 12 bit symbol character values.
func (r *Result) DataCharacters() []int {
	values := make([]int, r.Bits.Size()/12)
	for i := range values {
		values[i] = r.Bits.Extract(12*i, 12)
	}
	return values
}

// Encode compacts elements, which must already be validated. linkage sets
// the leading flag bit announcing a composite component.
func Encode(elements []gs1.Element, linkage bool) (*Result, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("no data: %w", databar.ErrInvalidValue)
	}
	data := gs1.Reduce(elements)
	if err := checkCapacity(data); err != nil {
		return nil, err
	}

	method := selectMethod(elements)
	bits := &bitutil.BitArray{}
	bits.AppendBit(linkage)
	offset := appendFixed(bits, method, elements)

	res := &Result{Bits: bits, Method: method, EndMode: ModeNumeric}
	if offset >= 0 {
		st := encodeGeneral(bits, data[offset:])
		res.EndMode, res.Padding = finish(bits, st)
	}
	if bits.Size() > maxBits {
		return nil, fmt.Errorf("%d bits exceed symbol capacity of %d: %w", bits.Size(), maxBits, databar.ErrInvalidValue)
	}
	if method.variableLength() {
		setVariableLength(bits, 1+len(method))
	}
	return res, nil
}

func checkCapacity(data string) error {
	numeric, other := 0, 0
	for i := 0; i < len(data); i++ {
		switch c := data[i]; {
		case c == gs1.FNC1:
		case isDigit(c):
			numeric++
		default:
			other++
		}
	}
	if numeric+other > maxNumeric {
		return fmt.Errorf("%d characters exceed limit of %d: %w", numeric+other, maxNumeric, databar.ErrInvalidValue)
	}
	if other > maxAlphanumeric {
		return fmt.Errorf("%d non-numeric characters exceed limit of %d: %w", other, maxAlphanumeric, databar.ErrInvalidValue)
	}
	return nil
}

// setVariableLength fills the two header bits at pos: the first is set for
// an odd symbol character count, the second for more than 14.
func setVariableLength(bits *bitutil.BitArray, pos int) {
	chars := bits.Size()/12 + 1
	if chars%2 == 1 {
		bits.Set(pos)
	}
	if chars > 14 {
		bits.Set(pos + 1)
	}
}
