// Package bitutil provides the bit buffers used while compacting data and
// rendering symbols.
package bitutil

import "strings"

// BitArray is a growable sequence of bits stored in uint32 words. Bits are
// appended most significant first, so Extract reads back what AppendBits
// wrote.
type BitArray struct {
	words []uint32
	size  int
}

// NewBitArray returns an array of size unset bits.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{words: make([]uint32, (size+31)/32), size: size}
}

// ParseBitArray builds an array from a string of '0' and '1'. Any other
// character is skipped, which allows grouping with spaces.
func ParseBitArray(s string) *BitArray {
	ba := &BitArray{}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			ba.AppendBit(false)
		case '1':
			ba.AppendBit(true)
		}
	}
	return ba
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

func (ba *BitArray) grow(n int) {
	need := (n + 31) / 32
	if need <= len(ba.words) {
		return
	}
	words := make([]uint32, need+need/2)
	copy(words, ba.words)
	ba.words = words
}

// Get reports whether bit i is set.
func (ba *BitArray) Get(i int) bool {
	return ba.words[i/32]&(1<<uint(i&31)) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	ba.words[i/32] |= 1 << uint(i&31)
}

// AppendBit appends a single bit.
func (ba *BitArray) AppendBit(bit bool) {
	ba.grow(ba.size + 1)
	if bit {
		ba.Set(ba.size)
	}
	ba.size++
}

// AppendBits appends the low numBits bits of value, most significant first.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitarray: numBits must be between 0 and 32")
	}
	ba.grow(ba.size + numBits)
	for i := numBits - 1; i >= 0; i-- {
		if value&(1<<uint(i)) != 0 {
			ba.Set(ba.size)
		}
		ba.size++
	}
}

// AppendBitArray appends the bits of other.
func (ba *BitArray) AppendBitArray(other *BitArray) {
	ba.grow(ba.size + other.size)
	for i := 0; i < other.size; i++ {
		ba.AppendBit(other.Get(i))
	}
}

// Extract returns numBits bits starting at from as an integer, the first bit
// being the most significant. Bits past the end read as zero.
func (ba *BitArray) Extract(from, numBits int) int {
	v := 0
	for i := from; i < from+numBits; i++ {
		v <<= 1
		if i < ba.size && ba.Get(i) {
			v |= 1
		}
	}
	return v
}

// Clone returns a copy of the array.
func (ba *BitArray) Clone() *BitArray {
	w := make([]uint32, len(ba.words))
	copy(w, ba.words)
	return &BitArray{words: w, size: ba.size}
}

// String returns the bits as '0' and '1' characters.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size)
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
