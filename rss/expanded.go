package rss

import (
	"fmt"

	"github.com/ericlevine/databar"
)

const (
	expandedHeight     = 34
	expandedCharValues = 4096
)

// expandedBlock is one finder with the characters around it: the left
// character forward, the finder, and the right character reversed. The last
// block of a symbol with an even number of characters has no right
// character.
type expandedBlock struct {
	widths  []int
	partial bool
}

// finderStart returns the offset of the finder within the block as drawn,
// forward or reversed.
func (b expandedBlock) finderStart(reverse bool) int {
	if !reverse {
		return 17
	}
	if b.partial {
		return 0
	}
	return 17
}

// expandedBlocks builds the blocks of a symbol holding the 12 bit data
// characters values. The check character is computed and placed first.
func expandedBlocks(values []int) []expandedBlock {
	chars := make([][]int, 0, len(values)+1)
	chars = append(chars, nil)
	for _, v := range values {
		if v < 0 || v >= expandedCharValues {
			panic(fmt.Errorf("data character %d out of range: %w", v, databar.ErrInvariant))
		}
		chars = append(chars, expandedChars.widths(v))
	}
	chars[0] = expandedChars.widths(expandedCheckValue(chars[1:]))

	pairs := (len(chars) + 1) / 2
	blocks := make([]expandedBlock, pairs)
	for p := range blocks {
		w := append([]int(nil), chars[2*p]...)
		w = append(w, expandedFinder(pairs, p)...)
		partial := 2*p+1 >= len(chars)
		if !partial {
			w = append(w, reversed(chars[2*p+1])...)
		}
		blocks[p] = expandedBlock{widths: w, partial: partial}
	}
	return blocks
}

// EncodeExpanded returns the element widths of a single row Expanded symbol
// holding the 12 bit data characters values. The first element is a space.
func EncodeExpanded(values []int) []int {
	el := []int{1, 1}
	for _, b := range expandedBlocks(values) {
		el = append(el, b.widths...)
	}
	return append(el, 1, 1)
}
