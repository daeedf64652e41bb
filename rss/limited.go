package rss

import (
	"fmt"

	"github.com/ericlevine/databar"
)

const (
	limitedElements      = 47
	limitedModules       = 79
	limitedHalfValue     = 2013571
	limitedLinkageOffset = 2015133531096
	limitedHeight        = 10
)

// limitedCheckWidths returns the 14 widths of the Limited check character
// for checksum cs.
func limitedCheckWidths(cs int) []int {
	seq := limitedCheckSequence[cs]
	spaces := Widths(seq/21, 8, 6, 3, false)
	bars := Widths(seq%21, 8, 6, 3, false)
	out := make([]int, 0, 14)
	for i := range spaces {
		out = append(out, spaces[i], bars[i])
	}
	return append(out, 1, 1)
}

// EncodeLimited returns the 47 element widths of a Limited symbol. gtin is
// a normalized GTIN-14 starting with 0 or 1. The first element is a space.
func EncodeLimited(gtin string, linkage bool) []int {
	if gtin[0] > '1' {
		panic(fmt.Errorf("limited GTIN %q starts with %c: %w", gtin, gtin[0], databar.ErrInvariant))
	}
	v := bodyValue(gtin)
	if linkage {
		v += limitedLinkageOffset
	}
	left := limitedChars.widths(int(v / limitedHalfValue))
	right := limitedChars.widths(int(v % limitedHalfValue))

	el := make([]int, 0, limitedElements)
	el = append(el, 1, 1)
	el = append(el, left...)
	el = append(el, limitedCheckWidths(limitedChecksum(left, right))...)
	el = append(el, right...)
	el = append(el, 1, 1, 5)
	checkElements("limited", el, limitedElements, limitedModules)
	return el
}
