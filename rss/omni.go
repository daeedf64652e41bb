package rss

import (
	"fmt"
	"strconv"

	"github.com/ericlevine/databar"
)

const (
	omniElements  = 46
	omniModules   = 96
	omniHalfValue = 4537077
	omniCharValue = 1597

	omniHeight       = 33
	truncatedHeight  = 13
	stackedTopHeight = 5
	stackedBotHeight = 7
	stackedRowWidth  = 25 // elements per Stacked row
)

// omniLinkageOffset is added to the value of a symbol that carries the
// composite linkage flag.
const omniLinkageOffset = 10000000000000

// bodyValue returns the first 13 digits of a GTIN-14 as an integer, the
// check digit being implied.
func bodyValue(gtin string) int64 {
	v, err := strconv.ParseInt(gtin[:13], 10, 64)
	if err != nil {
		panic(fmt.Errorf("GTIN %q: %v: %w", gtin, err, databar.ErrInvariant))
	}
	return v
}

// EncodeOmni returns the 46 element widths of the 96 module symbol shared by
// Omnidirectional, Truncated, Stacked and Stacked Omnidirectional. gtin is a
// normalized GTIN-14. The first element is a space.
func EncodeOmni(gtin string, linkage bool) []int {
	v := bodyValue(gtin)
	if linkage {
		v += omniLinkageOffset
	}
	left, right := int(v/omniHalfValue), int(v%omniHalfValue)
	values := [4]int{
		left / omniCharValue, left % omniCharValue,
		right / omniCharValue, right % omniCharValue,
	}
	var chars [4][]int
	for i, value := range values {
		if i%2 == 0 {
			chars[i] = outsideChars.widths(value)
		} else {
			chars[i] = insideChars.widths(value)
		}
	}
	cs := omniChecksum(chars)
	leftFinder, rightFinder := omniFinderPatterns[cs/9], omniFinderPatterns[cs%9]

	el := make([]int, 0, omniElements)
	el = append(el, 1, 1)
	el = append(el, chars[0]...)
	el = append(el, leftFinder[:]...)
	el = append(el, reversed(chars[1])...)
	el = append(el, chars[3]...)
	el = append(el, reversed(rightFinder[:])...)
	el = append(el, reversed(chars[2])...)
	el = append(el, 1, 1)
	checkElements("omnidirectional", el, omniElements, omniModules)
	return el
}

// checkElements panics with databar.ErrInvariant unless el holds n elements
// adding up to modules.
func checkElements(what string, el []int, n, modules int) {
	sum := 0
	for _, w := range el {
		sum += w
	}
	if len(el) != n || sum != modules {
		panic(fmt.Errorf("%s: %d elements of %d modules, want %d of %d: %w",
			what, len(el), sum, n, modules, databar.ErrInvariant))
	}
}

// omniRows lays el out as a single row.
func omniRows(el []int, height int) []databar.Row {
	return []databar.Row{databar.NewRow(el, false, height)}
}

// stackedRows splits el after the left finder into two 50 module rows with
// a separator between them.
func stackedRows(el []int) []databar.Row {
	top := append(append([]int(nil), el[:23]...), 1, 1)
	bottom := append([]int{1, 1}, el[23:]...)
	if len(top) != stackedRowWidth || len(bottom) != stackedRowWidth {
		panic(fmt.Errorf("stacked rows have %d and %d elements, want %d: %w",
			len(top), len(bottom), stackedRowWidth, databar.ErrInvariant))
	}
	topRow := databar.NewRow(top, false, stackedTopHeight)
	bottomRow := databar.NewRow(bottom, true, stackedBotHeight)
	sep := stackedSeparator(topRow.Modules(), bottomRow.Modules())
	return []databar.Row{topRow, databar.RowFromModules(sep, separatorHeight), bottomRow}
}

// stackedOmniRows splits el like stackedRows, with full height rows and the
// three row separator of Stacked Omnidirectional.
func stackedOmniRows(el []int) []databar.Row {
	rows := stackedRows(el)
	topRow, bottomRow := rows[0], rows[2]
	topRow.Height, bottomRow.Height = omniHeight, omniHeight
	top, bottom := topRow.Modules(), bottomRow.Modules()

	topSep := complement(top, 4, 46)
	latchLight(topSep, top, 17, 33)
	bottomSep := complement(bottom, 4, 46)
	latchLight(bottomSep, bottom, 16, 32)

	return []databar.Row{
		topRow,
		databar.RowFromModules(topSep, separatorHeight),
		databar.RowFromModules(alternating(len(top), 5, 46), separatorHeight),
		databar.RowFromModules(bottomSep, separatorHeight),
		bottomRow,
	}
}
