// Package rss builds GS1 DataBar symbols, the family formerly known as
// Reduced Space Symbology.
package rss

// Combinations computes n-choose-r without factorials, so intermediate
// values stay small for the n used by DataBar.
func Combinations(n, r int) int {
	var maxDenom, minDenom int
	if n-r > r {
		minDenom = r
		maxDenom = n - r
	} else {
		minDenom = n - r
		maxDenom = r
	}
	val := 1
	j := 1
	for i := n; i > maxDenom; i-- {
		val *= i
		if j <= minDenom {
			val /= j
			j++
		}
	}
	for j <= minDenom {
		val /= j
		j++
	}
	return val
}

// subValue counts the width patterns that remain for the elements after
// bar once bar is given elmWidth modules out of n. allWide is true when no
// element so far, bar included, is narrow.
func subValue(n, elements, bar, elmWidth, maxWidth int, noNarrow, allWide bool) int {
	subVal := Combinations(n-elmWidth-1, elements-bar-2)
	if noNarrow && allWide && n-elmWidth-(elements-bar-1) >= elements-bar-1 {
		subVal -= Combinations(n-elmWidth-(elements-bar), elements-bar-2)
	}
	if elements-bar-1 > 1 {
		lessVal := 0
		for mxwElement := n - elmWidth - (elements - bar - 2); mxwElement > maxWidth; mxwElement-- {
			lessVal += Combinations(n-elmWidth-mxwElement-1, elements-bar-3)
		}
		subVal -= lessVal * (elements - 1 - bar)
	} else if n-elmWidth > maxWidth {
		subVal--
	}
	return subVal
}

// Widths maps value to the widths of elements elements that add up to n
// modules, none wider than maxWidth. With noNarrow set the pattern in which
// no element is one module wide is skipped. Widths is the inverse of Value.
func Widths(value, n, elements, maxWidth int, noNarrow bool) []int {
	widths := make([]int, elements)
	narrowMask := 0
	for bar := 0; bar < elements-1; bar++ {
		elmWidth := 1
		narrowMask |= 1 << uint(bar)
		var subVal int
		for {
			subVal = subValue(n, elements, bar, elmWidth, maxWidth, noNarrow, narrowMask == 0)
			value -= subVal
			if value < 0 {
				break
			}
			elmWidth++
			narrowMask &^= 1 << uint(bar)
		}
		value += subVal
		n -= elmWidth
		widths[bar] = elmWidth
	}
	widths[elements-1] = n
	return widths
}

// Value computes the value whose widths are widths.
func Value(widths []int, maxWidth int, noNarrow bool) int {
	n := 0
	for _, w := range widths {
		n += w
	}
	val := 0
	narrowMask := 0
	elements := len(widths)
	for bar := 0; bar < elements-1; bar++ {
		elmWidth := 1
		narrowMask |= 1 << uint(bar)
		for elmWidth < widths[bar] {
			val += subValue(n, elements, bar, elmWidth, maxWidth, noNarrow, narrowMask == 0)
			elmWidth++
			narrowMask &^= 1 << uint(bar)
		}
		n -= elmWidth
	}
	return val
}
