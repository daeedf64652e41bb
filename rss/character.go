package rss

// charGroup describes one group of a character set: the values from gsum
// up to the next group's gsum, split into an odd and an even part.
type charGroup struct {
	gsum        int
	total       int // number of values of the part taken as the remainder
	oddModules  int
	evenModules int
	oddWidest   int
	evenWidest  int
}

// characterSet is one kind of DataBar symbol character.
type characterSet struct {
	elements    int // elements per parity
	groups      []charGroup
	evenFirst   bool // even part is the quotient
	oddNoNarrow bool // even parity uses the opposite setting
}

var (
	// Outside characters of the 96 module symbols, 16 modules.
	outsideChars = &characterSet{
		elements: 4,
		groups: []charGroup{
			{0, 1, 12, 4, 8, 1},
			{161, 10, 10, 6, 6, 3},
			{961, 34, 8, 8, 4, 5},
			{2015, 70, 6, 10, 3, 6},
			{2715, 126, 4, 12, 1, 8},
		},
	}

	// Inside characters of the 96 module symbols, 15 modules.
	insideChars = &characterSet{
		elements: 4,
		groups: []charGroup{
			{0, 4, 5, 10, 2, 7},
			{336, 20, 7, 8, 4, 5},
			{1036, 48, 9, 6, 6, 3},
			{1516, 81, 11, 4, 8, 1},
		},
		evenFirst:   true,
		oddNoNarrow: true,
	}

	// Limited characters, 26 modules over 14 elements.
	limitedChars = &characterSet{
		elements: 7,
		groups: []charGroup{
			{0, 28, 17, 9, 6, 3},
			{183064, 728, 13, 13, 5, 4},
			{820064, 6454, 9, 17, 3, 6},
			{1000776, 203, 15, 11, 5, 4},
			{1491021, 2408, 11, 15, 4, 5},
			{1979845, 1, 19, 7, 8, 1},
			{1996939, 16632, 7, 19, 1, 8},
		},
	}

	// Expanded characters, 17 modules, carrying 12 bits each.
	expandedChars = &characterSet{
		elements: 4,
		groups: []charGroup{
			{0, 4, 12, 5, 7, 2},
			{348, 20, 10, 7, 5, 4},
			{1388, 52, 8, 9, 4, 5},
			{2948, 104, 6, 11, 3, 6},
			{3988, 204, 4, 13, 1, 8},
		},
		oddNoNarrow: true,
	}
)

// group returns the group holding value.
func (cs *characterSet) group(value int) charGroup {
	g := cs.groups[0]
	for _, cand := range cs.groups[1:] {
		if value >= cand.gsum {
			g = cand
		}
	}
	return g
}

// widths returns the element widths of the character for value,
// interleaved odd, even, odd, ... in reading order.
func (cs *characterSet) widths(value int) []int {
	g := cs.group(value)
	v := value - g.gsum
	var vOdd, vEven int
	if cs.evenFirst {
		vEven, vOdd = v/g.total, v%g.total
	} else {
		vOdd, vEven = v/g.total, v%g.total
	}
	odd := Widths(vOdd, g.oddModules, cs.elements, g.oddWidest, cs.oddNoNarrow)
	even := Widths(vEven, g.evenModules, cs.elements, g.evenWidest, !cs.oddNoNarrow)
	out := make([]int, 2*cs.elements)
	for i := 0; i < cs.elements; i++ {
		out[2*i] = odd[i]
		out[2*i+1] = even[i]
	}
	return out
}

// value is the inverse of widths.
func (cs *characterSet) value(widths []int) int {
	odd := make([]int, cs.elements)
	even := make([]int, cs.elements)
	oddSum := 0
	for i := 0; i < cs.elements; i++ {
		odd[i] = widths[2*i]
		even[i] = widths[2*i+1]
		oddSum += odd[i]
	}
	for _, g := range cs.groups {
		if g.oddModules != oddSum {
			continue
		}
		vOdd := Value(odd, g.oddWidest, cs.oddNoNarrow)
		vEven := Value(even, g.evenWidest, !cs.oddNoNarrow)
		if cs.evenFirst {
			return g.gsum + vEven*g.total + vOdd
		}
		return g.gsum + vOdd*g.total + vEven
	}
	return -1
}

func reversed(w []int) []int {
	out := make([]int, len(w))
	for i, v := range w {
		out[len(w)-1-i] = v
	}
	return out
}
