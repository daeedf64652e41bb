package rss

// Finder patterns of the 96 module symbols, selected by the checksum. The
// right finder is drawn reversed.
var omniFinderPatterns = [9][5]int{
	{3, 8, 2, 1, 1},
	{3, 5, 5, 1, 1},
	{3, 3, 7, 1, 1},
	{3, 1, 9, 1, 1},
	{2, 7, 4, 1, 1},
	{2, 5, 6, 1, 1},
	{2, 3, 8, 1, 1},
	{1, 5, 7, 1, 1},
	{1, 3, 9, 1, 1},
}

// Finder patterns A to F of Expanded symbols.
var expandedFinderPatterns = [6][5]int{
	{1, 8, 4, 1, 1}, // A
	{3, 6, 4, 1, 1}, // B
	{3, 4, 6, 1, 1}, // C
	{3, 2, 8, 1, 1}, // D
	{2, 6, 5, 1, 1}, // E
	{2, 2, 9, 1, 1}, // F
}

// expandedFinderSequences gives the finder of each pair, indexed by the
// number of pairs minus two. Pairs at odd positions draw their finder
// reversed.
var expandedFinderSequences = [][]int{
	{0, 0},
	{0, 1, 1},
	{0, 2, 1, 3},
	{0, 4, 1, 3, 2},
	{0, 4, 1, 3, 3, 5},
	{0, 4, 1, 3, 4, 5, 5},
	{0, 0, 1, 1, 2, 2, 3, 3},
	{0, 0, 1, 1, 2, 2, 3, 4, 4},
	{0, 0, 1, 1, 2, 2, 3, 4, 5, 5},
	{0, 0, 1, 1, 2, 3, 3, 4, 4, 5, 5},
}

// expandedFinder returns the finder widths of pair p in a symbol of pairs
// pairs, in drawing order.
func expandedFinder(pairs, p int) []int {
	f := expandedFinderPatterns[expandedFinderSequences[pairs-2][p]]
	if p%2 == 1 {
		return reversed(f[:])
	}
	return append([]int(nil), f[:]...)
}
