package rss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/databar"
)

func heights(rows []databar.Row) []int {
	h := make([]int, len(rows))
	for i, r := range rows {
		h[i] = r.Height
	}
	return h
}

func TestExpandedStackedTwoSegments(t *testing.T) {
	// One pair per row: every row reads left to right, odd rows start with
	// a space and even rows with a bar.
	rows := expandedStackedRows(expandedBlocks(exampleCharacters), 2)
	require.Len(t, rows, 3+2*3)
	assert.Equal(t, []int{34, 1, 1, 1, 34, 1, 1, 1, 34}, heights(rows))

	data := []databar.Row{rows[0], rows[4], rows[8]}
	for i, r := range data {
		assert.Equal(t, i%2 == 1, r.Runs[0].Bar, "row %d", i+1)
		assert.Equal(t, 1, r.Runs[0].Width, "row %d", i+1)
		assert.Equal(t, 53, r.Len(), "row %d", i+1)
	}
	blocks := expandedBlocks(exampleCharacters)
	for i, r := range data {
		w := r.Widths()
		assert.Equal(t, blocks[i].widths, w[2:len(w)-2], "row %d", i+1)
	}
}

func TestExpandedStackedParityCorrection(t *testing.T) {
	// Two pairs per row leave the third pair alone on an even row. It is
	// drawn left to right after a two module space.
	rows := expandedStackedRows(expandedBlocks(exampleCharacters), 4)
	require.Len(t, rows, 5)
	assert.Equal(t, []int{34, 1, 1, 1, 34}, heights(rows))

	first, last := rows[0], rows[4]
	assert.False(t, first.Runs[0].Bar)
	assert.Equal(t, 102, first.Len())

	assert.Equal(t, databar.Run{Width: 2, Bar: false}, last.Runs[0])
	assert.Equal(t, databar.Run{Width: 1, Bar: true}, last.Runs[1])
	assert.Equal(t, 2+1+49+2, last.Len())
	blocks := expandedBlocks(exampleCharacters)
	w := last.Widths()
	assert.Equal(t, blocks[2].widths, w[2:len(w)-2])

	for _, sep := range rows[1:4] {
		assert.Equal(t, 102, sep.Len())
	}
}

func TestExpandedStackedReversedRow(t *testing.T) {
	// Eight characters fill two rows of two pairs. The second row reads
	// right to left and starts with a bar.
	values := []int{512, 629, 1135, 3024, 1234, 7, 100, 2000}
	blocks := expandedBlocks(values)
	require.Len(t, blocks, 5)
	rows := expandedStackedRows(blocks[:4], 4)
	require.Len(t, rows, 5)

	second := rows[4]
	assert.True(t, second.Runs[0].Bar)
	w := second.Widths()
	var want []int
	want = append(want, reversed(blocks[3].widths)...)
	want = append(want, reversed(blocks[2].widths)...)
	assert.Equal(t, want, w[2:len(w)-2])
}

func TestExpandedSeparatorFinderArea(t *testing.T) {
	rows := expandedStackedRows(expandedBlocks(exampleCharacters), 2)
	top := rows[0].Modules()
	sep := rows[1].Modules()
	middle := rows[2].Modules()

	for i := 0; i < 4; i++ {
		assert.False(t, sep[i], "module %d", i)
	}
	for i, m := range middle {
		assert.Equal(t, i >= 5 && i < 49 && i%2 == 1, m, "module %d", i)
	}
	// Away from the finder the separator is the complement of the row.
	for i := 4; i < 18; i++ {
		assert.Equal(t, !top[i], sep[i], "module %d", i)
	}
	// Over the finder no two separator modules above light modules are
	// both dark.
	for m := 19; m < 33; m++ {
		if !top[m-1] && !top[m] {
			assert.False(t, sep[m-1] && sep[m], "module %d", m)
		}
	}
}

func TestCheckSegmentsPerRow(t *testing.T) {
	for _, n := range []int{2, 4, 10, 22} {
		assert.NoError(t, checkSegmentsPerRow(n))
	}
	for _, n := range []int{-2, 0, 1, 3, 23, 24} {
		assert.ErrorIs(t, checkSegmentsPerRow(n), databar.ErrInvalidValue)
	}
}
