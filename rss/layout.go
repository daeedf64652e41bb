package rss

import (
	"github.com/ericlevine/databar"
)

const separatorHeight = 1

// complement returns a separator the width of row that is dark where row is
// light, for modules from up to to.
func complement(row []bool, from, to int) []bool {
	sep := make([]bool, len(row))
	for i := from; i < to && i < len(row); i++ {
		sep[i] = !row[i]
	}
	return sep
}

// latchLight breaks up the light area of sep over the finder in row: light
// modules of row alternate dark and light, starting dark after any bar.
func latchLight(sep, row []bool, from, to int) {
	latch := true
	for i := from; i < to; i++ {
		if row[i] {
			sep[i] = false
			latch = true
			continue
		}
		sep[i] = latch
		latch = !latch
	}
}

// alternating returns a row of width modules, dark at from, from+2, ...
// below to.
func alternating(width, from, to int) []bool {
	sep := make([]bool, width)
	for i := from; i < to && i < width; i += 2 {
		sep[i] = true
	}
	return sep
}

// stackedSeparator returns the separator between the two rows of a Stacked
// symbol. Where the rows agree it takes the opposite colour, elsewhere it
// alternates.
func stackedSeparator(top, bottom []bool) []bool {
	sep := make([]bool, len(top))
	for i := 1; i < 46; i++ {
		if top[i] == bottom[i] {
			sep[i] = !top[i]
		} else {
			sep[i] = !sep[i-1]
		}
	}
	for i := 1; i < 4; i++ {
		sep[i] = false
	}
	return sep
}

// expandedRow is one data row of an Expanded Stacked symbol.
type expandedRow struct {
	modules []bool
	ltr     bool
	finders []int // module offset of each finder
}

// layoutExpandedRow draws blocks as row number r (from 1) of rows. cols is
// the number of blocks a full row holds.
func layoutExpandedRow(blocks []expandedBlock, r, rows, cols int) expandedRow {
	last := r == rows
	incomplete := last && len(blocks) < cols
	ltr := cols%2 == 1 || r%2 == 1 || incomplete && len(blocks)%2 == 1
	special := incomplete && r%2 == 0 && cols%2 == 0 && ltr

	var el []int
	startBar := r%2 == 0
	if special {
		el = append(el, 2, 1)
		startBar = false
	} else {
		el = append(el, 1, 1)
	}

	row := expandedRow{ltr: ltr}
	pos := moduleSum(el)
	add := func(b expandedBlock, reverse bool) {
		row.finders = append(row.finders, pos+b.finderStart(reverse))
		w := b.widths
		if reverse {
			w = reversed(w)
		}
		el = append(el, w...)
		pos += moduleSum(w)
	}
	if ltr {
		for _, b := range blocks {
			add(b, false)
		}
	} else {
		for i := len(blocks) - 1; i >= 0; i-- {
			add(blocks[i], true)
		}
	}
	el = append(el, 1, 1)
	row.modules = databar.NewRow(el, startBar, expandedHeight).Modules()
	return row
}

func moduleSum(w []int) int {
	n := 0
	for _, v := range w {
		n += v
	}
	return n
}

// separator returns the separator next to row: its complement away from
// the guards, kept light beside the finders, padded to width.
func (row expandedRow) separator(width int) []bool {
	sep := complement(row.modules, 4, len(row.modules)-4)
	for _, fs := range row.finders {
		if row.ltr {
			for m := fs - 1; m < fs+14; m++ {
				if !row.modules[m-1] && !row.modules[m] && sep[m-1] {
					sep[m] = false
				}
			}
		} else {
			for m := fs + 13; m >= fs-1; m-- {
				if !row.modules[m+1] && !row.modules[m] && sep[m+1] {
					sep[m] = false
				}
			}
		}
	}
	return pad(sep, width)
}

func pad(modules []bool, width int) []bool {
	if len(modules) >= width {
		return modules
	}
	return append(modules, make([]bool, width-len(modules))...)
}

// expandedStackedRows lays blocks out segmentsPerRow characters per row,
// with three separator rows between data rows.
func expandedStackedRows(blocks []expandedBlock, segmentsPerRow int) []databar.Row {
	cols := segmentsPerRow / 2
	rows := (len(blocks) + cols - 1) / cols

	data := make([]expandedRow, rows)
	width := 0
	for r := 1; r <= rows; r++ {
		data[r-1] = layoutExpandedRow(blocks[(r-1)*cols:min(r*cols, len(blocks))], r, rows, cols)
		width = max(width, len(data[r-1].modules))
	}

	var out []databar.Row
	for i, row := range data {
		if i > 0 {
			out = append(out,
				databar.RowFromModules(data[i-1].separator(width), separatorHeight),
				databar.RowFromModules(alternating(width, 5, 49*cols), separatorHeight),
				databar.RowFromModules(row.separator(width), separatorHeight),
			)
		}
		out = append(out, databar.RowFromModules(row.modules, expandedHeight))
	}
	return out
}
