package bitutil

import "strings"

// BitMatrix is a 2D grid of bits, x the column and y the row, with the
// origin at the top left. A set bit is a dark pixel.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix returns a cleared width x height matrix.
func NewBitMatrix(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// Get reports whether (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	return bm.data[y*bm.rowSize+x/32]&(1<<uint(x&31)) != 0
}

// Set sets (x, y).
func (bm *BitMatrix) Set(x, y int) {
	bm.data[y*bm.rowSize+x/32] |= 1 << uint(x&31)
}

// SetRegion sets every bit of the rectangle at (left, top).
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if top < 0 || left < 0 {
		panic("bitmatrix: left and top must be nonnegative")
	}
	if height < 1 || width < 1 {
		panic("bitmatrix: height and width must be at least 1")
	}
	right := left + width
	bottom := top + height
	if bottom > bm.height || right > bm.width {
		panic("bitmatrix: region must fit inside the matrix")
	}
	for y := top; y < bottom; y++ {
		offset := y * bm.rowSize
		for x := left; x < right; x++ {
			bm.data[offset+x/32] |= 1 << uint(x&31)
		}
	}
}

// Width returns the number of columns.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the number of rows.
func (bm *BitMatrix) Height() int { return bm.height }

// String renders the matrix with "#" for set and "." for unset bits.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("#", ".")
}

// StringWithChars renders the matrix one line per row.
func (bm *BitMatrix) StringWithChars(set, unset string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(set)
			} else {
				sb.WriteString(unset)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
