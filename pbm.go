package databar

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes the symbol as a binary Portable Bit Map (P4) with margin
// light modules around it, for use with netpbm.
func (s *Symbol) EncodePBM(w io.Writer, margin int) error {
	m := s.BitMatrix(margin)
	b := bufio.NewWriter(w)
	width, height := m.Width(), m.Height()
	if _, err := b.WriteString("P4\n" + strconv.Itoa(width) + " " + strconv.Itoa(height) + "\n"); err != nil {
		return err
	}
	row := make([]byte, (width+7)/8)
	for y := 0; y < height; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < width; x++ {
			if m.Get(x, y) {
				row[x>>3] |= 0x80 >> uint(x&7)
			}
		}
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	return b.Flush()
}
