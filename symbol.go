package databar

import (
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/boombuler/barcode"

	"github.com/ericlevine/databar/bitutil"
)

// Run is one bar or space, Width modules wide.
type Run struct {
	Width int
	Bar   bool
}

// Row is one horizontal line of a symbol: a data row or a separator.
// Height is in modules.
type Row struct {
	Height int
	Runs   []Run
}

// NewRow builds a row from element widths. startBar gives the colour of the
// first element; colours alternate from there. Zero widths are skipped
// without breaking the alternation.
func NewRow(widths []int, startBar bool, height int) Row {
	runs := make([]Run, 0, len(widths))
	bar := startBar
	for _, w := range widths {
		if w > 0 {
			runs = append(runs, Run{Width: w, Bar: bar})
		}
		bar = !bar
	}
	return Row{Height: height, Runs: runs}
}

// RowFromModules builds a row from one boolean per module, true for dark.
func RowFromModules(modules []bool, height int) Row {
	var runs []Run
	for i, m := range modules {
		if i > 0 && runs[len(runs)-1].Bar == m {
			runs[len(runs)-1].Width++
			continue
		}
		runs = append(runs, Run{Width: 1, Bar: m})
	}
	return Row{Height: height, Runs: runs}
}

// Modules returns the row as one boolean per module.
func (r Row) Modules() []bool {
	out := make([]bool, 0, r.Len())
	for _, run := range r.Runs {
		for i := 0; i < run.Width; i++ {
			out = append(out, run.Bar)
		}
	}
	return out
}

// Widths returns the run widths in order.
func (r Row) Widths() []int {
	w := make([]int, len(r.Runs))
	for i, run := range r.Runs {
		w[i] = run.Width
	}
	return w
}

// Len returns the row length in modules.
func (r Row) Len() int {
	n := 0
	for _, run := range r.Runs {
		n += run.Width
	}
	return n
}

// Symbol is an encoded DataBar symbol. It implements barcode.Barcode, so it
// can be drawn as an image.Image or scaled with barcode.Scale.
type Symbol struct {
	Variant     Variant
	Rows        []Row
	ModuleWidth int

	// Text is the caption or the encoded data, see EncodeOptions.ForCaption.
	Text string

	once   sync.Once
	matrix *bitutil.BitMatrix
}

// Columns returns the symbol width in modules.
func (s *Symbol) Columns() int {
	cols := 0
	for _, r := range s.Rows {
		if n := r.Len(); n > cols {
			cols = n
		}
	}
	return cols
}

// Lines returns the symbol height in modules.
func (s *Symbol) Lines() int {
	h := 0
	for _, r := range s.Rows {
		h += r.Height
	}
	return h
}

func (s *Symbol) scale() int {
	if s.ModuleWidth < 1 {
		return 1
	}
	return s.ModuleWidth
}

// Width returns the symbol width in output units.
func (s *Symbol) Width() int {
	return s.Columns() * s.scale()
}

// Height returns the symbol height in output units.
func (s *Symbol) Height() int {
	return s.Lines() * s.scale()
}

// BitMatrix renders the symbol at ModuleWidth units per module with margin
// light modules on every side.
func (s *Symbol) BitMatrix(margin int) *bitutil.BitMatrix {
	if margin < 0 {
		margin = 0
	}
	scale := s.scale()
	m := bitutil.NewBitMatrix((s.Columns()+2*margin)*scale, (s.Lines()+2*margin)*scale)
	y := margin * scale
	for _, r := range s.Rows {
		x := margin * scale
		h := r.Height * scale
		for _, run := range r.Runs {
			w := run.Width * scale
			if run.Bar && h > 0 {
				m.SetRegion(x, y, w, h)
			}
			x += w
		}
		y += h
	}
	return m
}

func (s *Symbol) bits() *bitutil.BitMatrix {
	s.once.Do(func() {
		s.matrix = s.BitMatrix(0)
	})
	return s.matrix
}

// Content returns Text.
func (s *Symbol) Content() string {
	return s.Text
}

// Metadata describes the symbol to the barcode package.
func (s *Symbol) Metadata() barcode.Metadata {
	dim := byte(1)
	if len(s.Rows) > 1 {
		dim = 2
	}
	return barcode.Metadata{CodeKind: s.Variant.String(), Dimensions: dim}
}

// ColorModel returns the gray model; symbols are black on white.
func (s *Symbol) ColorModel() color.Model {
	return color.Gray16Model
}

// Bounds returns the symbol rectangle in output units.
func (s *Symbol) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width(), s.Height())
}

// At returns the colour of the pixel at (x, y).
func (s *Symbol) At(x, y int) color.Color {
	m := s.bits()
	if x < 0 || y < 0 || x >= m.Width() || y >= m.Height() {
		return color.White
	}
	if m.Get(x, y) {
		return color.Black
	}
	return color.White
}

// String draws the symbol one text line per row, "#" for dark modules.
// Rows taller than one module are drawn once.
func (s *Symbol) String() string {
	var sb strings.Builder
	cols := s.Columns()
	for _, r := range s.Rows {
		n := 0
		for _, run := range r.Runs {
			c := "."
			if run.Bar {
				c = "#"
			}
			sb.WriteString(strings.Repeat(c, run.Width))
			n += run.Width
		}
		sb.WriteString(strings.Repeat(".", cols-n))
		sb.WriteByte('\n')
	}
	return sb.String()
}

var _ barcode.Barcode = (*Symbol)(nil)
