// Command databar draws GS1 DataBar symbols.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/boombuler/barcode"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/ericlevine/databar"
	_ "github.com/ericlevine/databar/rss"
)

var g = struct {
	variant  databar.Variant
	scale    int    // pixels per module
	height   int    // row height multiplier
	margin   int    // quiet zone modules
	segments int    // segments per row, Expanded Stacked
	linkage  bool   // composite linkage flag
	checksum bool   // check digit mandatory
	validate bool   // validate only
	fn       string // output file
	format   string // output type
}{
	scale:  2,
	height: 1,
	margin: 1,
}

var formats = []string{"png", "pbm", "text"}

var variantNames = []string{
	"omni", "truncated", "stacked", "stackedomni",
	"limited", "expanded", "expandedstacked",
}

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "GS1 DataBar generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` value

The value is a GTIN of up to 14 digits, or for the expanded variants an
element string such as "(01)90012345678908(3103)001234".

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	variant := getopt.Enum('t', variantNames, "omni",
		"variant, one of: "+strings.Join(variantNames, ", "), "variant")
	scale := getopt.Unsigned('s', 2, &getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 64},
		"image pixels per module; ignored for type text", "scale")
	height := getopt.Unsigned('H', 1, &getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 16},
		"multiply row heights", "factor")
	margin := getopt.Unsigned('m', 1, &getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 0, Max: 64},
		"quiet zone modules", "margin")
	segments := getopt.Unsigned('n', databar.DefaultSegmentsPerRow,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: databar.MinSegmentsPerRow, Max: databar.MaxSegmentsPerRow},
		"segments per row for expandedstacked, even", "segments")
	getopt.Flag(&g.linkage, 'L', "set the composite linkage flag")
	getopt.Flag(&g.checksum, 'c', "require the GTIN check digit")
	getopt.Flag(&g.validate, 'V', "validate the value and exit")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for standard output`, "file")
	ff := getopt.Enum('T', formats, "", "output type, one of: "+
		strings.Join(formats, ", ")+"; "+
		"if no -o is given and standard output is a TTY, "+
		"default is text, otherwise png", "type")

	getopt.Parse()
	if getopt.NArgs() != 1 {
		usage()
	}
	v, err := databar.ParseVariant(*variant)
	if err != nil {
		log.Fatalln(err)
	}
	g.variant = v
	g.scale = int(*scale)
	g.height = int(*height)
	g.margin = int(*margin)
	g.segments = int(*segments)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "text"
		} else {
			*ff = "png"
		}
	}
	g.format = *ff
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()
	value := getopt.Arg(0)

	if g.validate {
		if !databar.Validate(value, g.variant, g.checksum) {
			log.Fatalln(value + ": not valid for " + g.variant.String())
		}
		return
	}

	sym, err := databar.Encode(value, g.variant, &databar.EncodeOptions{
		SegmentsPerRow:    g.segments,
		Linkage:           g.linkage,
		ChecksumMandatory: g.checksum,
	})
	if err != nil {
		log.Fatalln(err)
	}
	for i := range sym.Rows {
		sym.Rows[i].Height *= g.height
	}

	w := os.Stdout
	if g.fn != "" {
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	switch g.format {
	case "png":
		err = encodePNG(sym, w)
	case "pbm":
		err = sym.EncodePBM(w, g.margin)
	default:
		_, err = fmt.Fprint(w, sym)
	}
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// encodePNG scales sym and draws it inside its quiet zone.
func encodePNG(sym *databar.Symbol, w io.Writer) error {
	scaled, err := barcode.Scale(sym, sym.Width()*g.scale, sym.Height()*g.scale)
	if err != nil {
		return err
	}
	border := g.margin * g.scale
	b := scaled.Bounds()
	img := image.NewGray(image.Rect(0, 0, b.Dx()+2*border, b.Dy()+2*border))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(img, b.Add(image.Pt(border, border)), scaled, b.Min, draw.Src)
	return png.Encode(w, img)
}
