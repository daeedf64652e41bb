package rss

import (
	"fmt"

	"github.com/ericlevine/databar"
	"github.com/ericlevine/databar/gs1"
	"github.com/ericlevine/databar/rss/encoder"
)

// Writer encodes every GS1 DataBar variant.
type Writer struct{}

// NewWriter creates a new DataBar writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes value as a symbol of variant. Omnidirectional, Truncated,
// Stacked, Stacked Omnidirectional and Limited take a GTIN; the Expanded
// variants take a bracketed element string such as
// "(01)90012345678908(3103)001234".
func (w *Writer) Encode(value string, variant databar.Variant, opts *databar.EncodeOptions) (*databar.Symbol, error) {
	o := opts.WithDefaults()
	var rows []databar.Row
	if variant.IsExpanded() {
		if variant == databar.ExpandedStacked {
			if err := checkSegmentsPerRow(o.SegmentsPerRow); err != nil {
				return nil, err
			}
		}
		res, err := compact(value, o.Linkage)
		if err != nil {
			return nil, err
		}
		if variant == databar.Expanded {
			rows = []databar.Row{databar.NewRow(EncodeExpanded(res.DataCharacters()), false, expandedHeight)}
		} else {
			rows = expandedStackedRows(expandedBlocks(res.DataCharacters()), o.SegmentsPerRow)
		}
	} else {
		gtin, err := normalize(value, variant, o.ChecksumMandatory)
		if err != nil {
			return nil, err
		}
		switch variant {
		case databar.Omnidirectional:
			rows = omniRows(EncodeOmni(gtin, o.Linkage), omniHeight)
		case databar.Truncated:
			rows = omniRows(EncodeOmni(gtin, o.Linkage), truncatedHeight)
		case databar.Stacked:
			rows = stackedRows(EncodeOmni(gtin, o.Linkage))
		case databar.StackedOmnidirectional:
			rows = stackedOmniRows(EncodeOmni(gtin, o.Linkage))
		case databar.Limited:
			rows = omniRows(EncodeLimited(gtin, o.Linkage), limitedHeight)
		default:
			return nil, fmt.Errorf("cannot encode %s: %w", variant, databar.ErrWriter)
		}
	}
	text, err := symbolText(value, variant, o.ForCaption, o.ChecksumMandatory, o.Linkage)
	if err != nil {
		return nil, err
	}
	return &databar.Symbol{
		Variant:     variant,
		Rows:        rows,
		ModuleWidth: o.ModuleWidth,
		Text:        text,
	}, nil
}

// Validate reports whether value can be encoded as variant. For the Expanded
// variants the element string must parse and fit in a symbol.
func (w *Writer) Validate(value string, variant databar.Variant, checksumMandatory bool) bool {
	if variant.IsExpanded() {
		_, err := compact(value, false)
		return err == nil
	}
	_, err := normalize(value, variant, checksumMandatory)
	return err == nil
}

// Text returns the human readable caption of value when forCaption is set,
// otherwise the data as it is encoded: the linkage flag and the 13 digits
// of the GTIN body, or the element string with FNC1 separators.
func (w *Writer) Text(value string, variant databar.Variant, forCaption bool) (string, error) {
	return symbolText(value, variant, forCaption, false, false)
}

func symbolText(value string, variant databar.Variant, forCaption, checksumMandatory, linkage bool) (string, error) {
	if variant.IsExpanded() {
		elements, err := gs1.ParseElementString(value)
		if err != nil {
			return "", err
		}
		if forCaption {
			return gs1.Caption(elements), nil
		}
		return gs1.Reduce(elements), nil
	}
	gtin, err := normalize(value, variant, checksumMandatory)
	if err != nil {
		return "", err
	}
	if forCaption {
		return "(01)" + gtin, nil
	}
	flag := "0"
	if linkage {
		flag = "1"
	}
	return flag + gtin[:gs1.GTINLength-1], nil
}

// normalize returns value as a GTIN-14 fit for variant.
func normalize(value string, variant databar.Variant, checksumMandatory bool) (string, error) {
	gtin, err := gs1.NormalizeGTIN(value, checksumMandatory)
	if err != nil {
		return "", err
	}
	if variant == databar.Limited && gtin[0] > '1' {
		return "", fmt.Errorf("gtin %s: limited symbols need a leading 0 or 1: %w", gtin, databar.ErrInvalidValue)
	}
	return gtin, nil
}

func compact(value string, linkage bool) (*encoder.Result, error) {
	elements, err := gs1.ParseElementString(value)
	if err != nil {
		return nil, err
	}
	return encoder.Encode(elements, linkage)
}

func checkSegmentsPerRow(n int) error {
	if n < databar.MinSegmentsPerRow || n > databar.MaxSegmentsPerRow || n%2 != 0 {
		return fmt.Errorf("segments per row %d: want an even number from %d to %d: %w",
			n, databar.MinSegmentsPerRow, databar.MaxSegmentsPerRow, databar.ErrInvalidValue)
	}
	return nil
}
