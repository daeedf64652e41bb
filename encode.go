package databar

const (
	// DefaultSegmentsPerRow is the Expanded Stacked row width used when
	// EncodeOptions.SegmentsPerRow is zero.
	DefaultSegmentsPerRow = 4

	MinSegmentsPerRow = 2
	MaxSegmentsPerRow = 22
)

// EncodeOptions configures symbol encoding. A nil *EncodeOptions means
// defaults for every field.
type EncodeOptions struct {
	// ModuleWidth is the width of the narrowest element in output units.
	// Zero means 1.
	ModuleWidth int

	// SegmentsPerRow is the number of data segments per row for Expanded
	// Stacked, an even number from 2 to 22. Zero means DefaultSegmentsPerRow.
	SegmentsPerRow int

	// Linkage sets the composite linkage flag, announcing a 2D component
	// printed above the symbol.
	Linkage bool

	// ChecksumMandatory requires GTIN values to carry their check digit.
	ChecksumMandatory bool

	// ForCaption selects the human readable text for Symbol.Text instead of
	// the data actually encoded.
	ForCaption bool
}

// WithDefaults returns a copy of opts with zero fields replaced by their
// defaults. It accepts a nil receiver.
func (opts *EncodeOptions) WithDefaults() EncodeOptions {
	var o EncodeOptions
	if opts != nil {
		o = *opts
	}
	if o.ModuleWidth <= 0 {
		o.ModuleWidth = 1
	}
	if o.SegmentsPerRow == 0 {
		o.SegmentsPerRow = DefaultSegmentsPerRow
	}
	return o
}

// Writer encodes values into symbols of the variants it is registered for.
type Writer interface {
	// Encode encodes value into a symbol.
	Encode(value string, variant Variant, opts *EncodeOptions) (*Symbol, error)

	// Validate reports whether value can be encoded as variant.
	Validate(value string, variant Variant, checksumMandatory bool) bool

	// Text returns the caption of value when forCaption is true, otherwise
	// the data as it is encoded.
	Text(value string, variant Variant, forCaption bool) (string, error)
}
