package databar

import (
	"fmt"
	"sync"
)

// MultiVariantWriter dispatches to the Writer registered for the requested
// variant.
type MultiVariantWriter struct{}

// NewMultiVariantWriter creates a new multi-variant writer.
func NewMultiVariantWriter() *MultiVariantWriter {
	return &MultiVariantWriter{}
}

// writerFactory is a function that creates a Writer.
type writerFactory func() Writer

var (
	writerMu        sync.RWMutex
	writerFactories = map[Variant]writerFactory{}
)

// RegisterWriter registers a writer factory for the given variant.
func RegisterWriter(variant Variant, factory func() Writer) {
	writerMu.Lock()
	defer writerMu.Unlock()
	writerFactories[variant] = factory
}

func lookupWriter(variant Variant) (Writer, error) {
	writerMu.RLock()
	factory, ok := writerFactories[variant]
	writerMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no writer registered for variant %s: %w", variant, ErrWriter)
	}
	return factory(), nil
}

// Encode encodes value as a symbol of the given variant.
func (w *MultiVariantWriter) Encode(value string, variant Variant, opts *EncodeOptions) (*Symbol, error) {
	writer, err := lookupWriter(variant)
	if err != nil {
		return nil, err
	}
	return writer.Encode(value, variant, opts)
}

// Validate reports whether value can be encoded as variant. It is false for
// variants without a registered writer.
func (w *MultiVariantWriter) Validate(value string, variant Variant, checksumMandatory bool) bool {
	writer, err := lookupWriter(variant)
	if err != nil {
		return false
	}
	return writer.Validate(value, variant, checksumMandatory)
}

// Text returns the caption or encoded text of value.
func (w *MultiVariantWriter) Text(value string, variant Variant, forCaption bool) (string, error) {
	writer, err := lookupWriter(variant)
	if err != nil {
		return "", err
	}
	return writer.Text(value, variant, forCaption)
}

// Encode is a top-level convenience function that encodes value as a symbol
// of the given variant.
func Encode(value string, variant Variant, opts *EncodeOptions) (*Symbol, error) {
	return NewMultiVariantWriter().Encode(value, variant, opts)
}

// Validate is a top-level convenience function reporting whether value can
// be encoded as variant.
func Validate(value string, variant Variant, checksumMandatory bool) bool {
	return NewMultiVariantWriter().Validate(value, variant, checksumMandatory)
}

// Text is a top-level convenience function returning the caption or encoded
// text of value.
func Text(value string, variant Variant, forCaption bool) (string, error) {
	return NewMultiVariantWriter().Text(value, variant, forCaption)
}
