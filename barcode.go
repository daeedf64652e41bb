// Package databar encodes values into GS1 DataBar symbols (ISO/IEC 24724).
//
// Encoders for each variant live in the rss package and register themselves
// with this package, so callers import it for its side effects:
//
//	import _ "github.com/ericlevine/databar/rss"
package databar

import (
	"fmt"
	"strings"
)

// Variant identifies a member of the GS1 DataBar family.
type Variant int

const (
	Omnidirectional Variant = iota
	Truncated
	Stacked
	StackedOmnidirectional
	Limited
	Expanded
	ExpandedStacked
)

var variantNames = [...]string{
	Omnidirectional:        "DATABAR_OMNIDIRECTIONAL",
	Truncated:              "DATABAR_TRUNCATED",
	Stacked:                "DATABAR_STACKED",
	StackedOmnidirectional: "DATABAR_STACKED_OMNIDIRECTIONAL",
	Limited:                "DATABAR_LIMITED",
	Expanded:               "DATABAR_EXPANDED",
	ExpandedStacked:        "DATABAR_EXPANDED_STACKED",
}

var variantAliases = map[string]Variant{
	"omni":                   Omnidirectional,
	"omnidirectional":        Omnidirectional,
	"rss14":                  Omnidirectional,
	"truncated":              Truncated,
	"stacked":                Stacked,
	"stackedomni":            StackedOmnidirectional,
	"stackedomnidirectional": StackedOmnidirectional,
	"limited":                Limited,
	"expanded":               Expanded,
	"expandedstacked":        ExpandedStacked,
}

// String returns the name of the variant.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "UNKNOWN"
	}
	return variantNames[v]
}

// IsExpanded reports whether v carries GS1 element strings rather than a
// single GTIN.
func (v Variant) IsExpanded() bool {
	return v == Expanded || v == ExpandedStacked
}

// IsStacked reports whether symbols of v have more than one row of bars.
func (v Variant) IsStacked() bool {
	return v == Stacked || v == StackedOmnidirectional || v == ExpandedStacked
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{Omnidirectional, Truncated, Stacked, StackedOmnidirectional, Limited, Expanded, ExpandedStacked}
}

// ParseVariant accepts a variant name as returned by String, or a short
// alias such as "omni" or "expandedstacked". Case, '-' and '_' are ignored
// for aliases.
func ParseVariant(name string) (Variant, error) {
	for i, n := range variantNames {
		if strings.EqualFold(n, name) {
			return Variant(i), nil
		}
	}
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	key = strings.TrimPrefix(key, "databar")
	if v, ok := variantAliases[key]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown variant %q: %w", name, ErrInvalidValue)
}
