package databar_test

import (
	"testing"

	"github.com/ericlevine/databar"
	_ "github.com/ericlevine/databar/rss"
)

var encodeTests = []struct {
	name    string
	value   string
	variant databar.Variant
}{
	{"Omnidirectional", "0123456789012", databar.Omnidirectional},
	{"Stacked", "0123456789012", databar.Stacked},
	{"StackedOmnidirectional", "0123456789012", databar.StackedOmnidirectional},
	{"Limited", "0123456789012", databar.Limited},
	{"Expanded", "(01)98898765432106(3202)012345(15)991231", databar.Expanded},
	{"ExpandedStacked", "(01)98898765432106(10)ABC123abc(21)12345678", databar.ExpandedStacked},
}

func BenchmarkEncode(b *testing.B) {
	for _, tc := range encodeTests {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := databar.Encode(tc.value, tc.variant, nil)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBitMatrix(b *testing.B) {
	sym, err := databar.Encode("(01)98898765432106(10)ABC123abc(21)12345678", databar.ExpandedStacked, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sym.BitMatrix(1)
	}
}
