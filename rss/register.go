package rss

import "github.com/ericlevine/databar"

func init() {
	for _, v := range databar.Variants() {
		databar.RegisterWriter(v, func() databar.Writer {
			return NewWriter()
		})
	}
}
