package parser

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// fullwidthASCII covers the ideographic space and the full-width forms of
// printable ASCII (U+FF01..U+FF5E). Other wide characters are left alone.
var fullwidthASCII = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3000, Hi: 0x3000, Stride: 1},
		{Lo: 0xff01, Hi: 0xff5e, Stride: 1},
	},
}

// Normalize converts full-width punctuation, digits, Latin letters and the
// full-width space to their half-width equivalents. All other characters pass
// through unchanged, so Normalize is idempotent.
func Normalize(s string) string {
	if !hasFullwidth(s) {
		return s
	}
	// runes.If keeps per-call state, so the transformer is not shared.
	t := runes.If(runes.In(fullwidthASCII), width.Narrow, nil)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func hasFullwidth(s string) bool {
	for _, r := range s {
		if unicode.Is(fullwidthASCII, r) {
			return true
		}
	}
	return false
}
