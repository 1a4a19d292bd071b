// Package parser recovers quotation structure from worksheet grids and reads
// those grids from xlsx and legacy xls workbooks.
package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// Units is the closed vocabulary of quantity units.
var Units = []string{"ea", "set", "pcs"}

var (
	// priceLikePattern matches a candidate monetary amount: 4 to 6 digits.
	priceLikePattern = regexp.MustCompile(`^[0-9]{4,6}$`)
	// qtyUnitPattern matches a compact quantity and unit token such as "10ea".
	// Callers lowercase the cell first.
	qtyUnitPattern = regexp.MustCompile(`^([0-9]+)\s*(ea|set|pcs)$`)
	// codePattern matches an item code candidate; a hyphen is checked separately.
	codePattern = regexp.MustCompile(`^[0-9A-Za-z-]+$`)
)

// cjkIdeographs is the CJK Unified Ideographs block.
var cjkIdeographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1},
	},
}

func isUnit(s string) bool {
	l := strings.ToLower(s)
	for _, u := range Units {
		if l == u {
			return true
		}
	}
	return false
}

func isPriceLike(s string) bool {
	return priceLikePattern.MatchString(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isCode(s string) bool {
	return strings.Contains(s, "-") && codePattern.MatchString(s)
}

func hasCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(cjkIdeographs, r) {
			return true
		}
	}
	return false
}

// cellText returns the trimmed, normalized text of a raw cell.
func cellText(v string) string {
	return strings.TrimSpace(Normalize(strings.TrimSpace(v)))
}
