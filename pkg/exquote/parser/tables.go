package parser

import (
	"strings"

	"github.com/ukaji3/exquote-go/pkg/exquote/models"
)

// FindProductStart returns the index of the first row that looks like a
// product line: it carries a unit, at least two price-like tokens and a
// hyphenated token. When no row qualifies it returns 0 so parsing starts at
// the top of the sheet.
func FindProductStart(grid models.Grid) int {
	for i, row := range grid {
		if looksLikeProductRow(row) {
			return i
		}
	}
	return 0
}

func looksLikeProductRow(row models.Row) bool {
	var prices int
	hasUnit, hasDash := false, false
	for _, v := range row {
		if models.IsAbsent(v) {
			continue
		}
		c := strings.TrimSpace(v)
		if isPriceLike(c) {
			prices++
		}
		if isUnit(c) || qtyUnitPattern.MatchString(strings.ToLower(c)) {
			hasUnit = true
		}
		if strings.Contains(c, "-") {
			hasDash = true
		}
	}
	return hasUnit && hasDash && prices >= 2
}
