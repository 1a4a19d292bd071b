package parser

import (
	"strings"

	"github.com/ukaji3/exquote-go/pkg/exquote/models"
)

// rightScanWindow is how many cells to the right of a keyword cell are
// searched for its value. The search never wraps to the next row.
const rightScanWindow = 5

// ExtractHeader scans the grid top-to-bottom, left-to-right for "date" and
// "no" keyword cells and resolves recipient, date and document number.
// Each field is filled at most once; scanning stops after the first row at
// which all three are resolved. Unresolved fields stay nil.
func ExtractHeader(grid models.Grid) models.Header {
	var h models.Header
	for _, row := range grid {
		for i := range row {
			text := cellText(row[i])
			if models.IsAbsent(text) {
				continue
			}
			lower := strings.ToLower(text)

			if h.Date == nil && strings.Contains(lower, "date") {
				h.Date = searchRight(row, i)
				// The recipient sits to the left of the date label.
				if r := searchLeft(row, i); r != nil {
					h.Recipient = r
				}
			}
			if h.DocumentNumber == nil && strings.Contains(lower, "no") {
				h.DocumentNumber = searchRight(row, i)
			}
		}
		if h.Complete() {
			break
		}
	}
	return h
}

// searchRight returns the first value within rightScanWindow cells after
// anchor, with all spaces removed. Bare ":" separators are skipped.
func searchRight(row models.Row, anchor int) *string {
	for off := 1; off <= rightScanWindow; off++ {
		j := anchor + off
		if j >= len(row) {
			break
		}
		v := strings.ReplaceAll(cellText(row[j]), " ", "")
		if models.IsAbsent(v) || v == ":" {
			continue
		}
		return &v
	}
	return nil
}

// searchLeft returns the nearest value before anchor that is not a label
// or separator.
func searchLeft(row models.Row, anchor int) *string {
	for j := anchor - 1; j >= 0; j-- {
		v := cellText(row[j])
		if v == "" {
			continue
		}
		switch strings.ToLower(v) {
		case "nan", "date", ":":
			continue
		}
		return &v
	}
	return nil
}
