package parser

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ukaji3/exquote-go/pkg/exquote/models"
)

// continuationSep joins a continuation line onto the open description.
const continuationSep = "；"

// rowTokens holds what a single row offers toward a product record.
type rowTokens struct {
	priceLike []string
	qty       int
	hasQty    bool
	unit      string
	combined  string // literal "10ea"-style token, if one matched
	code      string
}

// ParseProducts walks rows from startRow and accumulates product records.
// Column 0 of every row is an ordinal column and is ignored.
//
// A row carrying a code, unit, positive quantity and two price-like tokens
// opens a new record and flushes the previous one. A row containing CJK text
// while a record is open is appended to that record's description. Any other
// row is ignored.
func ParseProducts(grid models.Grid, startRow int) []models.Product {
	var (
		out     []models.Product
		current *models.Product
	)
	if startRow < 0 {
		startRow = 0
	}

	for i := startRow; i < len(grid); i++ {
		raw, norm := dataCells(grid[i])
		if len(raw) == 0 {
			continue
		}

		tok := scanRow(norm)
		switch {
		case tok.opensProduct():
			if current != nil {
				out = append(out, *current)
			}
			current = tok.product(raw, norm)
		case current != nil && anyCJK(raw):
			current.Description += continuationSep + strings.Join(raw, " ")
		}
	}

	if current != nil {
		out = append(out, *current)
	}
	return out
}

// dataCells returns the present cells of row after column 0, both as trimmed
// original text and in normalized form. The two slices are index-aligned.
func dataCells(row models.Row) (raw, norm []string) {
	for c := 1; c < len(row); c++ {
		v := row[c]
		if models.IsAbsent(v) {
			continue
		}
		raw = append(raw, strings.TrimSpace(v))
		norm = append(norm, cellText(v))
	}
	return raw, norm
}

func scanRow(cells []string) rowTokens {
	var t rowTokens
	for _, c := range cells {
		if isPriceLike(c) {
			t.priceLike = append(t.priceLike, c)
		}
	}

	for _, c := range cells {
		lower := strings.ToLower(c)
		if m := qtyUnitPattern.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				t.qty, t.hasQty = n, true
				t.unit = m[2]
				t.combined = c
				break
			}
		}
		if isDigits(c) {
			if !t.hasQty {
				if n, err := strconv.Atoi(c); err == nil {
					t.qty, t.hasQty = n, true
				}
			}
			continue
		}
		if t.unit == "" && isUnit(c) {
			t.unit = lower
		}
	}

	for _, c := range cells {
		if isCode(c) {
			t.code = c
			break
		}
	}
	return t
}

func (t rowTokens) opensProduct() bool {
	return t.code != "" && t.unit != "" && t.hasQty && t.qty > 0 && len(t.priceLike) >= 2
}

func (t rowTokens) product(raw, norm []string) *models.Product {
	unitPrice, _ := strconv.Atoi(t.priceLike[0])
	amount, _ := strconv.Atoi(t.priceLike[1])
	qtyText := strconv.Itoa(t.qty)

	var desc []string
	for i, c := range norm {
		switch {
		case c == t.code,
			strings.ToLower(c) == t.unit,
			t.combined != "" && c == t.combined,
			c == qtyText,
			slices.Contains(t.priceLike, c):
			continue
		}
		desc = append(desc, raw[i])
	}

	return &models.Product{
		Code:        t.code,
		Description: strings.Join(desc, " "),
		Quantity:    t.qty,
		Unit:        t.unit,
		UnitPrice:   unitPrice,
		Amount:      amount,
	}
}

func anyCJK(cells []string) bool {
	for _, c := range cells {
		if hasCJK(c) {
			return true
		}
	}
	return false
}
