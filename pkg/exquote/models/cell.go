// Package models defines data structures for quotation extraction.
package models

import "strings"

// Row is one worksheet row. Rows may be ragged; an empty string is an absent cell.
type Row []string

// Grid is an ordered sequence of rows for exactly one worksheet.
// Grids are never mutated by the extraction core.
type Grid []Row

// IsAbsent reports whether a raw cell value counts as missing.
// Empty, whitespace-only and the literal "nan" are all absent.
func IsAbsent(v string) bool {
	t := strings.TrimSpace(v)
	return t == "" || strings.EqualFold(t, "nan")
}

// Cell returns the raw value at column c, or "" when the row is too short.
func (r Row) Cell(c int) string {
	if c < 0 || c >= len(r) {
		return ""
	}
	return r[c]
}

// SheetGrid pairs a sheet name with its grid.
type SheetGrid struct {
	Name string
	Grid Grid
}
