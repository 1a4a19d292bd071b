package parser

import (
	"testing"
)

// testdata/quote.xls is a BIFF8 workbook with two sheets: "Quote" holds a
// two-product quotation, "Notes" holds 300 rows of text in column A.
const legacyFixture = "testdata/quote.xls"

func TestIsLegacyWorkbook(t *testing.T) {
	legacy, err := IsLegacyWorkbook(legacyFixture)
	if err != nil {
		t.Fatalf("IsLegacyWorkbook failed: %v", err)
	}
	if !legacy {
		t.Error("Expected fixture to be reported as legacy workbook")
	}
}

func TestReadWorkbookLegacy(t *testing.T) {
	sheets, err := ReadWorkbook(legacyFixture, FirstSheet, false)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(sheets) != 1 || sheets[0].Name != "Quote" {
		t.Fatalf("Expected only sheet Quote, got %d sheets", len(sheets))
	}

	grid := sheets[0].Grid
	if len(grid) != 6 {
		t.Fatalf("Expected 6 rows, got %d", len(grid))
	}
	tests := []struct {
		row, col int
		expected string
	}{
		{0, 0, "ACME Trading"},
		{0, 3, "2023/09/02"},
		{1, 1, "Q-0902"},
		{3, 1, "ABC-123"},
		{3, 6, "10000"},
		{4, 0, ""},
		{4, 2, "附註：顏色紅色"},
		{5, 3, "2set"},
	}
	for _, tt := range tests {
		if got := grid[tt.row].Cell(tt.col); got != tt.expected {
			t.Errorf("cell(%d,%d) = %q, expected %q", tt.row, tt.col, got, tt.expected)
		}
	}

	h := ExtractHeader(grid)
	if !h.Complete() || *h.Recipient != "ACME Trading" || *h.DocumentNumber != "Q-0902" {
		t.Errorf("Unexpected header: %+v", h)
	}
	products := ParseProducts(grid, FindProductStart(grid))
	if len(products) != 2 {
		t.Fatalf("Expected 2 products, got %+v", products)
	}
	if products[0].Description != "Widget；附註：顏色紅色" {
		t.Errorf("Unexpected description %q", products[0].Description)
	}
	if products[1].Code != "XYZ-9" || products[1].Unit != "set" || products[1].Quantity != 2 {
		t.Errorf("Unexpected second product: %+v", products[1])
	}
}

func TestReadWorkbookLegacyAllSheets(t *testing.T) {
	sheets, err := ReadWorkbook(legacyFixture, AllSheets, false)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(sheets))
	}
	notes := sheets[1]
	if notes.Name != "Notes" {
		t.Errorf("Expected sheet Notes, got %q", notes.Name)
	}
	if len(notes.Grid) != 300 {
		t.Fatalf("Expected 300 rows, got %d", len(notes.Grid))
	}
	if got := notes.Grid[299].Cell(0); got != "line 9" {
		t.Errorf("Expected last row %q, got %q", "line 9", got)
	}
}
