package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestExtractGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "C1", "Header3")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", "ABC-123")

	rows, err := ExtractGrid(f, sheetName, false)
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Cell(0) != "Header1" {
		t.Errorf("Expected 'Header1', got %q", rows[0].Cell(0))
	}
	if rows[0].Cell(1) != "" {
		t.Errorf("Expected empty B1, got %q", rows[0].Cell(1))
	}
	if rows[0].Cell(2) != "Header3" {
		t.Errorf("Expected 'Header3', got %q", rows[0].Cell(2))
	}
	if rows[1].Cell(0) != "100" {
		t.Errorf("Expected '100', got %q", rows[1].Cell(0))
	}
	if rows[1].Cell(9) != "" {
		t.Errorf("Expected out-of-range cell to be empty, got %q", rows[1].Cell(9))
	}
}

func TestExtractGridNumberFormats(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	row := []interface{}{1, "ABC-123", "Widget", 10, "ea", 1000, 10000}
	if err := f.SetSheetRow(sheetName, "A1", &row); err != nil {
		t.Fatalf("SetSheetRow failed: %v", err)
	}
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle(sheetName, "F1", "G1", thousands); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}
	f.SetCellValue(sheetName, "A2", time.Date(2023, 9, 2, 0, 0, 0, 0, time.UTC))

	grid, err := ExtractGrid(f, sheetName, false)
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}
	if grid[0].Cell(5) != "1000" || grid[0].Cell(6) != "10000" {
		t.Errorf("Expected unformatted prices, got %q and %q", grid[0].Cell(5), grid[0].Cell(6))
	}
	if date := grid[1].Cell(0); !strings.Contains(date, "/") {
		t.Errorf("Expected formatted date, got %q", date)
	}

	products := ParseProducts(grid, FindProductStart(grid))
	if len(products) != 1 || products[0].UnitPrice != 1000 || products[0].Amount != 10000 {
		t.Errorf("Expected one product priced 1000/10000, got %+v", products)
	}

	raw, err := ExtractGrid(f, sheetName, true)
	if err != nil {
		t.Fatalf("ExtractGrid raw failed: %v", err)
	}
	if date := raw[1].Cell(0); strings.Contains(date, "/") {
		t.Errorf("Expected raw date serial, got %q", date)
	}
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy/mm/dd", true},
		{"[$-404]e/m/d", true},
		{"hh:mm", true},
		{"#,##0", false},
		{`#,##0" pcs"`, false},
		{"[Red]0.00", false},
		{"General", false},
	}

	for _, tt := range tests {
		if result := isDateFormat(tt.code); result != tt.expected {
			t.Errorf("isDateFormat(%q) = %v, expected %v", tt.code, result, tt.expected)
		}
	}
}

func TestReadWorkbookSheetSelection(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "first")
	if _, err := f.NewSheet("Sheet2"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Sheet2", "A1", "second")

	tmpFile := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	sheets, err := ReadWorkbook(tmpFile, FirstSheet, false)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(sheets) != 1 || sheets[0].Name != "Sheet1" {
		t.Errorf("Expected only Sheet1, got %+v", sheets)
	}

	sheets, err = ReadWorkbook(tmpFile, AllSheets, false)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(sheets))
	}
	if sheets[1].Grid[0].Cell(0) != "second" {
		t.Errorf("Expected 'second', got %q", sheets[1].Grid[0].Cell(0))
	}
}

func TestReadWorkbookUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.csv")
	if err := os.WriteFile(path, []byte("a,b\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadWorkbook(path, nil, false)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestIsLegacyWorkbookRejectsXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	tmpFile := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	legacy, err := IsLegacyWorkbook(tmpFile)
	if err != nil {
		t.Fatalf("IsLegacyWorkbook failed: %v", err)
	}
	if legacy {
		t.Error("Expected xlsx not to be reported as legacy workbook")
	}
}

func TestIsWorkbookName(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"quote.xlsx", true},
		{"quote.XLS", true},
		{"~$quote.xlsx", false},
		{"quote.csv", false},
		{"quote", false},
	}

	for _, tt := range tests {
		if result := IsWorkbookName(tt.name); result != tt.expected {
			t.Errorf("IsWorkbookName(%q) = %v, expected %v", tt.name, result, tt.expected)
		}
	}
}
