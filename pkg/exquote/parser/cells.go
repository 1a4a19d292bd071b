package parser

import (
	"strings"

	"github.com/ukaji3/exquote-go/pkg/exquote/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads a sheet into a ragged grid of cell text.
//
// Numeric cells are returned unformatted so that "#,##0" style prices read
// as "1000". Cells with a date or time number format keep their formatted
// text. With raw set, every cell is returned unformatted, dates included.
func ExtractGrid(f *excelize.File, sheetName string, raw bool) (models.Grid, error) {
	values, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	grid := make(models.Grid, len(values))
	for i, row := range values {
		grid[i] = models.Row(row)
	}
	if raw {
		return grid, nil
	}

	formatted, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	for r, row := range formatted {
		if r >= len(grid) {
			break
		}
		for c, text := range row {
			if c >= len(grid[r]) || grid[r][c] == text {
				continue
			}
			// Only date-formatted cells keep the rendered text
			if isDateCell(f, sheetName, c, r) {
				grid[r][c] = text
			}
		}
	}
	return grid, nil
}

// isDateCell reports whether the cell at 0-based (col, row) carries a date
// or time number format.
func isDateCell(f *excelize.File, sheetName string, col, row int) bool {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return false
	}
	styleID, err := f.GetCellStyle(sheetName, cell)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormat(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

// isBuiltInDateFormat reports whether a built-in number format id renders
// a date or time.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormat reports whether a custom format code has date or time
// tokens outside quoted literals and bracketed sections.
func isDateFormat(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(b.String(), "ymdhs")
}

// readXLSX opens an xlsx workbook and returns the grids of the selected sheets.
func readXLSX(path string, sel SheetSelector, raw bool) ([]models.SheetGrid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets []models.SheetGrid
	for idx, name := range f.GetSheetList() {
		if !sel(idx) {
			continue
		}
		grid, err := ExtractGrid(f, name, raw)
		if err != nil {
			return nil, &SheetError{Sheet: name, Err: err}
		}
		sheets = append(sheets, models.SheetGrid{Name: name, Grid: grid})
	}
	return sheets, nil
}
