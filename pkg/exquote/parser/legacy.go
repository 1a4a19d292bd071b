package parser

import (
	"fmt"
	"os"

	"github.com/richardlehane/mscfb"
	"github.com/shakinm/xlsReader/xls"
	"github.com/ukaji3/exquote-go/pkg/exquote/models"
)

// IsLegacyWorkbook reports whether path is an OLE2 compound document holding
// a BIFF workbook stream. Files that are not compound documents report false
// with a nil error.
func IsLegacyWorkbook(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	doc, err := mscfb.New(f)
	if err != nil {
		return false, nil
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "Workbook", "Book":
			return true, nil
		}
	}
	return false, nil
}

// readXLS decodes a legacy BIFF workbook. The decoder panics on some
// malformed inputs; those panics are returned as errors.
func readXLS(path string, sel SheetSelector) (sheets []models.SheetGrid, err error) {
	defer func() {
		if r := recover(); r != nil {
			sheets = nil
			err = fmt.Errorf("xls decode: %v", r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb, err := xls.OpenReader(f)
	if err != nil {
		return nil, fmt.Errorf("xls decode: %w", err)
	}

	for i := 0; i < wb.GetNumberSheets(); i++ {
		if !sel(i) {
			continue
		}
		sheet, err := wb.GetSheet(i)
		if err != nil {
			return nil, &SheetError{Sheet: fmt.Sprintf("#%d", i+1), Err: err}
		}

		grid := make(models.Grid, sheet.GetNumberRows())
		for r := range grid {
			row, err := sheet.GetRow(r)
			if err != nil || row == nil {
				continue
			}
			cols := row.GetCols()
			cells := make(models.Row, len(cols))
			for c, cell := range cols {
				if cell == nil {
					continue
				}
				cells[c] = cell.GetString()
			}
			grid[r] = cells
		}
		sheets = append(sheets, models.SheetGrid{Name: sheet.GetName(), Grid: grid})
	}
	return sheets, nil
}
