package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/exquote-go/pkg/exquote/models"
)

// Sheet names of the export workbook.
const (
	QuotationsSheet = "Quotations"
	ErrorsSheet     = "Errors"
)

var quotationColumns = []string{
	"File", "Sheet", "Recipient", "Date", "Document No",
	"Code", "Description", "Quantity", "Unit", "Unit Price", "Amount",
}

// WriteXLSX exports a batch as a workbook: one row per product on the
// Quotations sheet and one row per unreadable file on the Errors sheet.
func WriteXLSX(path string, b *models.BatchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", QuotationsSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeHeaderRow(f, QuotationsSheet, quotationColumns, bold); err != nil {
		return err
	}
	for i, r := range models.Flatten(b) {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			r.File, r.Sheet, r.Recipient, r.Date, r.DocumentNumber,
			r.Code, r.Description, nil, r.Unit, nil, nil,
		}
		if r.Code != "" {
			row[7], row[9], row[10] = r.Quantity, r.UnitPrice, r.Amount
		}
		if err := f.SetSheetRow(QuotationsSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(QuotationsSheet, "A", "B", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(QuotationsSheet, "G", "G", 48); err != nil {
		return err
	}

	if failed := b.Failed(); len(failed) > 0 {
		if _, err := f.NewSheet(ErrorsSheet); err != nil {
			return err
		}
		if err := writeHeaderRow(f, ErrorsSheet, []string{"File", "Path", "Error"}, bold); err != nil {
			return err
		}
		for i, fq := range failed {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			row := []interface{}{fq.BookName, fq.Path, fq.Error}
			if err := f.SetSheetRow(ErrorsSheet, cell, &row); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, columns []string, style int) error {
	row := make([]interface{}, len(columns))
	for i, c := range columns {
		row[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return err
	}
	return f.SetRowStyle(sheet, 1, 1, style)
}
