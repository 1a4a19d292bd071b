package exquote

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/exquote-go/pkg/exquote/models"
	"github.com/ukaji3/exquote-go/pkg/exquote/parser"
)

// ExtractGrid runs header extraction, product start detection and product
// parsing over one sheet grid. It never fails; unresolved header fields are
// nil and a sheet without products yields an empty product list.
func ExtractGrid(name string, grid models.Grid) models.SheetQuote {
	// Header and product table are scanned independently
	start := parser.FindProductStart(grid)
	products := parser.ParseProducts(grid, start)
	if products == nil {
		products = []models.Product{}
	}
	return models.SheetQuote{
		Name:     name,
		Header:   parser.ExtractHeader(grid),
		StartRow: start,
		Products: products,
	}
}

// Extract extracts quotation data from one workbook file.
func Extract(path string, opts Options) (*models.FileQuote, error) {
	// Validate input file exists
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewExtractionError(path, "", "open", fmt.Errorf("%w: %s", ErrFileNotFound, path))
		}
		return nil, NewExtractionError(path, "", "open", err)
	}

	// Read the selected sheets as grids
	grids, err := parser.ReadWorkbook(path, opts.SheetSelector(), opts.RawCellValues)
	if err != nil {
		return nil, readError(path, err)
	}

	// Run the extraction core per sheet
	fq := &models.FileQuote{
		Path:     path,
		BookName: filepath.Base(path),
		Sheets:   make([]models.SheetQuote, 0, len(grids)),
	}
	for _, g := range grids {
		fq.Sheets = append(fq.Sheets, ExtractGrid(g.Name, g.Grid))
	}
	return fq, nil
}

// readError tags a workbook read failure with the path and, when known,
// the sheet that failed.
func readError(path string, err error) *ExtractionError {
	var sheetErr *parser.SheetError
	if errors.As(err, &sheetErr) {
		return NewExtractionError(path, sheetErr.Sheet, "read", sheetErr.Err)
	}
	return NewExtractionError(path, "", "read", err)
}
